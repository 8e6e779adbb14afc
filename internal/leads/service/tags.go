package service

import (
	"context"

	"bhph_crm_backend/platform/sanitize"
)

// DefaultTags is the suggestion vocabulary shown in the UI. Tag names are
// otherwise unconstrained free text.
var DefaultTags = []string{
	"Need Driver's License",
	"Need Proof of Income",
	"Need Proof of Residence",
	"Need References",
	"Need Down Payment",
	"Need Insurance",
	"Need Stips",
	"Bankruptcy",
	"Repo",
	"First-Time Buyer",
	"Self-Employed",
}

// TagSuggestions returns the default vocabulary.
func (s *Service) TagSuggestions() []string {
	out := make([]string, len(DefaultTags))
	copy(out, DefaultTags)
	return out
}

// ReplaceTags replaces the lead's tag set. Input is sanitized and
// de-duplicated first, which makes the operation idempotent.
func (s *Service) ReplaceTags(ctx context.Context, leadID int64, names []string) ([]string, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLeadNotFound
	}

	cleaned := DedupeTags(names)
	if err := s.repo.ReplaceTags(ctx, leadID, cleaned); err != nil {
		return nil, err
	}
	return s.repo.ListTags(ctx, leadID)
}

// ListTags returns the lead's current tags.
func (s *Service) ListTags(ctx context.Context, leadID int64) ([]string, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLeadNotFound
	}
	return s.repo.ListTags(ctx, leadID)
}

// DedupeTags sanitizes tag names, drops empties, and removes duplicates
// while preserving first-seen order.
func DedupeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		clean := sanitize.Text(name)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}
