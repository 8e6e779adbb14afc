package service

import (
	"context"

	"bhph_crm_backend/internal/leads/repository"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/sanitize"
)

func (s *Service) ListNotes(ctx context.Context, leadID int64) ([]transport.NoteResponse, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLeadNotFound
	}

	notes, err := s.repo.ListNotes(ctx, leadID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

// AddNote appends an immutable note. The body is sanitized first; a body
// that is empty after sanitization is rejected.
func (s *Service) AddNote(ctx context.Context, leadID int64, req transport.AddNoteRequest) (transport.NoteResponse, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return transport.NoteResponse{}, err
	}
	if !exists {
		return transport.NoteResponse{}, ErrLeadNotFound
	}

	body := sanitize.Text(req.Body)
	if body == "" {
		return transport.NoteResponse{}, ErrEmptyNote
	}

	note, err := s.repo.AddNote(ctx, leadID, body, sanitize.Text(req.CreatedBy))
	if err != nil {
		return transport.NoteResponse{}, err
	}
	return toNoteResponse(note), nil
}

func toNoteResponse(n repository.Note) transport.NoteResponse {
	return transport.NoteResponse{
		ID:        n.ID,
		LeadID:    n.LeadID,
		Body:      n.Body,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
	}
}
