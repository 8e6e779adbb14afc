package repository

import (
	"context"
)

// ListTags returns the lead's tag names sorted alphabetically.
func (r *Repository) ListTags(ctx context.Context, leadID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name FROM tags WHERE lead_id = $1 ORDER BY name ASC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// ListTagsForLeads returns tag names keyed by lead id for a set of leads.
// One query instead of N when rendering lists and the underwriting queue.
func (r *Repository) ListTagsForLeads(ctx context.Context, leadIDs []int64) (map[int64][]string, error) {
	if len(leadIDs) == 0 {
		return map[int64][]string{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT lead_id, name FROM tags WHERE lead_id = ANY($1) ORDER BY name ASC
	`, leadIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byLead := make(map[int64][]string, len(leadIDs))
	for rows.Next() {
		var leadID int64
		var name string
		if err := rows.Scan(&leadID, &name); err != nil {
			return nil, err
		}
		byLead[leadID] = append(byLead[leadID], name)
	}
	return byLead, rows.Err()
}

// ReplaceTags swaps the lead's tag set atomically: delete and re-insert in
// one transaction so readers never observe a partially emptied set.
func (r *Repository) ReplaceTags(ctx context.Context, leadID int64, names []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tags WHERE lead_id = $1`, leadID); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := tx.Exec(ctx, `
			INSERT INTO tags (lead_id, name) VALUES ($1, $2)
		`, leadID, name); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
