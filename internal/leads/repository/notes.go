package repository

import (
	"context"
	"time"
)

type Note struct {
	ID        int64
	LeadID    int64
	Body      string
	CreatedBy string
	CreatedAt time.Time
}

// ListNotes returns the lead's notes newest first.
func (r *Repository) ListNotes(ctx context.Context, leadID int64) ([]Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lead_id, body, created_by, created_at
		FROM notes WHERE lead_id = $1
		ORDER BY created_at DESC, id DESC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.LeadID, &n.Body, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *Repository) AddNote(ctx context.Context, leadID int64, body, createdBy string) (Note, error) {
	var n Note
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notes (lead_id, body, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, lead_id, body, created_by, created_at
	`, leadID, body, createdBy).Scan(&n.ID, &n.LeadID, &n.Body, &n.CreatedBy, &n.CreatedAt)
	if err != nil {
		return Note{}, err
	}
	return n, nil
}
