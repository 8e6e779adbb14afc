// Package exports provides CSV downloads of the lead book, the inverse of
// the import pipeline. Column order matches the import format so a file
// can round-trip.
package exports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LeadRow struct {
	FirstName  string
	LastName   string
	Phone      string
	Phone2     string
	Email      string
	Address1   string
	Address2   string
	City       string
	State      string
	Zip        string
	Source     string
	Status     string
	AssignedTo string
}

// CSV returns the row in import column order.
func (r LeadRow) CSV() []string {
	return []string{
		r.FirstName, r.LastName, r.Phone, r.Phone2, r.Email,
		r.Address1, r.Address2, r.City, r.State, r.Zip,
		r.Source, r.Status, r.AssignedTo,
	}
}

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListLeads returns all leads oldest first, matching import order so an
// exported file re-imports in the same sequence.
func (r *Repository) ListLeads(ctx context.Context) ([]LeadRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT first_name, last_name, phone, phone2, email,
			address1, address2, city, state, zip, source, status, assigned_to
		FROM leads
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LeadRow, 0)
	for rows.Next() {
		var row LeadRow
		if err := rows.Scan(
			&row.FirstName, &row.LastName, &row.Phone, &row.Phone2, &row.Email,
			&row.Address1, &row.Address2, &row.City, &row.State, &row.Zip,
			&row.Source, &row.Status, &row.AssignedTo,
		); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}
