package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID         int64
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
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateLeadParams struct {
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

const leadColumns = `id, first_name, last_name, phone, phone2, email,
	address1, address2, city, state, zip, source, status, assigned_to,
	created_at, updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var l Lead
	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Phone, &l.Phone2, &l.Email,
		&l.Address1, &l.Address2, &l.City, &l.State, &l.Zip, &l.Source,
		&l.Status, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			first_name, last_name, phone, phone2, email,
			address1, address2, city, state, zip, source, status, assigned_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+leadColumns,
		params.FirstName, params.LastName, params.Phone, params.Phone2, params.Email,
		params.Address1, params.Address2, params.City, params.State, params.Zip,
		params.Source, params.Status, params.AssignedTo,
	))
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+` FROM leads WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type UpdateLeadParams struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Phone2     *string
	Email      *string
	Address1   *string
	Address2   *string
	City       *string
	State      *string
	Zip        *string
	Source     *string
	Status     *string
	AssignedTo *string
}

// Update applies only the non-nil fields and returns the updated row.
// updated_at always advances so a no-op update is still observable.
func (r *Repository) Update(ctx context.Context, id int64, params UpdateLeadParams) (Lead, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("first_name", params.FirstName)
	add("last_name", params.LastName)
	add("phone", params.Phone)
	add("phone2", params.Phone2)
	add("email", params.Email)
	add("address1", params.Address1)
	add("address2", params.Address2)
	add("city", params.City)
	add("state", params.State)
	add("zip", params.Zip)
	add("source", params.Source)
	add("status", params.Status)
	add("assigned_to", params.AssignedTo)

	lead, err := scanLead(r.pool.QueryRow(ctx, `
		UPDATE leads SET `+strings.Join(set, ", ")+`
		WHERE id = $1
		RETURNING `+leadColumns,
		args...,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// Delete removes the lead; tags, notes, and applications go with it via
// ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type ListLeadsParams struct {
	Status     string
	Source     string
	AssignedTo string
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"status":    "status",
	"firstName": "first_name",
	"lastName":  "last_name",
}

// List returns a page of leads plus the total count for the same filters.
func (r *Repository) List(ctx context.Context, params ListLeadsParams) ([]Lead, int, error) {
	where := []string{"true"}
	args := []any{}

	filter := func(clause string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	filter("status = $%d", params.Status)
	filter("source = $%d", params.Source)
	filter("assigned_to = $%d", params.AssignedTo)

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)",
			n, n, n, n,
		))
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM leads WHERE `+whereSQL, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := sortColumns[params.SortBy]
	if !ok {
		orderBy = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		direction = "ASC"
	}

	args = append(args, params.Limit, params.Offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM leads WHERE %s ORDER BY %s %s, id DESC LIMIT $%d OFFSET $%d`,
		leadColumns, whereSQL, orderBy, direction, len(args)-1, len(args),
	), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lead)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

type LeadStats struct {
	Total int
	Hot   int
	Warm  int
	Cold  int
}

func (r *Repository) Stats(ctx context.Context) (LeadStats, error) {
	var stats LeadStats
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'Hot'),
			count(*) FILTER (WHERE status = 'Warm'),
			count(*) FILTER (WHERE status = 'Cold')
		FROM leads
	`).Scan(&stats.Total, &stats.Hot, &stats.Warm, &stats.Cold)
	return stats, err
}

// Counts returns the number of notes and finance applications for a lead.
func (r *Repository) Counts(ctx context.Context, leadID int64) (notes int, applications int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM notes WHERE lead_id = $1),
			(SELECT count(*) FROM finance_applications WHERE lead_id = $1)
	`, leadID).Scan(&notes, &applications)
	return notes, applications, err
}

// Exists reports whether the lead id is present. Used by child-entity
// writes to distinguish 404 from an empty child set.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leads WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
