package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("finance application not found")

type FinanceApplication struct {
	ID                  int64
	LeadID              int64
	GrossMonthlyIncome  float64
	NetMonthlyIncome    float64
	JobTimeMonths       int
	Employer            string
	PayFrequency        string
	ResidenceTimeMonths int
	RentOrMortgage      float64
	OtherMonthlyDebt    float64
	DesiredPayment      float64
	DownPayment         float64
	HasRepo             bool
	HasBankruptcy       bool
	FirstTimeBuyer      bool
	SelfEmployed        bool
	DLOnFile            bool
	POIOnFile           bool
	POROnFile           bool
	ReferencesOnFile    bool
	Score               int
	RiskTier            string
	Decision            string
	ScoringNotes        string
	CreatedAt           time.Time
}

const applicationColumns = `id, lead_id, gross_monthly_income, net_monthly_income,
	job_time_months, employer, pay_frequency, residence_time_months,
	rent_or_mortgage, other_monthly_debt, desired_payment, down_payment,
	has_repo, has_bankruptcy, first_time_buyer, self_employed,
	dl_on_file, poi_on_file, por_on_file, references_on_file,
	score, risk_tier, decision, scoring_notes, created_at`

func scanApplication(row pgx.Row) (FinanceApplication, error) {
	var a FinanceApplication
	err := row.Scan(
		&a.ID, &a.LeadID, &a.GrossMonthlyIncome, &a.NetMonthlyIncome,
		&a.JobTimeMonths, &a.Employer, &a.PayFrequency, &a.ResidenceTimeMonths,
		&a.RentOrMortgage, &a.OtherMonthlyDebt, &a.DesiredPayment, &a.DownPayment,
		&a.HasRepo, &a.HasBankruptcy, &a.FirstTimeBuyer, &a.SelfEmployed,
		&a.DLOnFile, &a.POIOnFile, &a.POROnFile, &a.ReferencesOnFile,
		&a.Score, &a.RiskTier, &a.Decision, &a.ScoringNotes, &a.CreatedAt,
	)
	return a, err
}

type CreateApplicationParams struct {
	LeadID              int64
	GrossMonthlyIncome  float64
	NetMonthlyIncome    float64
	JobTimeMonths       int
	Employer            string
	PayFrequency        string
	ResidenceTimeMonths int
	RentOrMortgage      float64
	OtherMonthlyDebt    float64
	DesiredPayment      float64
	DownPayment         float64
	HasRepo             bool
	HasBankruptcy       bool
	FirstTimeBuyer      bool
	SelfEmployed        bool
	DLOnFile            bool
	POIOnFile           bool
	POROnFile           bool
	ReferencesOnFile    bool
}

// CreateApplication inserts an unscored application. Score, tier, and
// decision keep their column defaults (0 / Unknown / Review) until the
// engine runs.
func (r *Repository) CreateApplication(ctx context.Context, params CreateApplicationParams) (FinanceApplication, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		INSERT INTO finance_applications (
			lead_id, gross_monthly_income, net_monthly_income, job_time_months,
			employer, pay_frequency, residence_time_months, rent_or_mortgage,
			other_monthly_debt, desired_payment, down_payment,
			has_repo, has_bankruptcy, first_time_buyer, self_employed,
			dl_on_file, poi_on_file, por_on_file, references_on_file
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING `+applicationColumns,
		params.LeadID, params.GrossMonthlyIncome, params.NetMonthlyIncome, params.JobTimeMonths,
		params.Employer, params.PayFrequency, params.ResidenceTimeMonths, params.RentOrMortgage,
		params.OtherMonthlyDebt, params.DesiredPayment, params.DownPayment,
		params.HasRepo, params.HasBankruptcy, params.FirstTimeBuyer, params.SelfEmployed,
		params.DLOnFile, params.POIOnFile, params.POROnFile, params.ReferencesOnFile,
	))
	if err != nil {
		return FinanceApplication{}, err
	}
	return app, nil
}

func (r *Repository) GetApplication(ctx context.Context, leadID, appID int64) (FinanceApplication, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM finance_applications WHERE id = $1 AND lead_id = $2
	`, appID, leadID))
	if errors.Is(err, pgx.ErrNoRows) {
		return FinanceApplication{}, ErrApplicationNotFound
	}
	return app, err
}

// GetApplicationByID looks up an application without a lead scope. Used by
// the batch rescore worker, which only knows the application id.
func (r *Repository) GetApplicationByID(ctx context.Context, appID int64) (FinanceApplication, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM finance_applications WHERE id = $1
	`, appID))
	if errors.Is(err, pgx.ErrNoRows) {
		return FinanceApplication{}, ErrApplicationNotFound
	}
	return app, err
}

func (r *Repository) ListApplications(ctx context.Context, leadID int64) ([]FinanceApplication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM finance_applications WHERE lead_id = $1
		ORDER BY created_at DESC, id DESC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]FinanceApplication, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateScore overwrites the scoring result fields. Only the engine ever
// produces these values.
func (r *Repository) UpdateScore(ctx context.Context, appID int64, score int, riskTier, decision, scoringNotes string) (FinanceApplication, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		UPDATE finance_applications
		SET score = $2, risk_tier = $3, decision = $4, scoring_notes = $5
		WHERE id = $1
		RETURNING `+applicationColumns,
		appID, score, riskTier, decision, scoringNotes,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return FinanceApplication{}, ErrApplicationNotFound
	}
	return app, err
}

type QueueItem struct {
	Lead        Lead
	Application FinanceApplication
}

const underwritingQueueQuery = `
	WITH latest AS (
		SELECT DISTINCT ON (lead_id) ` + applicationColumns + `
		FROM finance_applications
		ORDER BY lead_id, created_at DESC, id DESC
	)
	SELECT
		l.id, l.first_name, l.last_name, l.phone, l.phone2, l.email,
		l.address1, l.address2, l.city, l.state, l.zip, l.source, l.status, l.assigned_to,
		l.created_at, l.updated_at,
		a.id, a.lead_id, a.gross_monthly_income, a.net_monthly_income,
		a.job_time_months, a.employer, a.pay_frequency, a.residence_time_months,
		a.rent_or_mortgage, a.other_monthly_debt, a.desired_payment, a.down_payment,
		a.has_repo, a.has_bankruptcy, a.first_time_buyer, a.self_employed,
		a.dl_on_file, a.poi_on_file, a.por_on_file, a.references_on_file,
		a.score, a.risk_tier, a.decision, a.scoring_notes, a.created_at
	FROM latest a
	JOIN leads l ON l.id = a.lead_id
	ORDER BY a.score ASC, a.risk_tier ASC, a.created_at DESC
`

// UnderwritingQueue returns the most recent application per lead, riskiest
// first: score ascending, then tier ascending on ties.
func (r *Repository) UnderwritingQueue(ctx context.Context) ([]QueueItem, error) {
	rows, err := r.pool.Query(ctx, underwritingQueueQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]QueueItem, 0)
	for rows.Next() {
		var item QueueItem
		l := &item.Lead
		a := &item.Application
		if err := rows.Scan(
			&l.ID, &l.FirstName, &l.LastName, &l.Phone, &l.Phone2, &l.Email,
			&l.Address1, &l.Address2, &l.City, &l.State, &l.Zip, &l.Source, &l.Status, &l.AssignedTo,
			&l.CreatedAt, &l.UpdatedAt,
			&a.ID, &a.LeadID, &a.GrossMonthlyIncome, &a.NetMonthlyIncome,
			&a.JobTimeMonths, &a.Employer, &a.PayFrequency, &a.ResidenceTimeMonths,
			&a.RentOrMortgage, &a.OtherMonthlyDebt, &a.DesiredPayment, &a.DownPayment,
			&a.HasRepo, &a.HasBankruptcy, &a.FirstTimeBuyer, &a.SelfEmployed,
			&a.DLOnFile, &a.POIOnFile, &a.POROnFile, &a.ReferencesOnFile,
			&a.Score, &a.RiskTier, &a.Decision, &a.ScoringNotes, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// LatestApplicationIDs returns the id of the newest application for every
// lead that has one. Feeds the batch rescore enqueue.
func (r *Repository) LatestApplicationIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (lead_id) id
		FROM finance_applications
		ORDER BY lead_id, created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
