package service

import (
	"context"
	"errors"
	"strings"

	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/internal/leads/repository"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/internal/underwriting"
	"bhph_crm_backend/platform/sanitize"

	"golang.org/x/sync/errgroup"
)

// ErrSchedulerDisabled is returned by RescoreAll when no task queue is
// configured.
var ErrSchedulerDisabled = errors.New("background rescoring is not configured")

// RescoreEnqueuer hands rescore work to the background queue.
type RescoreEnqueuer interface {
	EnqueueRescore(ctx context.Context, applicationID int64) error
}

const enqueueParallelism = 8

// SetRescoreEnqueuer wires the optional background queue. Without it,
// RescoreAll reports ErrSchedulerDisabled.
func (s *Service) SetRescoreEnqueuer(enq RescoreEnqueuer) {
	s.enqueuer = enq
}

// CreateApplication stores a finance application for the lead. Unless the
// request opts out, the underwriting engine scores it immediately.
func (s *Service) CreateApplication(ctx context.Context, leadID int64, req transport.CreateApplicationRequest) (transport.ApplicationResponse, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return transport.ApplicationResponse{}, err
	}
	if !exists {
		return transport.ApplicationResponse{}, ErrLeadNotFound
	}

	app, err := s.repo.CreateApplication(ctx, repository.CreateApplicationParams{
		LeadID:              leadID,
		GrossMonthlyIncome:  req.GrossMonthlyIncome,
		NetMonthlyIncome:    req.NetMonthlyIncome,
		JobTimeMonths:       req.JobTimeMonths,
		Employer:            sanitize.Text(req.Employer),
		PayFrequency:        strings.ToLower(strings.TrimSpace(req.PayFrequency)),
		ResidenceTimeMonths: req.ResidenceTimeMonths,
		RentOrMortgage:      req.RentOrMortgage,
		OtherMonthlyDebt:    req.OtherMonthlyDebt,
		DesiredPayment:      req.DesiredPayment,
		DownPayment:         req.DownPayment,
		HasRepo:             req.HasRepo,
		HasBankruptcy:       req.HasBankruptcy,
		FirstTimeBuyer:      req.FirstTimeBuyer,
		SelfEmployed:        req.SelfEmployed,
		DLOnFile:            req.DLOnFile,
		POIOnFile:           req.POIOnFile,
		POROnFile:           req.POROnFile,
		ReferencesOnFile:    req.ReferencesOnFile,
	})
	if err != nil {
		return transport.ApplicationResponse{}, err
	}

	runScore := req.RunScore == nil || *req.RunScore
	if runScore {
		app, err = s.score(ctx, app)
		if err != nil {
			return transport.ApplicationResponse{}, err
		}
	}

	return toApplicationResponse(app), nil
}

func (s *Service) ListApplications(ctx context.Context, leadID int64) ([]transport.ApplicationResponse, error) {
	exists, err := s.repo.Exists(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLeadNotFound
	}

	apps, err := s.repo.ListApplications(ctx, leadID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	return out, nil
}

// Rescore re-runs the engine on a stored application and overwrites its
// result fields.
func (s *Service) Rescore(ctx context.Context, leadID, appID int64) (transport.ApplicationResponse, error) {
	app, err := s.repo.GetApplication(ctx, leadID, appID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return transport.ApplicationResponse{}, ErrApplicationNotFound
		}
		return transport.ApplicationResponse{}, err
	}

	scored, err := s.score(ctx, app)
	if err != nil {
		return transport.ApplicationResponse{}, err
	}
	return toApplicationResponse(scored), nil
}

// RescoreByApplicationID is the worker-side entry point: no lead scope,
// the task payload only carries the application id.
func (s *Service) RescoreByApplicationID(ctx context.Context, appID int64) error {
	app, err := s.repo.GetApplicationByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	_, err = s.score(ctx, app)
	return err
}

// RescoreAll enqueues a rescore task for the latest application of every
// lead and returns how many were enqueued.
func (s *Service) RescoreAll(ctx context.Context) (int, error) {
	if s.enqueuer == nil {
		return 0, ErrSchedulerDisabled
	}

	ids, err := s.repo.LatestApplicationIDs(ctx)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enqueueParallelism)
	for _, id := range ids {
		g.Go(func() error {
			return s.enqueuer.EnqueueRescore(gctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Queue returns the underwriting work queue: the newest application per
// lead, riskiest first, with lead identity and tags attached.
func (s *Service) Queue(ctx context.Context) ([]transport.QueueItemResponse, error) {
	items, err := s.repo.UnderwritingQueue(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Lead.ID)
	}
	tagsByLead, err := s.repo.ListTagsForLeads(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]transport.QueueItemResponse, 0, len(items))
	for _, item := range items {
		app := item.Application
		out = append(out, transport.QueueItemResponse{
			LeadID:        item.Lead.ID,
			LeadName:      strings.TrimSpace(item.Lead.FirstName + " " + item.Lead.LastName),
			Phone:         item.Lead.Phone,
			Tags:          tagsByLead[item.Lead.ID],
			ApplicationID: app.ID,
			Score:         app.Score,
			RiskTier:      app.RiskTier,
			Decision:      app.Decision,
			PTI:           underwriting.ComputePTI(app.NetMonthlyIncome, app.DesiredPayment),
			NetIncome:     app.NetMonthlyIncome,
			DownPayment:   app.DownPayment,
			ScoredAt:      app.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) score(ctx context.Context, app repository.FinanceApplication) (repository.FinanceApplication, error) {
	result := underwriting.Score(underwriting.Snapshot{
		NetMonthlyIncome:    app.NetMonthlyIncome,
		GrossMonthlyIncome:  app.GrossMonthlyIncome,
		JobTimeMonths:       app.JobTimeMonths,
		ResidenceTimeMonths: app.ResidenceTimeMonths,
		RentOrMortgage:      app.RentOrMortgage,
		OtherMonthlyDebt:    app.OtherMonthlyDebt,
		DesiredPayment:      app.DesiredPayment,
		DownPayment:         app.DownPayment,
		HasRepo:             app.HasRepo,
		HasBankruptcy:       app.HasBankruptcy,
		FirstTimeBuyer:      app.FirstTimeBuyer,
		SelfEmployed:        app.SelfEmployed,
		DLOnFile:            app.DLOnFile,
		POIOnFile:           app.POIOnFile,
		POROnFile:           app.POROnFile,
		ReferencesOnFile:    app.ReferencesOnFile,
	})

	updated, err := s.repo.UpdateScore(ctx, app.ID, result.Score, string(result.Tier), string(result.Decision), result.Explanation)
	if err != nil {
		return repository.FinanceApplication{}, err
	}

	s.log.ApplicationScored(updated.LeadID, updated.ID, updated.Score, updated.RiskTier, updated.Decision)

	s.bus.Publish(ctx, events.ApplicationScored{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        updated.LeadID,
		ApplicationID: updated.ID,
		Score:         updated.Score,
		RiskTier:      updated.RiskTier,
		Decision:      updated.Decision,
	})

	return updated, nil
}

func toApplicationResponse(app repository.FinanceApplication) transport.ApplicationResponse {
	return transport.ApplicationResponse{
		ID:                  app.ID,
		LeadID:              app.LeadID,
		GrossMonthlyIncome:  app.GrossMonthlyIncome,
		NetMonthlyIncome:    app.NetMonthlyIncome,
		JobTimeMonths:       app.JobTimeMonths,
		Employer:            app.Employer,
		PayFrequency:        app.PayFrequency,
		ResidenceTimeMonths: app.ResidenceTimeMonths,
		RentOrMortgage:      app.RentOrMortgage,
		OtherMonthlyDebt:    app.OtherMonthlyDebt,
		DesiredPayment:      app.DesiredPayment,
		DownPayment:         app.DownPayment,
		HasRepo:             app.HasRepo,
		HasBankruptcy:       app.HasBankruptcy,
		FirstTimeBuyer:      app.FirstTimeBuyer,
		SelfEmployed:        app.SelfEmployed,
		DLOnFile:            app.DLOnFile,
		POIOnFile:           app.POIOnFile,
		POROnFile:           app.POROnFile,
		ReferencesOnFile:    app.ReferencesOnFile,
		Score:               app.Score,
		RiskTier:            app.RiskTier,
		Decision:            app.Decision,
		ScoringNotes:        app.ScoringNotes,
		PTI:                 underwriting.ComputePTI(app.NetMonthlyIncome, app.DesiredPayment),
		CreatedAt:           app.CreatedAt,
	}
}
