package service

import (
	"context"
	"errors"
	"strings"

	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/internal/leads/repository"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/logger"
	"bhph_crm_backend/platform/phone"
	"bhph_crm_backend/platform/sanitize"
)

var (
	ErrLeadNotFound        = errors.New("lead not found")
	ErrApplicationNotFound = errors.New("finance application not found")
	ErrNameRequired        = errors.New("first name or last name is required")
	ErrEmptyNote           = errors.New("note body is required")
)

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

type Service struct {
	repo     *repository.Repository
	bus      events.Bus
	log      *logger.Logger
	enqueuer RescoreEnqueuer
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	params := repository.CreateLeadParams{
		FirstName:  sanitize.Text(req.FirstName),
		LastName:   sanitize.Text(req.LastName),
		Phone:      phone.NormalizeE164(req.Phone),
		Phone2:     phone.NormalizeE164(req.Phone2),
		Email:      strings.TrimSpace(req.Email),
		Address1:   sanitize.Text(req.Address1),
		Address2:   sanitize.Text(req.Address2),
		City:       sanitize.Text(req.City),
		State:      sanitize.Text(req.State),
		Zip:        strings.TrimSpace(req.Zip),
		Source:     sanitize.Text(req.Source),
		Status:     string(transport.NormalizeLeadStatus(req.Status)),
		AssignedTo: sanitize.Text(req.AssignedTo),
	}
	if params.FirstName == "" && params.LastName == "" {
		return transport.LeadResponse{}, ErrNameRequired
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Source:    lead.Source,
	})

	return toLeadResponse(lead, nil), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (transport.LeadDetailResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadDetailResponse{}, ErrLeadNotFound
		}
		return transport.LeadDetailResponse{}, err
	}

	tags, err := s.repo.ListTags(ctx, id)
	if err != nil {
		return transport.LeadDetailResponse{}, err
	}
	noteCount, appCount, err := s.repo.Counts(ctx, id)
	if err != nil {
		return transport.LeadDetailResponse{}, err
	}

	return transport.LeadDetailResponse{
		LeadResponse:     toLeadResponse(lead, tags),
		NoteCount:        noteCount,
		ApplicationCount: appCount,
	}, nil
}

func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.repo.List(ctx, repository.ListLeadsParams{
		Status:     req.Status,
		Source:     req.Source,
		AssignedTo: req.AssignedTo,
		Search:     strings.TrimSpace(req.Search),
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	ids := make([]int64, 0, len(items))
	for _, lead := range items {
		ids = append(ids, lead.ID)
	}
	tagsByLead, err := s.repo.ListTagsForLeads(ctx, ids)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	responses := make([]transport.LeadResponse, 0, len(items))
	for _, lead := range items {
		responses = append(responses, toLeadResponse(lead, tagsByLead[lead.ID]))
	}

	totalPages := (total + pageSize - 1) / pageSize
	return transport.LeadListResponse{
		Items:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	params := repository.UpdateLeadParams{
		Email: trimPtr(req.Email),
		Zip:   trimPtr(req.Zip),
	}
	params.FirstName = sanitizePtr(req.FirstName)
	params.LastName = sanitizePtr(req.LastName)
	params.Address1 = sanitizePtr(req.Address1)
	params.Address2 = sanitizePtr(req.Address2)
	params.City = sanitizePtr(req.City)
	params.State = sanitizePtr(req.State)
	params.Source = sanitizePtr(req.Source)
	params.AssignedTo = sanitizePtr(req.AssignedTo)

	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}
	if req.Phone2 != nil {
		normalized := phone.NormalizeE164(*req.Phone2)
		params.Phone2 = &normalized
	}
	if req.Status != nil {
		status := string(transport.NormalizeLeadStatus(*req.Status))
		params.Status = &status
	}

	lead, err := s.repo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, ErrLeadNotFound
		}
		return transport.LeadResponse{}, err
	}

	tags, err := s.repo.ListTags(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toLeadResponse(lead, tags), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLeadNotFound
	}
	return err
}

func (s *Service) Stats(ctx context.Context) (transport.LeadStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return transport.LeadStatsResponse{}, err
	}
	return transport.LeadStatsResponse{
		Total: stats.Total,
		Hot:   stats.Hot,
		Warm:  stats.Warm,
		Cold:  stats.Cold,
	}, nil
}

func toLeadResponse(lead repository.Lead, tags []string) transport.LeadResponse {
	return transport.LeadResponse{
		ID:         lead.ID,
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Phone:      lead.Phone,
		Phone2:     lead.Phone2,
		Email:      lead.Email,
		Address1:   lead.Address1,
		Address2:   lead.Address2,
		City:       lead.City,
		State:      lead.State,
		Zip:        lead.Zip,
		Source:     lead.Source,
		Status:     transport.LeadStatus(lead.Status),
		AssignedTo: lead.AssignedTo,
		Tags:       tags,
		CreatedAt:  lead.CreatedAt,
		UpdatedAt:  lead.UpdatedAt,
	}
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitize.Text(*s)
	return &clean
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
