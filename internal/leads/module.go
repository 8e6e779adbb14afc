// Package leads provides the lead management bounded context module:
// leads, tags, notes, finance applications, and the underwriting views.
package leads

import (
	"bhph_crm_backend/internal/events"
	apphttp "bhph_crm_backend/internal/http"
	"bhph_crm_backend/internal/leads/handler"
	"bhph_crm_backend/internal/leads/repository"
	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/platform/logger"
	"bhph_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// NewModule creates and initializes the leads module with its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

// Service exposes the lead service for other modules (importer, scheduler).
func (m *Module) Service() *service.Service {
	return m.svc
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts lead and underwriting routes under /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
	m.handler.RegisterUnderwritingRoutes(ctx.V1.Group("/underwriting"))
}
