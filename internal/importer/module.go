package importer

import (
	"bhph_crm_backend/internal/events"
	apphttp "bhph_crm_backend/internal/http"
	"bhph_crm_backend/platform/logger"
)

// Module is the CSV import module implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(creator LeadCreator, bus events.Bus, log *logger.Logger) *Module {
	svc := New(creator, bus, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "imports"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/imports"))
}
