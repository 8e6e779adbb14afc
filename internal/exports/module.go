package exports

import (
	apphttp "bhph_crm_backend/internal/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the exports module implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(pool *pgxpool.Pool) *Module {
	return &Module{handler: NewHandler(NewRepository(pool))}
}

func (m *Module) Name() string {
	return "exports"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/exports"))
}
