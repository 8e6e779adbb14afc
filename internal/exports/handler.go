package exports

import (
	"encoding/csv"
	"fmt"
	"time"

	"bhph_crm_backend/platform/apperr"
	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

var csvHeader = []string{
	"first_name", "last_name", "phone", "phone2", "email",
	"address1", "address2", "city", "state", "zip",
	"source", "status", "assigned_to",
}

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.ExportLeads)
}

func (h *Handler) ExportLeads(c *gin.Context) {
	leads, err := h.repo.ListLeads(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "export failed", err))
		return
	}

	filename := fmt.Sprintf("leads_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(csvHeader); err != nil {
		return
	}
	for _, lead := range leads {
		if err := writer.Write(lead.CSV()); err != nil {
			return
		}
	}
	writer.Flush()
}
