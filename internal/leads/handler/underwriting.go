package handler

import (
	"net/http"

	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// RegisterUnderwritingRoutes mounts the cross-lead underwriting views.
func (h *Handler) RegisterUnderwritingRoutes(rg *gin.RouterGroup) {
	rg.GET("/queue", h.Queue)
	rg.POST("/rescore-all", h.RescoreAll)
}

func (h *Handler) Queue(c *gin.Context) {
	items, err := h.svc.Queue(c.Request.Context())
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	httpkit.OK(c, items)
}

func (h *Handler) RescoreAll(c *gin.Context) {
	count, err := h.svc.RescoreAll(c.Request.Context())
	if err != nil {
		if err == service.ErrSchedulerDisabled {
			httpkit.Error(c, http.StatusServiceUnavailable, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	httpkit.JSON(c, http.StatusAccepted, gin.H{"enqueued": count})
}
