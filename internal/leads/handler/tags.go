package handler

import (
	"net/http"

	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTags(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	tags, err := h.svc.ListTags(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrLeadNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, gin.H{"tags": tags})
}

func (h *Handler) ReplaceTags(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req transport.ReplaceTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	tags, err := h.svc.ReplaceTags(c.Request.Context(), id, req.Tags)
	if err != nil {
		if err == service.ErrLeadNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, gin.H{"tags": tags})
}
