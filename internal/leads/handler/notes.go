package handler

import (
	"net/http"

	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListNotes(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	notes, err := h.svc.ListNotes(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrLeadNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, notes)
}

func (h *Handler) AddNote(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req transport.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	note, err := h.svc.AddNote(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case service.ErrLeadNotFound:
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		case service.ErrEmptyNote:
			httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		default:
			httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	httpkit.JSON(c, http.StatusCreated, note)
}
