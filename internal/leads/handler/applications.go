package handler

import (
	"net/http"
	"strconv"

	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListApplications(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	apps, err := h.svc.ListApplications(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrLeadNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, apps)
}

func (h *Handler) CreateApplication(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req transport.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	app, err := h.svc.CreateApplication(c.Request.Context(), id, req)
	if err != nil {
		if err == service.ErrLeadNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.JSON(c, http.StatusCreated, app)
}

func (h *Handler) Rescore(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}
	appID, err := strconv.ParseInt(c.Param("appId"), 10, 64)
	if err != nil || appID < 1 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	app, err := h.svc.Rescore(c.Request.Context(), id, appID)
	if err != nil {
		if err == service.ErrApplicationNotFound {
			httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, app)
}
