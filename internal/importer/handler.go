package importer

import (
	"errors"
	"net/http"

	"bhph_crm_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// 10 MB is plenty for a dealer lead sheet.
const maxUploadSize = 10 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.ImportLeads)
}

// ImportLeads accepts a multipart upload with the CSV under the "file"
// field.
func (h *Handler) ImportLeads(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing file upload", nil)
		return
	}
	if fileHeader.Size > maxUploadSize {
		httpkit.Error(c, http.StatusBadRequest, "file too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "could not open upload", nil)
		return
	}
	defer file.Close()

	result, err := h.svc.ImportCSV(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, ErrUnreadableCSV) {
			httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, result)
}
