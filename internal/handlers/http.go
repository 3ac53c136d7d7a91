package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core"
	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core/domain"
)

type HTTPHandler struct {
	service core.DiscoveryServicePort
}

func NewHTTPHandler(s core.DiscoveryServicePort) *HTTPHandler {
	return &HTTPHandler{service: s}
}

// discoverPayload uses pointers so that "required" means present, not non-empty.
type discoverPayload struct {
	Prompt *string `json:"prompt" binding:"required"`
	Mode   *string `json:"mode" binding:"required"`
}

func (h *HTTPHandler) HandleDiscover(c *gin.Context) {
	var payload discoverPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, domain.ErrorBody{Detail: err.Error()})
		return
	}

	// Context propagation is automatic here
	req := domain.DiscoveryRequest{Prompt: *payload.Prompt, Mode: *payload.Mode}
	response, err := h.service.Discover(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorBody{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
