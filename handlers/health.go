package handlers

import (
	"net/http"

	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Medicare server is running")
}

// Health handles GET /health with the last probe results.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Monitor.Status()
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
