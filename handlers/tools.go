package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelens/backend/tools"
)

// ToolsHandler lists the registered analysis tools
type ToolsHandler struct {
	registry *tools.Registry
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(registry *tools.Registry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// List returns the registered tool definitions
// @Summary List analysis tools
// @Description List every registered tool with its name, description and input schema
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "Tool definitions"
// @Router /tools [get]
func (h *ToolsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
		"count": len(h.registry.List()),
	})
}
