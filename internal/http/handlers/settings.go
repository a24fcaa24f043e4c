package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/services"
)

type SettingsHandler struct {
	settings services.SettingsService
	memory   services.MemoryService
}

func NewSettingsHandler(settings services.SettingsService, memory services.MemoryService) *SettingsHandler {
	return &SettingsHandler{settings: settings, memory: memory}
}

// POST /settings
// body: { "user_id", "key", "value" }
func (sh *SettingsHandler) SetSetting(c *gin.Context) {
	var req struct {
		UserID *intField `json:"user_id" binding:"required"`
		Key    *string   `json:"key" binding:"required"`
		Value  *string   `json:"value" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	id, err := sh.settings.Set(c.Request.Context(), req.UserID.Int64(), *req.Key, *req.Value)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, id)
}

// GET /settings/:user_id
func (sh *SettingsHandler) Settings(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	rows, err := sh.settings.List(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /memory
// body: { "user_id", "role", "content", "timestamp"? }
func (sh *SettingsHandler) AddMemory(c *gin.Context) {
	var req struct {
		UserID    *intField `json:"user_id" binding:"required"`
		Role      *string   `json:"role" binding:"required"`
		Content   *string   `json:"content" binding:"required"`
		Timestamp string    `json:"timestamp"`
	}
	if !bindJSON(c, &req) {
		return
	}
	id, err := sh.memory.Add(c.Request.Context(), req.UserID.Int64(), *req.Role, *req.Content, req.Timestamp)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, id)
}

// GET /memory/:user_id
func (sh *SettingsHandler) Memory(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	rows, err := sh.memory.List(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}
