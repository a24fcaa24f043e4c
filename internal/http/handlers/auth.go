package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/platform/apierr"
	"github.com/yungbote/petpal-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	metrics     *observability.Metrics
}

func NewAuthHandler(authService services.AuthService, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: metrics}
}

// POST /login
// body: { "email": "...", "password": "..." }
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    *string `json:"email" binding:"required"`
		Password *string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	res, err := ah.authService.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		if _, ok := apierr.As(err); ok {
			ah.metrics.IncLogin("rejected")
		} else {
			ah.metrics.IncLogin("error")
		}
		response.RespondAPIError(c, err)
		return
	}
	ah.metrics.IncLogin("ok")
	response.RespondOK(c, res)
}
