package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
)

const headerOperatorToken = "X-Operator-Token"

// RequireOperator guards operator-only routes. An empty token disables them.
func RequireOperator(token string) gin.HandlerFunc {
	token = strings.TrimSpace(token)
	return func(c *gin.Context) {
		supplied := strings.TrimSpace(c.GetHeader(headerOperatorToken))
		if token == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(supplied)) != 1 {
			response.RespondError(c, http.StatusForbidden, "forbidden", errors.New("forbidden"))
			return
		}
		c.Next()
	}
}
