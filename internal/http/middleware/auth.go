package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/platform/ctxutil"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

const headerUserID = "X-User-Id"

// TokenParser resolves a session token to a user id.
type TokenParser interface {
	ParseSessionToken(tokenString string) (int64, error)
}

type SessionMiddleware struct {
	log    *logger.Logger
	tokens TokenParser

	// trustUserIDHeader accepts the unauthenticated X-User-Id header that
	// older clients send. Anyone can claim any scope through it.
	trustUserIDHeader bool
}

func NewSessionMiddleware(log *logger.Logger, tokens TokenParser) *SessionMiddleware {
	return &SessionMiddleware{
		log:               log.With("middleware", "SessionMiddleware"),
		tokens:            tokens,
		trustUserIDHeader: true,
	}
}

// TrustUserIDHeader toggles the legacy X-User-Id scope header. With it off,
// only a session token selects a per-user scope.
func (sm *SessionMiddleware) TrustUserIDHeader(on bool) *SessionMiddleware {
	sm.trustUserIDHeader = on
	return sm
}

// Attach never rejects a request. It records who the caller is so pet state
// can be scoped: a valid bearer token wins, then X-User-Id when trusted, then
// the shared default scope.
func (sm *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := &ctxutil.RequestData{}
		if tok := bearerToken(c); tok != "" && sm.tokens != nil {
			if uid, err := sm.tokens.ParseSessionToken(tok); err == nil {
				rd.UserID = uid
				rd.Authenticated = true
			} else {
				sm.log.Debug("Ignoring invalid session token", "error", err)
			}
		}
		if !rd.Authenticated && sm.trustUserIDHeader {
			if raw := strings.TrimSpace(c.GetHeader(headerUserID)); raw != "" {
				if uid, err := strconv.ParseInt(raw, 10, 64); err == nil && uid > 0 {
					rd.UserID = uid
				}
			}
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
