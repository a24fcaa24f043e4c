package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/platform/apierr"
)

func run(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestRespondAPIErrorUsesStatusFromChain(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", apierr.NotFound("user_not_found", "User not found"))
	rec, env := run(t, func(c *gin.Context) { RespondAPIError(c, wrapped) })
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if env.Detail != "User not found" || env.Error.Code != "user_not_found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRespondAPIErrorHidesInternalErrors(t *testing.T) {
	rec, env := run(t, func(c *gin.Context) { RespondAPIError(c, errors.New("dial tcp: secret host")) })
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if env.Error.Code != "internal_error" || env.Detail != "internal server error" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
