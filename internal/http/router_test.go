package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/petpal-backend/internal/chat/engine"
	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/data/repos"
	"github.com/yungbote/petpal-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/petpal-backend/internal/http/handlers"
	httpMW "github.com/yungbote/petpal-backend/internal/http/middleware"
	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/services"
)

const testOperatorToken = "op-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	db := testutil.DB(t)

	userRepo := repos.NewUserRepo(db, log)
	creds := services.NewBcryptCredentials(bcrypt.MinCost)
	state := petstate.NewMemoryStore()
	settings := services.NewSettingsService(log, repos.NewSettingRepo(db, log))
	auth := services.NewAuthService(log, userRepo, settings, creds, "router-test", time.Hour)
	metrics := observability.NewMetrics()

	return NewRouter(RouterConfig{
		Log:               log,
		Metrics:           metrics,
		OperatorToken:     testOperatorToken,
		SessionMiddleware: httpMW.NewSessionMiddleware(log, auth),
		HealthHandler:     httpH.NewHealthHandler(),
		AuthHandler:       httpH.NewAuthHandler(auth, metrics),
		UserHandler:       httpH.NewUserHandler(services.NewUserService(log, userRepo, creds)),
		SettingsHandler: httpH.NewSettingsHandler(
			settings,
			services.NewMemoryService(log, repos.NewMemoryRepo(db, log)),
		),
		PetHandler: httpH.NewPetHandler(
			services.NewProfileService(log, userRepo, state),
			services.NewPetService(log, state),
			metrics,
		),
		ChatHandler: httpH.NewChatHandler(services.NewChatService(log, engine.NewEcho()), metrics, engine.KindEcho),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, httpH.RootMessage, decode[map[string]string](t, rec)["message"])

	rec = do(t, r, http.MethodGet, "/healthcheck", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestUserRegistrationAndLookup(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]any{"email": "a@x.io", "nickname": "Ann", "password": "pw", "avatar": "ignored.png"}
	rec := do(t, r, http.MethodPost, "/user", body)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode[int64](t, rec)
	require.Positive(t, id)

	rec = do(t, r, http.MethodPost, "/user", body)
	require.Equal(t, id, decode[int64](t, rec))

	rec = do(t, r, http.MethodGet, "/user/by-email?email=a@x.io", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, id, decode[int64](t, rec))

	rec = do(t, r, http.MethodGet, "/user/by-email?email=nobody@x.io", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decode[map[string]any](t, rec)["detail"])

	rec = do(t, r, http.MethodPost, "/user", map[string]any{"nickname": "no email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginScopesPetStatsByToken(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/user", map[string]any{"email": "a@x.io", "nickname": "Ann", "password": "pw"})
	id := decode[int64](t, rec)
	do(t, r, http.MethodPost, "/settings", map[string]any{"user_id": id, "key": "lang", "value": "en"})
	do(t, r, http.MethodPost, "/progress", map[string]any{"id": id, "learning_progress": `{"unit":1}`})

	rec = do(t, r, http.MethodPost, "/login", map[string]any{"email": "a@x.io", "password": "bad"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decode[map[string]any](t, rec)["detail"])

	rec = do(t, r, http.MethodPost, "/login", map[string]any{"email": "a@x.io", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[map[string]any](t, rec)
	require.EqualValues(t, id, login["id"])
	require.Equal(t, map[string]any{"lang": "en"}, login["settings"])
	require.Equal(t, map[string]any{"unit": float64(1)}, login["pet_stats"])
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	rec = do(t, r, http.MethodPost, "/score", map[string]any{"delta": 5}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5, decode[int](t, rec))

	rec = do(t, r, http.MethodGet, "/petstats", nil)
	require.Equal(t, map[string]int{"score": 0, "hunger": 100}, decode[map[string]int](t, rec))

	rec = do(t, r, http.MethodGet, "/petstats", nil, "Authorization", "Bearer "+token)
	require.Equal(t, map[string]int{"score": 5, "hunger": 100}, decode[map[string]int](t, rec))
}

func TestPetStatsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/hunger", map[string]any{"delta": -130})
	require.Equal(t, 0, decode[int](t, rec))

	rec = do(t, r, http.MethodPost, "/score", map[string]any{"delta": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, decode[int](t, rec))

	rec = do(t, r, http.MethodPost, "/petstats", map[string]any{"score": 9, "hunger": 500})
	require.Equal(t, map[string]int{"score": 9, "hunger": 100}, decode[map[string]int](t, rec))

	rec = do(t, r, http.MethodPost, "/reset", nil)
	require.Equal(t, map[string]int{"score": 0, "hunger": 100}, decode[map[string]int](t, rec))

	rec = do(t, r, http.MethodPost, "/score", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decode[response.ErrorEnvelope](t, rec).Error.Code)

	rec = do(t, r, http.MethodPost, "/score", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/profile", nil)
	require.Equal(t, map[string]any{
		"id": float64(0), "name": "", "bio": "", "google_registered": float64(0),
		"level": float64(1), "learning_progress": "{}",
	}, decode[map[string]any](t, rec))

	rec = do(t, r, http.MethodPost, "/user", map[string]any{"email": "a@x.io", "nickname": "Ann"})
	id := decode[int64](t, rec)

	rec = do(t, r, http.MethodPost, "/profile", map[string]any{"id": id, "name": "Puga"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	require.Equal(t, "Puga", got["name"])
	require.Equal(t, float64(1), got["level"])
	require.Equal(t, "{}", got["learning_progress"])

	rec = do(t, r, http.MethodGet, "/profile/"+jsonNumber(id), nil)
	require.Equal(t, "Puga", decode[map[string]any](t, rec)["name"])

	rec = do(t, r, http.MethodGet, "/profile/999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{}, decode[map[string]any](t, rec))

	rec = do(t, r, http.MethodGet, "/profile/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsMemoryNotificationsAchievements(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/user", map[string]any{"email": "a@x.io", "nickname": "Ann"})
	id := decode[int64](t, rec)
	uid := jsonNumber(id)

	do(t, r, http.MethodPost, "/settings", map[string]any{"user_id": id, "key": "k", "value": "1"})
	do(t, r, http.MethodPost, "/settings", map[string]any{"user_id": id, "key": "k", "value": "2"})
	rec = do(t, r, http.MethodGet, "/settings/"+uid, nil)
	require.Equal(t, []map[string]string{{"key": "k", "value": "1"}, {"key": "k", "value": "2"}},
		decode[[]map[string]string](t, rec))

	do(t, r, http.MethodPost, "/memory", map[string]any{"user_id": id, "role": "user", "content": "b", "timestamp": "2024-02-01T00:00:00"})
	do(t, r, http.MethodPost, "/memory", map[string]any{"user_id": id, "role": "pet", "content": "a", "timestamp": "2024-01-01T00:00:00"})
	rec = do(t, r, http.MethodGet, "/memory/"+uid, nil)
	mem := decode[[]map[string]string](t, rec)
	require.Len(t, mem, 2)
	require.Equal(t, "a", mem[0]["content"])

	rec = do(t, r, http.MethodGet, "/memory/777", nil)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = do(t, r, http.MethodPost, "/notifications", map[string]any{"user_id": id, "enabled": 0})
	require.Equal(t, id, decode[int64](t, rec))
	rec = do(t, r, http.MethodGet, "/notifications/"+uid, nil)
	require.Equal(t, map[string]int64{"user_id": id, "enabled": 0}, decode[map[string]int64](t, rec))
	rec = do(t, r, http.MethodGet, "/notifications/4242", nil)
	require.Equal(t, map[string]int64{"user_id": 4242, "enabled": 1}, decode[map[string]int64](t, rec))

	rec = do(t, r, http.MethodGet, "/achievements/"+uid, nil)
	require.Equal(t, "[]", decode[map[string]any](t, rec)["achievements"])
	rec = do(t, r, http.MethodPost, "/achievements", map[string]any{"id": id, "achievements": `["a"]`})
	require.True(t, decode[bool](t, rec))
	rec = do(t, r, http.MethodGet, "/achievements/"+uid, nil)
	require.Equal(t, `["a"]`, decode[map[string]any](t, rec)["achievements"])
	rec = do(t, r, http.MethodGet, "/achievements/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugUsersRequiresOperatorToken(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPost, "/user", map[string]any{"email": "a@x.io", "nickname": "Ann"})

	rec := do(t, r, http.MethodGet, "/debug-users", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, r, http.MethodGet, "/debug-users", nil, "X-Operator-Token", testOperatorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]map[string]any](t, rec)
	require.Len(t, users, 1)
	require.Equal(t, "Ann", users[0]["nickname"])
	require.NotContains(t, rec.Body.String(), "a@x.io")
}

func TestChatEcho(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/chat", map[string]any{
		"model":    "whatever",
		"messages": []map[string]string{{"role": "user", "content": "hi"}, {"role": "user", "content": "there"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var reply struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	require.Len(t, reply.Choices, 1)
	require.Equal(t, "Echo: there", reply.Choices[0].Message.Content)
	require.Equal(t, "assistant", reply.Choices[0].Message.Role)

	rec = do(t, r, http.MethodPost, "/api/chat", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"content":"Echo: "`)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodGet, "/healthcheck", nil)

	rec := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `petpal_http_requests_total{method="GET",path="/healthcheck",status="200"} 1`)
}

func jsonNumber(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestStringIDsAreCoerced(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/user", map[string]any{"email": "s@x.io", "nickname": "Sam", "google_registered": "1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id := decode[int64](t, rec)
	sid := jsonNumber(id)

	rec = do(t, r, http.MethodPost, "/notifications", `{"user_id":"`+sid+`","enabled":"0"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, id, decode[int64](t, rec))
	rec = do(t, r, http.MethodGet, "/notifications/"+sid, nil)
	require.Equal(t, float64(0), decode[map[string]any](t, rec)["enabled"])

	rec = do(t, r, http.MethodPost, "/settings", `{"user_id":"`+sid+`","key":"theme","value":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, "/memory", `{"user_id":"`+sid+`","role":"user","content":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, "/progress", `{"id":"`+sid+`","learning_progress":"{\"a\":1}"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, "/achievements", `{"id":"`+sid+`","achievements":"[\"first\"]"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, "/score", `{"delta":"7"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 7, decode[int](t, rec))

	rec = do(t, r, http.MethodPost, "/settings", `{"user_id":"seven","key":"k","value":"v"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPetDeltasSaturate(t *testing.T) {
	r := newTestRouter(t)
	const maxInt64 = int64(^uint64(0) >> 1)

	rec := do(t, r, http.MethodPost, "/hunger", map[string]any{"delta": -50})
	require.Equal(t, 50, decode[int](t, rec))
	rec = do(t, r, http.MethodPost, "/hunger", map[string]any{"delta": maxInt64})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 100, decode[int](t, rec))

	rec = do(t, r, http.MethodPost, "/score", map[string]any{"delta": maxInt64})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, r, http.MethodPost, "/score", map[string]any{"delta": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, maxInt64, decode[int64](t, rec))
}

func TestChatEchoesStructuredContentAsJSON(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":{"text": "hi", "n": 1}}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reply struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	require.Len(t, reply.Choices, 1)
	require.Equal(t, `Echo: {"text":"hi","n":1}`, reply.Choices[0].Message.Content)

	rec = do(t, r, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":1e21}]}`)
	require.Contains(t, rec.Body.String(), `"content":"Echo: 1e21"`)
}
