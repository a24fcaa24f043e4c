package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsHandlerExposesAPICounters(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/petstats", "200", 12*time.Millisecond)
	m.ObserveAPI("POST", "/login", "401", time.Millisecond)
	m.IncPetUpdate("score")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	text := string(body)
	for _, want := range []string{
		`petpal_http_requests_total{method="GET",path="/petstats",status="200"} 1`,
		`petpal_http_errors_total{type="client_error"} 1`,
		`petpal_pet_stat_updates_total{kind="score"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in metrics output", want)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.IncChatReply("echo", "ok")
	m.StartRedisCollector(context.Background(), nil, nil)
	if err := m.RegisterDB(nil, "x"); err != nil {
		t.Fatalf("RegisterDB: %v", err)
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
