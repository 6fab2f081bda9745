package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/stockview/internal/common"
)

func TestCORSMiddleware_SetsHeaders(t *testing.T) {
	rec := doRequest(newTestServer(&stubStockService{}), http.MethodGet, "/health")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Access-Control-Allow-Methods missing")
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	stub := &stubStockService{}
	rec := doRequest(newTestServer(stub), http.MethodOptions, "/stock?ticker=AAPL")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if stub.called {
		t.Error("preflight request reached the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCorrelationID_GeneratedWhenAbsent(t *testing.T) {
	rec := doRequest(newTestServer(&stubStockService{}), http.MethodGet, "/health")

	corrID := rec.Header().Get("X-Correlation-ID")
	if len(corrID) != 8 {
		t.Errorf("X-Correlation-ID = %q, want 8-char generated ID", corrID)
	}
}

func TestCorrelationID_PropagatedFromRequest(t *testing.T) {
	s := newTestServer(&stubStockService{})

	for header, value := range map[string]string{
		"X-Request-ID":     "req-123",
		"X-Correlation-ID": "corr-456",
	} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(header, value)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Correlation-ID"); got != value {
			t.Errorf("%s: X-Correlation-ID = %q, want %q", header, got, value)
		}
	}
}

func TestRecoveryMiddleware_PanicBecomes500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := applyMiddleware(panicking, common.NewSilentLogger())

	req := httptest.NewRequest(http.MethodGet, "/stock?ticker=AAPL", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %v, want generic message", body["error"])
	}
}
