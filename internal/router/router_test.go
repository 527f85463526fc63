package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/internal/handlers"
	"github.com/GregMSThompson/factcheck/internal/metrics"
	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/internal/response"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type stubFactChecker struct {
	result models.FactCheckResult
	err    error
}

func (s *stubFactChecker) FactCheck(ctx context.Context, claim string) (models.FactCheckResult, error) {
	return s.result, s.err
}

func newTestRouter(svc *stubFactChecker) http.Handler {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return NewRouter(&handlers.Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		FactCheckSvc:    svc,
		Metrics:         metrics.New().Handler(),
	})
}

func TestFactCheckRoundTrip(t *testing.T) {
	svc := &stubFactChecker{result: models.FactCheckResult{
		Rating:        models.RatingFalse,
		Summary:       "S",
		Justification: "J",
		Sources:       []models.Citation{},
	}}
	rr := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/factcheck", strings.NewReader(`{"claim":"x"}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status mismatch: %d (%s)", rr.Code, rr.Body.String())
	}
	var body struct {
		Success bool                   `json:"success"`
		Data    models.FactCheckResult `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data.Rating != models.RatingFalse || body.Data.Summary != "S" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestFactCheckProviderErrorReturnsBadGateway(t *testing.T) {
	svc := &stubFactChecker{err: errs.NewProviderError(context.DeadlineExceeded)}
	rr := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/factcheck", strings.NewReader(`{"claim":"x"}`)))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status mismatch: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "provider call failure: context deadline exceeded") {
		t.Fatalf("message not passed through: %s", rr.Body.String())
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(&stubFactChecker{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz mismatch: %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status mismatch: %d", rr.Code)
	}
}
