package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

func TestLiveness_ReportsVersion(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthHandler("0.1.0").Liveness)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "ok" || resp["version"] != "0.1.0" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestReadiness_Healthy(t *testing.T) {
	e := echo.New()
	e.GET("/health/ready", NewReadinessHandler(&stubPinger{}).Readiness)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d", rec.Code)
	}
}

func TestReadiness_StoreDown(t *testing.T) {
	e := echo.New()
	e.GET("/health/ready", NewReadinessHandler(&stubPinger{err: errors.New("unreachable")}).Readiness)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got: %d", rec.Code)
	}
	var resp struct {
		Status       string `json:"status"`
		Dependencies map[string]struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("expected degraded status, got: %s", resp.Status)
	}
	if dep := resp.Dependencies["supabase"]; dep.Status != "unhealthy" || dep.Error == "" {
		t.Errorf("unexpected dependency detail: %+v", dep)
	}
}
