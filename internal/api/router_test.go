package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smarteros/conductor/internal/infrastructure/config"
	"github.com/smarteros/conductor/internal/infrastructure/db/supabase"
)

// fakeStore behaves like a minimal PostgREST: profile upserts succeed,
// tenant inserts return a generated id, membership inserts succeed.
type fakeStore struct {
	tenantNames []string
}

func (f *fakeStore) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/v1/tenants" && r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			var tenant struct {
				Name string `json:"name"`
			}
			_ = json.Unmarshal(body, &tenant)
			f.tenantNames = append(f.tenantNames, tenant.Name)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `[{"id":"c1a9e9c0-0000-4000-8000-000000000001"}]`)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

func newRouterUnderTest(t *testing.T, secret string) (*fakeStore, http.Handler) {
	t.Helper()

	store := &fakeStore{}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Port:          "8080",
		Env:           "test",
		Version:       "0.1.0",
		WebhookSecret: secret,
		Supabase: config.SupabaseConfig{
			URL:            srv.URL,
			ServiceRoleKey: "service-key",
		},
	}
	client := supabase.NewClient(supabase.Config{
		URL:            cfg.Supabase.URL,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
	})
	return store, NewRouter(cfg, client, zerolog.Nop())
}

func TestRouter_SignupEndToEnd(t *testing.T) {
	store, e := newRouterUnderTest(t, "")

	body := `{"id":"user-123","email":"alice@example.com","created_at":"2026-08-31T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status  string `json:"status"`
		Details struct {
			UserID   string  `json:"user_id"`
			TenantID *string `json:"tenant_id"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got: %s", resp.Status)
	}
	if resp.Details.UserID != "user-123" {
		t.Errorf("unexpected user id: %s", resp.Details.UserID)
	}
	if resp.Details.TenantID == nil {
		t.Fatal("expected non-null tenant id")
	}
	if len(store.tenantNames) != 1 || store.tenantNames[0] != "alice's Workspace" {
		t.Errorf("unexpected tenant names created: %v", store.tenantNames)
	}
}

func TestRouter_HealthReportsVersion(t *testing.T) {
	_, e := newRouterUnderTest(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"version":"0.1.0"`) {
		t.Errorf("expected version in body, got: %s", rec.Body.String())
	}
}

func TestRouter_SecretEnforced(t *testing.T) {
	_, e := newRouterUnderTest(t, "abc")

	body := `{"id":"user-123","email":"alice@example.com","created_at":"t"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", "xyz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid webhook signature") {
		t.Errorf("expected error detail, got: %s", rec.Body.String())
	}
}
