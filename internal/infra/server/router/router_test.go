package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ledgerly/backend/config"
	"github.com/ledgerly/backend/internal/infra/db"
	"github.com/ledgerly/backend/internal/infra/dependency"
)

// newTestServer wires the full application over in-memory storage and
// returns the Gin engine, the way cmd/api does it for real backends.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Load()
	cfg.Server.Environment = "test"

	injector, err := dependency.NewInjector(context.Background(), cfg, db.NewMemoryKVStore(), func() bool { return true })
	if err != nil {
		t.Fatalf("failed to wire dependencies: %v", err)
	}
	return injector.Router.Setup(cfg.Server.Environment)
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRouterEndpoints(t *testing.T) {
	t.Setenv("ENV", "test")
	server := newTestServer(t)

	t.Run("health reports storage status", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "ok" {
			t.Errorf("expected status ok, got %v", body["status"])
		}
		if body["storage"] != "connected" {
			t.Errorf("expected storage connected, got %v", body["storage"])
		}
	})

	t.Run("accounts list returns the seeded portfolio", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/v1/accounts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		accounts, ok := body["accounts"].([]any)
		if !ok {
			t.Fatalf("expected an accounts array, got %T", body["accounts"])
		}
		if len(accounts) != 4 {
			t.Errorf("expected 4 seeded accounts, got %d", len(accounts))
		}
	})

	t.Run("account create round-trips through the API", func(t *testing.T) {
		w := doRequest(t, server, http.MethodPost, "/api/v1/accounts",
			`{"name":"Test Checking","type":"bank","balance":"150.75","currency":"USD"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		account := decodeBody(t, w)
		if account["name"] != "Test Checking" {
			t.Errorf("expected the created account echoed back, got %v", account["name"])
		}
		id, _ := account["id"].(string)
		if !strings.HasPrefix(id, "acc-") {
			t.Errorf("expected a generated account id, got %q", id)
		}
	})

	t.Run("invalid account payload is a 400", func(t *testing.T) {
		w := doRequest(t, server, http.MethodPost, "/api/v1/accounts",
			`{"name":"","type":"bank","currency":"USD"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transaction create moves the account balance", func(t *testing.T) {
		created := doRequest(t, server, http.MethodPost, "/api/v1/accounts",
			`{"name":"Spend From","type":"bank","balance":"100.00","currency":"USD"}`)
		if created.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", created.Code)
		}
		accountID := decodeBody(t, created)["id"].(string)

		w := doRequest(t, server, http.MethodPost, "/api/v1/transactions",
			`{"date":"2026-08-31","merchant":"Corner Shop","amount":"-12.50","currency":"USD","category":"Food & Dining","accountId":"`+accountID+`","type":"expense"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		accounts := doRequest(t, server, http.MethodGet, "/api/v1/accounts", "")
		for _, raw := range decodeBody(t, accounts)["accounts"].([]any) {
			account := raw.(map[string]any)
			if account["id"] == accountID {
				if got := account["balance"]; got != "87.5" && got != "87.50" {
					t.Errorf("expected balance 87.50, got %v", got)
				}
				return
			}
		}
		t.Fatal("created account missing from the list")
	})

	t.Run("notifications are consumed on read", func(t *testing.T) {
		// The account created above left a success notification behind.
		doRequest(t, server, http.MethodPost, "/api/v1/accounts",
			`{"name":"Notify Me","type":"cash","balance":"0","currency":"USD"}`)

		first := doRequest(t, server, http.MethodGet, "/api/v1/notifications/latest", "")
		if first.Code != http.StatusOK {
			t.Fatalf("expected 200 with a pending notification, got %d", first.Code)
		}
		body := decodeBody(t, first)
		if body["message"] == "" || body["level"] == "" {
			t.Errorf("expected message and level, got %v", body)
		}

		second := doRequest(t, server, http.MethodGet, "/api/v1/notifications/latest", "")
		if second.Code != http.StatusNoContent {
			t.Errorf("expected 204 once consumed, got %d", second.Code)
		}
	})

	t.Run("dashboard metrics are served", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/v1/dashboard/metrics", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		metrics, ok := body["metrics"].([]any)
		if !ok {
			t.Fatalf("expected a metrics array, got %T", body["metrics"])
		}
		if len(metrics) != 3 {
			t.Fatalf("expected 3 metrics, got %d", len(metrics))
		}
		if label := metrics[0].(map[string]any)["label"]; label != "Net Worth" {
			t.Errorf("expected the net worth metric first, got %v", label)
		}
	})

	t.Run("data reset requires confirmation", func(t *testing.T) {
		denied := doRequest(t, server, http.MethodPost, "/api/v1/data/reset", `{"confirm":false}`)
		if denied.Code != http.StatusBadRequest {
			t.Errorf("expected 400 without confirmation, got %d", denied.Code)
		}

		allowed := doRequest(t, server, http.MethodPost, "/api/v1/data/reset", `{"confirm":true}`)
		if allowed.Code != http.StatusNoContent {
			t.Errorf("expected 204 on a confirmed reset, got %d", allowed.Code)
		}

		accounts := doRequest(t, server, http.MethodGet, "/api/v1/accounts", "")
		if got := len(decodeBody(t, accounts)["accounts"].([]any)); got != 4 {
			t.Errorf("expected the seed portfolio after reset, got %d accounts", got)
		}
	})

	t.Run("unknown routes are a 404", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/v1/nope", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
