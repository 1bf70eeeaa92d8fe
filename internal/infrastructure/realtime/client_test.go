package realtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
)

func newTestClient(baseURL string, maxRetries int, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Token:          "gateway-test-token",
		PollTimeout:    2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func disabledBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{Enabled: false}
}

func TestClientPoll_DecodesSnapshot(t *testing.T) {
	t.Parallel()

	var gotToken atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get("X-Gateway-Token"))
		if r.URL.Query().Get("cursor") != "c41" {
			t.Errorf("unexpected cursor param: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cursor":"c42","fixtures":[{"id":"jkt-open-qf-1","tournamentId":"idn-jakarta-open-2026","status":"live"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0, disabledBreaker())

	snapshot, err := client.Poll(context.Background(), "c41")
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if snapshot.Cursor != "c42" {
		t.Fatalf("cursor = %q, want c42", snapshot.Cursor)
	}
	if len(snapshot.Fixtures) != 1 || snapshot.Fixtures[0].ID != "jkt-open-qf-1" {
		t.Fatalf("unexpected fixtures: %+v", snapshot.Fixtures)
	}
	if token, _ := gotToken.Load().(string); token != "gateway-test-token" {
		t.Fatalf("token header = %q", token)
	}
}

func TestClientPoll_NoContentKeepsCursor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0, disabledBreaker())

	snapshot, err := client.Poll(context.Background(), "c7")
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if snapshot.Cursor != "c7" {
		t.Fatalf("cursor = %q, want c7", snapshot.Cursor)
	}
	if len(snapshot.Fixtures) != 0 {
		t.Fatalf("expected empty batch, got %d fixtures", len(snapshot.Fixtures))
	}
}

func TestClientPoll_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		http.Error(w, "bad cursor", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3, disabledBreaker())

	if _, err := client.Poll(context.Background(), "broken"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("expected a single request, got %d", got)
	}
}

func TestClientPoll_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) == 1 {
			http.Error(w, "gateway hiccup", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"cursor":"c2","fixtures":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 1, disabledBreaker())

	snapshot, err := client.Poll(context.Background(), "c1")
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if snapshot.Cursor != "c2" {
		t.Fatalf("cursor = %q, want c2", snapshot.Cursor)
	}
	if got := requests.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
}

func TestClientPoll_CircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	if _, err := client.Poll(context.Background(), ""); err == nil {
		t.Fatal("expected transport error on first poll")
	}

	_, err := client.Poll(context.Background(), "")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
}
