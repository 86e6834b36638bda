package exchange_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chrisw/gowallet/internal/adapter/exchange"
	"github.com/chrisw/gowallet/internal/domain"
)

func TestClientFetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/latest.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		if got := r.URL.Query().Get("app_id"); got != "test-app" {
			t.Errorf("app_id = %q, want test-app", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","timestamp":1609459200,"rates":{"EUR":0.833324,"GBP":0.75,"JPY":103.5}}`))
	}))
	defer server.Close()

	client := exchange.NewClient(server.URL, "test-app", 5*time.Second, zerolog.Nop())

	quote, err := client.FetchRates(context.Background())
	if err != nil {
		t.Fatalf("FetchRates() error: %v", err)
	}

	if quote.Base != "USD" {
		t.Errorf("Base = %q, want USD", quote.Base)
	}

	rate, ok := quote.Rate("EUR")
	if !ok {
		t.Fatal("EUR missing from quote")
	}

	if !rate.Equal(decimal.RequireFromString("0.833324")) {
		t.Errorf("EUR rate = %s, want 0.833324", rate)
	}

	if quote.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestClientFetchRatesUpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "missing app_id", http.StatusUnauthorized)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rates": not-json`))
			},
		},
		{
			name: "empty rate table",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"base":"USD","rates":{}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := exchange.NewClient(server.URL, "test-app", 5*time.Second, zerolog.Nop())

			_, err := client.FetchRates(context.Background())
			if !errors.Is(err, domain.ErrRateServiceUnavailable) {
				t.Errorf("FetchRates() error = %v, want ErrRateServiceUnavailable", err)
			}
		})
	}
}

func TestClientFetchRatesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := exchange.NewClient(server.URL, "test-app", time.Second, zerolog.Nop())

	_, err := client.FetchRates(context.Background())
	if !errors.Is(err, domain.ErrRateServiceUnavailable) {
		t.Errorf("FetchRates() error = %v, want ErrRateServiceUnavailable", err)
	}
}
