package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
)

func TestFlightFeedProvider_FetchEvents_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}

		events := []dtos.RawFlightEvent{
			{
				FlightNumber:      "XX1234",
				DepartureCity:     "BUE",
				ArrivalCity:       "MAD",
				DepartureDatetime: "2024-09-12T12:00:00Z",
				ArrivalDatetime:   "2024-09-13T00:00:00Z",
			},
			{
				FlightNumber:      "YY5678",
				DepartureCity:     "MAD",
				ArrivalCity:       "BOG",
				DepartureDatetime: "2024-09-13T02:00:00Z",
				ArrivalDatetime:   "2024-09-13T03:00:00Z",
			},
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	provider := &FlightFeedProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	events, status, err := provider.FetchEvents(ctx)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}

	if events[0].FlightNumber != "XX1234" {
		t.Errorf("Expected flight XX1234, got %s", events[0].FlightNumber)
	}
}

func TestFlightFeedProvider_FetchEvents_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := &FlightFeedProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	_, status, err := provider.FetchEvents(context.Background())

	if err == nil {
		t.Error("Expected error for upstream 503")
	}

	if status != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", status)
	}
}

func TestFlightFeedProvider_FetchEvents_BadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	provider := &FlightFeedProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	_, _, err := provider.FetchEvents(context.Background())
	if err == nil {
		t.Error("Expected error for non-array payload")
	}
}

func TestFlightFeedProvider_FetchEvents_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	provider := &FlightFeedProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := provider.FetchEvents(ctx)
	if err == nil {
		t.Error("Expected error for cancelled context")
	}
}
