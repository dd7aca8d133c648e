package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/javicatax/vuelos-kiu-api/internal/common"
	"github.com/javicatax/vuelos-kiu-api/internal/db/repositories"
	"github.com/javicatax/vuelos-kiu-api/internal/metrics"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
	"github.com/javicatax/vuelos-kiu-api/internal/models/entities"
	"github.com/javicatax/vuelos-kiu-api/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// promauto registers against the default registry, so the test binary shares
// one metrics instance.
var testMetrics = metrics.NewMetricsRegistry()

func setupDeps(t *testing.T) (*Dependencies, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entities.FlightEvent{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	eventRepo := repositories.NewFlightEventRepository(db)

	deps := &Dependencies{
		Repo: &Repositories{
			FlightEvents: eventRepo,
		},
		Services: &Services{
			Search: services.NewJourneySearchService(eventRepo),
			Ingest: services.NewFlightIngestService(eventRepo),
			Cache:  common.NewCacheService(900, 600),
		},
		Metrics: testMetrics,
	}
	return deps, db
}

func seedEvent(t *testing.T, db *gorm.DB, number, from, to, dep, arr string) {
	depTime, err := services.ParseEventDatetime(dep)
	if err != nil {
		t.Fatalf("Bad test departure datetime: %v", err)
	}
	arrTime, err := services.ParseEventDatetime(arr)
	if err != nil {
		t.Fatalf("Bad test arrival datetime: %v", err)
	}
	event := entities.FlightEvent{
		FlightNumber:      number,
		DepartureCity:     from,
		ArrivalCity:       to,
		DepartureDatetime: depTime,
		ArrivalDatetime:   arrTime,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}
}

type searchResponse struct {
	Status string         `json:"status"`
	Error  string         `json:"error"`
	Data   []dtos.Journey `json:"data"`
}

func TestJourneySearchHandler_MissingParams(t *testing.T) {
	deps, _ := setupDeps(t)
	handler := JourneySearchHandler(deps)

	req := httptest.NewRequest("GET", "/api/v1/journeys/search?date=2024-09-12&from=BUE", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "date, from city and to city are required" {
		t.Errorf("Unexpected error message: %s", resp.Error)
	}
}

func TestJourneySearchHandler_InvalidDate(t *testing.T) {
	deps, _ := setupDeps(t)
	handler := JourneySearchHandler(deps)

	req := httptest.NewRequest("GET", "/api/v1/journeys/search?date=2024/09/12&from=BUE&to=MAD", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Invalid date format. Use YYYY-MM-DD" {
		t.Errorf("Unexpected error message: %s", resp.Error)
	}
}

func TestJourneySearchHandler_ReturnsJourneys(t *testing.T) {
	deps, db := setupDeps(t)
	handler := JourneySearchHandler(deps)

	seedEvent(t, db, "XX1234", "BUE", "MAD", "2024-09-12T12:00:00Z", "2024-09-13T00:00:00Z")
	seedEvent(t, db, "YY5678", "MAD", "BOG", "2024-09-13T02:00:00Z", "2024-09-13T03:00:00Z")

	req := httptest.NewRequest("GET", "/api/v1/journeys/search?date=2024-09-12&from=BUE&to=BOG", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 journey, got %d", len(resp.Data))
	}
	if resp.Data[0].Connections != 1 {
		t.Errorf("Expected 1 connection, got %d", resp.Data[0].Connections)
	}

	// Second request is served from cache with identical payload
	w2 := httptest.NewRecorder()
	handler(w2, httptest.NewRequest("GET", "/api/v1/journeys/search?date=2024-09-12&from=BUE&to=BOG", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200 on cached request, got %d", w2.Code)
	}
	var cached searchResponse
	if err := json.NewDecoder(w2.Body).Decode(&cached); err != nil {
		t.Fatalf("Failed to decode cached response: %v", err)
	}
	if len(cached.Data) != 1 || cached.Data[0].Connections != 1 {
		t.Errorf("Cached response differs: %+v", cached.Data)
	}
}

func TestJourneySearchHandler_EmptyResultIsOK(t *testing.T) {
	deps, _ := setupDeps(t)
	handler := JourneySearchHandler(deps)

	req := httptest.NewRequest("GET", "/api/v1/journeys/search?date=2024-09-12&from=BUE&to=SCL", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for no results, got %d", w.Code)
	}

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("Expected empty journey list, got %+v", resp.Data)
	}
}

type ingestResponse struct {
	Status string              `json:"status"`
	Error  string              `json:"error"`
	Data   *dtos.IngestSummary `json:"data"`
}

func TestIngestFlightEventsHandler(t *testing.T) {
	deps, db := setupDeps(t)
	handler := IngestFlightEventsHandler(deps)

	body := `[
		{"flight_number":"XX1234","departure_city":"BUE","arrival_city":"MAD","departure_datetime":"2024-09-12T12:00:00Z","arrival_datetime":"2024-09-13T00:00:00Z"},
		{"flight_number":"BAD001","departure_city":"BU","arrival_city":"MAD","departure_datetime":"2024-09-12T12:00:00Z","arrival_datetime":"2024-09-13T00:00:00Z"}
	]`

	req := httptest.NewRequest("POST", "/api/v1/flights/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ingestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data == nil {
		t.Fatal("Expected a batch summary")
	}
	if resp.Data.Created != 1 || resp.Data.Rejected != 1 {
		t.Errorf("Unexpected summary: %+v", resp.Data)
	}

	var count int64
	db.Model(&entities.FlightEvent{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 stored record, got %d", count)
	}
}

func TestIngestFlightEventsHandler_BadBody(t *testing.T) {
	deps, _ := setupDeps(t)
	handler := IngestFlightEventsHandler(deps)

	req := httptest.NewRequest("POST", "/api/v1/flights/events", strings.NewReader(`{"not":"an array"}`))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-array body, got %d", w.Code)
	}
}

func TestDestinationsHandler(t *testing.T) {
	deps, db := setupDeps(t)
	handler := DestinationsHandler(deps)

	seedEvent(t, db, "XX1234", "BUE", "MAD", "2024-09-12T12:00:00Z", "2024-09-13T00:00:00Z")
	seedEvent(t, db, "XX5678", "BUE", "SCL", "2024-09-12T09:00:00Z", "2024-09-12T11:00:00Z")

	req := httptest.NewRequest("GET", "/api/v1/journeys/destinations?from=BUE&date=2024-09-12", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("Expected 2 destinations, got %v", resp.Data)
	}

	// A destination added after the first request is invisible while the
	// cached value is live
	seedEvent(t, db, "XX9999", "BUE", "BOG", "2024-09-12T15:00:00Z", "2024-09-12T20:00:00Z")

	w2 := httptest.NewRecorder()
	handler(w2, httptest.NewRequest("GET", "/api/v1/journeys/destinations?from=BUE&date=2024-09-12", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200 on cached request, got %d", w2.Code)
	}
	var cached struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(w2.Body).Decode(&cached); err != nil {
		t.Fatalf("Failed to decode cached response: %v", err)
	}
	if len(cached.Data) != 2 {
		t.Errorf("Expected cached destinations, got %v", cached.Data)
	}
}

func TestDepartureTimesHandler(t *testing.T) {
	deps, db := setupDeps(t)
	handler := DepartureTimesHandler(deps)

	seedEvent(t, db, "XX1234", "BUE", "MAD", "2024-09-12T12:00:00Z", "2024-09-13T00:00:00Z")

	req := httptest.NewRequest("GET", "/api/v1/journeys/departures?from=BUE&to=MAD&date=2024-09-12", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0] != "2024-09-12 12:00:00" {
		t.Errorf("Unexpected departure times: %v", resp.Data)
	}
}
