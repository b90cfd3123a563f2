package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugbotours/sugbotours/internal/api"
	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/auth"
	"github.com/sugbotours/sugbotours/internal/booking"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// testAuthService creates an auth service for testing.
func testAuthService() *auth.Service {
	return auth.NewService(auth.Config{
		SigningKey: "test-secret-key-for-testing-only",
		Issuer:     "https://api.sugbotours.ph",
		Audience:   "sugbotours-api",
	})
}

// generateTestToken generates a valid test token for a user.
func generateTestToken(t *testing.T) string {
	t.Helper()
	token, _, err := testAuthService().GenerateAccessToken("usr_testuser123")
	require.NoError(t, err)
	return token
}

// seedLandmarks loads a small city-tour catalog into the repository.
func seedLandmarks(t *testing.T, svc *landmark.Service) []string {
	t.Helper()

	inputs := []models.LandmarkCreateRequest{
		{
			Name:              "Magellan's Cross",
			Description:       "Historic cross planted in 1521",
			Location:          models.LatLng{Lat: 10.2934, Lng: 123.9012},
			EstimatedDuration: 30,
			Category:          "Historical",
			TourType:          "cebu-city",
		},
		{
			Name:              "Basilica del Santo Nino",
			Description:       "Oldest Roman Catholic church in the country",
			Location:          models.LatLng{Lat: 10.2942, Lng: 123.9021},
			EstimatedDuration: 45,
			Category:          "Religious",
			TourType:          "cebu-city",
		},
		{
			Name:              "Fort San Pedro",
			Description:       "Spanish-era military fort",
			Location:          models.LatLng{Lat: 10.2925, Lng: 123.9059},
			EstimatedDuration: 60,
			Category:          "Historical",
			TourType:          "cebu-city",
		},
	}

	ids := make([]string, 0, len(inputs))
	for i := range inputs {
		created, err := svc.Create(context.Background(), &inputs[i])
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

type testEnv struct {
	router    http.Handler
	landmarks *landmark.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zerolog.New(io.Discard)

	landmarkService := landmark.NewService(landmark.NewInMemoryRepository())
	store := itinerary.NewStore(itinerary.StoreConfig{Logger: logger})
	calculator := pricing.NewCalculator(pricing.DefaultConfig())
	bookingService := booking.NewService(booking.ServiceConfig{
		Repository: booking.NewInMemoryRepository(),
		Assembler:  booking.NewAssembler(calculator),
		Catalog:    landmarkService,
		Logger:     logger,
	})

	router := api.NewRouter(api.RouterConfig{
		Version:         "test",
		BuildTime:       "2026-01-01T00:00:00Z",
		Logger:          logger,
		AuthService:     testAuthService(),
		LandmarkService: landmarkService,
		SessionStore:    store,
		Calculator:      calculator,
		BookingService:  bookingService,
	})

	return &testEnv{router: router, landmarks: landmarkService}
}

// addAuthHeader adds a valid Bearer token to the request.
func addAuthHeader(t *testing.T, req *http.Request) {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t))
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		addAuthHeader(t, req)
	}
	w := httptest.NewRecorder()

	e.router.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/ops/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_ReadinessCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/ops/ready", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_ListLandmarks(t *testing.T) {
	env := newTestEnv(t)
	seedLandmarks(t, env.landmarks)

	w := env.do(t, http.MethodGet, "/v1/landmarks?tourType=cebu-city", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var list models.LandmarkList
	err := json.Unmarshal(w.Body.Bytes(), &list)
	require.NoError(t, err)

	assert.Len(t, list.Items, 3)
}

func TestRouter_ListLandmarks_InvalidTourType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/landmarks?tourType=underwater", nil, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.NotEmpty(t, problem.TraceID)
}

func TestRouter_GetLandmark_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/landmarks/lmk_missing", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminCreateLandmark_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	input := models.LandmarkCreateRequest{
		Name:              "Taoist Temple",
		Location:          models.LatLng{Lat: 10.3321, Lng: 123.8924},
		EstimatedDuration: 45,
		Category:          "Religious",
		TourType:          "cebu-city",
	}

	w := env.do(t, http.MethodPost, "/v1/admin/landmarks", input, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/v1/admin/landmarks", input, true)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))
}

func TestRouter_CreateSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)

	assert.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	err := json.Unmarshal(w.Body.Bytes(), &sess)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "duration", sess.CurrentStep)
	assert.Equal(t, 1, sess.CurrentDay)
	assert.False(t, sess.Summary.CanBook)
}

func TestRouter_WizardFlow_OneDayBooking(t *testing.T) {
	env := newTestEnv(t)
	ids := seedLandmarks(t, env.landmarks)

	// Start a session.
	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	actionsPath := "/v1/itinerary/sessions/" + sess.ID + "/actions"

	// Choose duration and tour type.
	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSetDuration, Duration: "1-day",
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSetDay1TourType, TourType: "cebu-city",
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	// Toggle two landmarks in.
	for _, id := range ids[:2] {
		w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
			Type: models.ActionToggleLandmark, LandmarkID: id,
		}, false)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Len(t, sess.Day1Landmarks, 2)
	assert.True(t, sess.Summary.CanBook)
	assert.Positive(t, sess.Summary.TotalTime)
	assert.Positive(t, sess.Summary.TotalPrice)

	// Book it.
	w = env.do(t, http.MethodPost, "/v1/bookings", models.BookingCreateRequest{
		SessionID:    sess.ID,
		GroupSize:    4,
		StartDate:    "2026-10-01",
		ContactName:  "Maria Santos",
		ContactEmail: "maria@example.com",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, 4, b.GroupSize)
	assert.Positive(t, b.TotalPrice)

	// The session is consumed by the booking.
	w = env.do(t, http.MethodGet, "/v1/itinerary/sessions/"+sess.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The booking is retrievable.
	w = env.do(t, http.MethodGet, "/v1/bookings/"+b.ID, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SelectAll_UsesTourTypeCatalog(t *testing.T) {
	env := newTestEnv(t)
	seedLandmarks(t, env.landmarks)

	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	actionsPath := "/v1/itinerary/sessions/" + sess.ID + "/actions"

	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSetDuration, Duration: "1-day",
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSetDay1TourType, TourType: "cebu-city",
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	// SELECT_ALL with no explicit list pulls the full tour-type catalog.
	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSelectAll,
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Len(t, sess.Day1Landmarks, 3)
	assert.True(t, sess.IsFullPackage)

	// A second SELECT_ALL while the full package is active deselects all.
	w = env.do(t, http.MethodPost, actionsPath, models.ItineraryActionRequest{
		Type: models.ActionSelectAll,
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Empty(t, sess.Day1Landmarks)
	assert.False(t, sess.IsFullPackage)
}

func TestRouter_DispatchAction_UnknownLandmark(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))

	w = env.do(t, http.MethodPost, "/v1/itinerary/sessions/"+sess.ID+"/actions", models.ItineraryActionRequest{
		Type: models.ActionToggleLandmark, LandmarkID: "lmk_missing",
	}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_DispatchAction_UnknownType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))

	w = env.do(t, http.MethodPost, "/v1/itinerary/sessions/"+sess.ID+"/actions", models.ItineraryActionRequest{
		Type: "EXPLODE",
	}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_PricingQuote(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/pricing/quote", models.PricingQuoteRequest{
		TotalMinutes: 300,
	}, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var quote models.PricingQuote
	err := json.Unmarshal(w.Body.Bytes(), &quote)
	require.NoError(t, err)

	// 300 minutes is two hours past the base window.
	assert.Equal(t, 1500, quote.BaseRate)
	assert.Equal(t, 2, quote.AdditionalHours)
	assert.Equal(t, 800, quote.AdditionalCost)
	assert.Equal(t, 2300, quote.TotalPrice)
}

func TestRouter_CreateBooking_NotBookable(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/itinerary/sessions", nil, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess models.ItinerarySession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))

	// No landmarks selected yet.
	w = env.do(t, http.MethodPost, "/v1/bookings", models.BookingCreateRequest{
		SessionID:    sess.ID,
		GroupSize:    2,
		StartDate:    "2026-10-01",
		ContactName:  "Maria Santos",
		ContactEmail: "maria@example.com",
	}, true)

	assert.Equal(t, http.StatusConflict, w.Code)

	// The failed booking restores the session; the wizard can continue.
	w = env.do(t, http.MethodGet, "/v1/itinerary/sessions/"+sess.ID, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreateBooking_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/bookings", models.BookingCreateRequest{
		SessionID: "itn_whatever",
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_ListBookings_Empty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/bookings", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)

	var page models.PagedBookings
	err := json.Unmarshal(w.Body.Bytes(), &page)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
}

func TestRouter_RequestID_Generated(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/ops/health", nil, false)

	requestID := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, requestID)
	assert.Contains(t, requestID, "req_")
}

func TestRouter_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/nonexistent", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
