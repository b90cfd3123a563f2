package booking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// stubCatalog serves fixed landmark sets per tour type.
type stubCatalog struct {
	byTourType map[landmark.TourType][]landmark.Landmark
	err        error
}

func (c *stubCatalog) AllForTourType(_ context.Context, tourType landmark.TourType) ([]landmark.Landmark, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.byTourType[tourType], nil
}

// stubPublisher records published bookings.
type stubPublisher struct {
	published []*Booking
	err       error
}

func (p *stubPublisher) PublishBookingCreated(_ context.Context, b *Booking) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, b)
	return nil
}

func newTestService(t *testing.T, catalog LandmarkCatalog, publisher EventPublisher) (*Service, *InMemoryRepository) {
	t.Helper()

	repo := NewInMemoryRepository()
	svc := NewService(ServiceConfig{
		Repository: repo,
		Assembler:  NewAssembler(pricing.NewCalculator(pricing.DefaultConfig())),
		Catalog:    catalog,
		Publisher:  publisher,
		Logger:     zerolog.Nop(),
	})
	return svc, repo
}

func validInput() *models.BookingCreateRequest {
	return &models.BookingCreateRequest{
		SessionID:    "itn_test",
		GroupSize:    4,
		StartDate:    "2026-10-15",
		ContactName:  "Maria Santos",
		ContactEmail: "maria@example.com",
		ContactPhone: "+63 917 555 0101",
	}
}

func bookableState() itinerary.State {
	return itinerary.State{
		TourDuration: itinerary.DurationOneDay,
		Day1TourType: landmark.TourTypeCebuCity,
		Day1Landmarks: []landmark.Landmark{
			testLandmark("lmk_cross", "Magellan's Cross", 10.2935, 123.9021, 30),
		},
	}
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	result, err := svc.Create(context.Background(), "usr_1", bookableState(), validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ID, "bkg_"))
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, 4, result.GroupSize)
	assert.Equal(t, "2026-10-15", result.StartDate)

	// 30 minutes of tour prices at the base rate; the record carries the
	// group total.
	assert.Equal(t, 1500*4, result.TotalPrice)

	var details ItineraryDetails
	require.NoError(t, json.Unmarshal(result.ItineraryDetails, &details))
	assert.Equal(t, 1500, details.TotalPrice)
	require.Len(t, details.Landmarks, 1)
	assert.Equal(t, "lmk_cross", details.Landmarks[0].ID)
}

func TestServiceCreate_ValidationErrors(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	tests := []struct {
		name   string
		mutate func(*models.BookingCreateRequest)
		field  string
	}{
		{"zero group size", func(r *models.BookingCreateRequest) { r.GroupSize = 0 }, "groupSize"},
		{"oversized group", func(r *models.BookingCreateRequest) { r.GroupSize = 21 }, "groupSize"},
		{"missing start date", func(r *models.BookingCreateRequest) { r.StartDate = "" }, "startDate"},
		{"malformed start date", func(r *models.BookingCreateRequest) { r.StartDate = "15/10/2026" }, "startDate"},
		{"missing contact name", func(r *models.BookingCreateRequest) { r.ContactName = "" }, "contactName"},
		{"long contact name", func(r *models.BookingCreateRequest) { r.ContactName = strings.Repeat("a", 121) }, "contactName"},
		{"missing email", func(r *models.BookingCreateRequest) { r.ContactEmail = "" }, "contactEmail"},
		{"invalid email", func(r *models.BookingCreateRequest) { r.ContactEmail = "not-an-email" }, "contactEmail"},
		{"long special requests", func(r *models.BookingCreateRequest) { r.SpecialRequests = strings.Repeat("a", 1001) }, "specialRequests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), "usr_1", bookableState(), input)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)

			fields := make([]string, 0, len(valErr.Errors))
			for _, fe := range valErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestServiceCreate_NotBookable(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	state := bookableState()
	state.Day1Landmarks = nil

	_, err := svc.Create(context.Background(), "usr_1", state, validInput())
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestServiceCreate_TwoDays_MissingDay2NotBookable(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	state := bookableState()
	state.TourDuration = itinerary.DurationTwoDays
	state.Day2TourType = landmark.TourTypeMountain

	_, err := svc.Create(context.Background(), "usr_1", state, validInput())
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestServiceCreate_BothDaysFullBundle(t *testing.T) {
	cityFull := []landmark.Landmark{
		testLandmark("lmk_cross", "Magellan's Cross", 10.2935, 123.9021, 30),
		testLandmark("lmk_fort", "Fort San Pedro", 10.2925, 123.9057, 60),
	}
	mountainFull := []landmark.Landmark{
		testLandmark("lmk_sirao", "Sirao Flower Garden", 10.3903, 123.8631, 90),
	}

	catalog := &stubCatalog{byTourType: map[landmark.TourType][]landmark.Landmark{
		landmark.TourTypeCebuCity: cityFull,
		landmark.TourTypeMountain: mountainFull,
	}}
	svc, _ := newTestService(t, catalog, nil)

	state := itinerary.State{
		TourDuration:  itinerary.DurationTwoDays,
		Day1TourType:  landmark.TourTypeCebuCity,
		Day2TourType:  landmark.TourTypeMountain,
		Day1Landmarks: cityFull,
		Day2Landmarks: mountainFull,
	}

	result, err := svc.Create(context.Background(), "usr_1", state, validInput())
	require.NoError(t, err)

	var details MultiDayItineraryDetails
	require.NoError(t, json.Unmarshal(result.ItineraryDetails, &details))
	assert.True(t, details.IsFullPackage)
	assert.Equal(t, 5000, details.TotalPrice)
	assert.Equal(t, 5000*4, result.TotalPrice)
}

func TestServiceCreate_PartialDayIsNotBundle(t *testing.T) {
	cityFull := []landmark.Landmark{
		testLandmark("lmk_cross", "Magellan's Cross", 10.2935, 123.9021, 30),
		testLandmark("lmk_fort", "Fort San Pedro", 10.2925, 123.9057, 60),
	}
	mountainFull := []landmark.Landmark{
		testLandmark("lmk_sirao", "Sirao Flower Garden", 10.3903, 123.8631, 90),
	}

	catalog := &stubCatalog{byTourType: map[landmark.TourType][]landmark.Landmark{
		landmark.TourTypeCebuCity: cityFull,
		landmark.TourTypeMountain: mountainFull,
	}}
	svc, _ := newTestService(t, catalog, nil)

	state := itinerary.State{
		TourDuration:  itinerary.DurationTwoDays,
		Day1TourType:  landmark.TourTypeCebuCity,
		Day2TourType:  landmark.TourTypeMountain,
		Day1Landmarks: cityFull[:1],
		Day2Landmarks: mountainFull,
	}

	result, err := svc.Create(context.Background(), "usr_1", state, validInput())
	require.NoError(t, err)

	var details MultiDayItineraryDetails
	require.NoError(t, json.Unmarshal(result.ItineraryDetails, &details))
	assert.False(t, details.IsFullPackage)
}

func TestServiceCreate_PublishesEvent(t *testing.T) {
	publisher := &stubPublisher{}
	svc, _ := newTestService(t, nil, publisher)

	result, err := svc.Create(context.Background(), "usr_1", bookableState(), validInput())
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, result.ID, publisher.published[0].ID)
}

func TestServiceCreate_PublishFailureDoesNotFailBooking(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("pubsub unavailable")}
	svc, repo := newTestService(t, nil, publisher)

	result, err := svc.Create(context.Background(), "usr_1", bookableState(), validInput())
	require.NoError(t, err)

	// The booking record is intact despite the failed publish.
	stored, err := repo.Get(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, stored.Status)
}

func TestServiceGet_ScopedToUser(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	created, err := svc.Create(context.Background(), "usr_1", bookableState(), validInput())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "usr_1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another user's lookup is a not-found, not a forbidden.
	_, err = svc.Get(context.Background(), "usr_2", created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestServiceList(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), "usr_1", bookableState(), validInput())
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), "usr_2", bookableState(), validInput())
	require.NoError(t, err)

	result, err := svc.List(context.Background(), "usr_1", 50)
	require.NoError(t, err)

	assert.Len(t, result.Items, 3)
	assert.Equal(t, 50, result.Meta.Limit)
	assert.Nil(t, result.Meta.NextCursor)
}

func TestServiceList_Empty(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	result, err := svc.List(context.Background(), "usr_none", 50)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
}
