package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// Validation constants.
const (
	MaxGroupSize         = 20
	MaxContactNameLength = 120
	MaxSpecialReqsLength = 1000
	StartDateLayout      = "2006-01-02"
)

// emailRegex is a permissive sanity check, not full RFC validation.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EventPublisher publishes booking lifecycle events. Delivery is
// best-effort: a failed publish never fails the booking.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, b *Booking) error
}

// LandmarkCatalog resolves the full landmark set of a tour type. Used to
// decide whether a 2-day tour's days each cover their full bundle.
type LandmarkCatalog interface {
	AllForTourType(ctx context.Context, tourType landmark.TourType) ([]landmark.Landmark, error)
}

// ServiceConfig holds configuration for the booking service.
type ServiceConfig struct {
	Repository Repository
	Assembler  *Assembler
	Catalog    LandmarkCatalog

	// Publisher is optional; nil disables event publishing.
	Publisher EventPublisher

	Logger zerolog.Logger
}

// Service creates and retrieves bookings.
type Service struct {
	repo      Repository
	assembler *Assembler
	catalog   LandmarkCatalog
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewService creates a new booking service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:      cfg.Repository,
		assembler: cfg.Assembler,
		catalog:   cfg.Catalog,
		publisher: cfg.Publisher,
		logger:    cfg.Logger,
	}
}

// Create validates the booking request against the itinerary state,
// assembles the payload, persists the booking, and publishes a
// booking-created event. The itinerary must satisfy CanBook; the
// assembler itself does not re-validate.
func (s *Service) Create(ctx context.Context, userID string, state itinerary.State, input *models.BookingCreateRequest) (*models.Booking, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if !itinerary.CanBook(state) {
		return nil, ErrNotBookable
	}

	bothDaysFull, err := s.bothDaysFull(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("resolving full-package status: %w", err)
	}

	payload := s.assembler.Assemble(state, bothDaysFull)
	serialized, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serializing itinerary payload: %w", err)
	}

	startDate, _ := time.Parse(StartDateLayout, input.StartDate)

	now := time.Now()
	b := &Booking{
		ID:               "bkg_" + uuid.New().String()[:22],
		UserID:           userID,
		ItineraryDetails: serialized,
		TotalPrice:       payload.PerPersonPrice() * input.GroupSize,
		GroupSize:        input.GroupSize,
		StartDate:        startDate,
		ContactName:      input.ContactName,
		ContactEmail:     input.ContactEmail,
		ContactPhone:     input.ContactPhone,
		SpecialRequests:  input.SpecialRequests,
		Status:           StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", b.ID).
		Str("user_id", userID).
		Int("group_size", b.GroupSize).
		Int("total_price", b.TotalPrice).
		Msg("booking created")

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(ctx, b); err != nil {
			s.logger.Warn().Err(err).
				Str("booking_id", b.ID).
				Msg("failed to publish booking-created event")
		}
	}

	result := s.toAPIBooking(b)
	return &result, nil
}

// Get retrieves a booking by ID for a user.
func (s *Service) Get(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.repo.GetByUserAndID(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	result := s.toAPIBooking(b)
	return &result, nil
}

// List retrieves all bookings for a user.
func (s *Service) List(ctx context.Context, userID string, limit int) (*models.PagedBookings, error) {
	result, err := s.repo.List(ctx, userID, ListOptions{Limit: limit})
	if err != nil {
		return nil, err
	}

	items := make([]models.Booking, 0, len(result.Items))
	for _, b := range result.Items {
		items = append(items, s.toAPIBooking(b))
	}

	var nextCursor *string
	if result.NextCursor != "" {
		nextCursor = &result.NextCursor
	}

	return &models.PagedBookings{
		Items: items,
		Meta: models.PagedResponseMeta{
			Limit:      limit,
			NextCursor: nextCursor,
		},
	}, nil
}

// bothDaysFull reports whether both days of a 2-day tour cover the full
// landmark set of their tour type. Single-day tours always return false;
// the state's own flag governs them.
func (s *Service) bothDaysFull(ctx context.Context, state itinerary.State) (bool, error) {
	if state.TourDuration != itinerary.DurationTwoDays {
		return false, nil
	}
	if s.catalog == nil {
		return false, nil
	}

	day1Full, err := s.dayCoversFullSet(ctx, state.Day1TourType, state.Day1Landmarks)
	if err != nil || !day1Full {
		return false, err
	}

	return s.dayCoversFullSet(ctx, state.Day2TourType, state.Day2Landmarks)
}

func (s *Service) dayCoversFullSet(ctx context.Context, tourType landmark.TourType, selected []landmark.Landmark) (bool, error) {
	if tourType == "" {
		return false, nil
	}

	all, err := s.catalog.AllForTourType(ctx, tourType)
	if err != nil {
		return false, err
	}
	if len(all) == 0 || len(selected) != len(all) {
		return false, nil
	}

	ids := make(map[string]struct{}, len(selected))
	for i := range selected {
		ids[selected[i].ID] = struct{}{}
	}
	for i := range all {
		if _, ok := ids[all[i].ID]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// validateCreateInput validates the create booking input.
func (s *Service) validateCreateInput(input *models.BookingCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.GroupSize < 1 {
		errs = append(errs, models.FieldError{Field: "groupSize", Message: "must be at least 1"})
	} else if input.GroupSize > MaxGroupSize {
		errs = append(errs, models.FieldError{Field: "groupSize", Message: "must be at most 20"})
	}

	if input.StartDate == "" {
		errs = append(errs, models.FieldError{Field: "startDate", Message: "is required"})
	} else if _, err := time.Parse(StartDateLayout, input.StartDate); err != nil {
		errs = append(errs, models.FieldError{Field: "startDate", Message: "must be in YYYY-MM-DD format"})
	}

	if input.ContactName == "" {
		errs = append(errs, models.FieldError{Field: "contactName", Message: "is required"})
	} else if len(input.ContactName) > MaxContactNameLength {
		errs = append(errs, models.FieldError{Field: "contactName", Message: "must be at most 120 characters"})
	}

	if input.ContactEmail == "" {
		errs = append(errs, models.FieldError{Field: "contactEmail", Message: "is required"})
	} else if !emailRegex.MatchString(input.ContactEmail) {
		errs = append(errs, models.FieldError{Field: "contactEmail", Message: "must be a valid email address"})
	}

	if len(input.SpecialRequests) > MaxSpecialReqsLength {
		errs = append(errs, models.FieldError{Field: "specialRequests", Message: "must be at most 1000 characters"})
	}

	return errs
}

// toAPIBooking converts a domain Booking to an API Booking.
func (s *Service) toAPIBooking(b *Booking) models.Booking {
	return models.Booking{
		ID:               b.ID,
		ItineraryDetails: b.ItineraryDetails,
		TotalPrice:       b.TotalPrice,
		GroupSize:        b.GroupSize,
		StartDate:        b.StartDate.Format(StartDateLayout),
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		ContactPhone:     b.ContactPhone,
		SpecialRequests:  b.SpecialRequests,
		Status:           string(b.Status),
		CreatedAt:        models.Timestamp(b.CreatedAt),
		UpdatedAt:        models.Timestamp(b.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
