package landmark

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sugbotours/sugbotours/internal/api/models"
)

// Validation constants.
const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
	MaxImageLength       = 500
)

// Service provides landmark operations.
type Service struct {
	repo Repository
}

// NewService creates a new landmark service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves all landmarks, optionally filtered by tour type.
func (s *Service) List(ctx context.Context, tourType string) ([]models.Landmark, error) {
	var landmarks []*Landmark
	var err error

	if tourType != "" {
		tt := TourType(tourType)
		if !tt.Valid() {
			return nil, &ValidationError{Errors: []models.FieldError{
				{Field: "tourType", Message: "must be cebu-city or mountain"},
			}}
		}
		landmarks, err = s.repo.ListByTourType(ctx, tt)
	} else {
		landmarks, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	items := make([]models.Landmark, 0, len(landmarks))
	for _, lm := range landmarks {
		items = append(items, s.toAPILandmark(lm))
	}
	return items, nil
}

// Get retrieves a landmark by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Landmark, error) {
	lm, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.toAPILandmark(lm)
	return &result, nil
}

// GetMany resolves the given landmark IDs in order. Returns
// ErrLandmarkNotFound if any ID is unknown.
func (s *Service) GetMany(ctx context.Context, ids []string) ([]Landmark, error) {
	landmarks := make([]Landmark, 0, len(ids))
	for _, id := range ids {
		lm, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		landmarks = append(landmarks, *lm)
	}
	return landmarks, nil
}

// AllForTourType retrieves the domain landmarks for a tour type in name order.
// This is the set SELECT_ALL operates over.
func (s *Service) AllForTourType(ctx context.Context, tourType TourType) ([]Landmark, error) {
	stored, err := s.repo.ListByTourType(ctx, tourType)
	if err != nil {
		return nil, err
	}

	landmarks := make([]Landmark, 0, len(stored))
	for _, lm := range stored {
		landmarks = append(landmarks, *lm)
	}
	return landmarks, nil
}

// Create creates a new landmark.
func (s *Service) Create(ctx context.Context, input *models.LandmarkCreateRequest) (*models.Landmark, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	lm := &Landmark{
		ID:          "lmk_" + uuid.New().String()[:22],
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Location: Location{
			Lat: input.Location.Lat,
			Lng: input.Location.Lng,
		},
		EstimatedDuration: input.EstimatedDuration,
		Category:          Category(input.Category),
		TourType:          TourType(input.TourType),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, lm); err != nil {
		return nil, err
	}

	result := s.toAPILandmark(lm)
	return &result, nil
}

// Update updates an existing landmark.
func (s *Service) Update(ctx context.Context, id string, input *models.LandmarkUpdateRequest) (*models.Landmark, error) {
	lm, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLandmarkNotFound) {
			return nil, ErrLandmarkNotFound
		}
		return nil, err
	}

	if fieldErrors := s.validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if input.Name != nil {
		lm.Name = *input.Name
	}
	if input.Description != nil {
		lm.Description = *input.Description
	}
	if input.Image != nil {
		lm.Image = *input.Image
	}
	if input.Location != nil {
		lm.Location = Location{Lat: input.Location.Lat, Lng: input.Location.Lng}
	}
	if input.EstimatedDuration != nil {
		lm.EstimatedDuration = *input.EstimatedDuration
	}
	if input.Category != nil {
		lm.Category = Category(*input.Category)
	}
	if input.TourType != nil {
		lm.TourType = TourType(*input.TourType)
	}
	lm.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, lm); err != nil {
		return nil, err
	}

	result := s.toAPILandmark(lm)
	return &result, nil
}

// Delete deletes a landmark.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// validateCreateInput validates the create landmark input.
func (s *Service) validateCreateInput(input *models.LandmarkCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
	}

	if len(input.Description) > MaxDescriptionLength {
		errs = append(errs, models.FieldError{Field: "description", Message: "must be at most 2000 characters"})
	}

	if len(input.Image) > MaxImageLength {
		errs = append(errs, models.FieldError{Field: "image", Message: "must be at most 500 characters"})
	}

	errs = append(errs, validateLatLng(input.Location, "location")...)

	if input.EstimatedDuration <= 0 {
		errs = append(errs, models.FieldError{Field: "estimatedDuration", Message: "must be a positive number of minutes"})
	}

	if !Category(input.Category).Valid() {
		errs = append(errs, models.FieldError{Field: "category", Message: "must be Historical, Religious, Cultural or Nature"})
	}

	if !TourType(input.TourType).Valid() {
		errs = append(errs, models.FieldError{Field: "tourType", Message: "must be cebu-city or mountain"})
	}

	return errs
}

// validateUpdateInput validates the update landmark input.
func (s *Service) validateUpdateInput(input *models.LandmarkUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, models.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*input.Name) > MaxNameLength {
			errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
		}
	}

	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		errs = append(errs, models.FieldError{Field: "description", Message: "must be at most 2000 characters"})
	}

	if input.Image != nil && len(*input.Image) > MaxImageLength {
		errs = append(errs, models.FieldError{Field: "image", Message: "must be at most 500 characters"})
	}

	if input.Location != nil {
		errs = append(errs, validateLatLng(*input.Location, "location")...)
	}

	if input.EstimatedDuration != nil && *input.EstimatedDuration <= 0 {
		errs = append(errs, models.FieldError{Field: "estimatedDuration", Message: "must be a positive number of minutes"})
	}

	if input.Category != nil && !Category(*input.Category).Valid() {
		errs = append(errs, models.FieldError{Field: "category", Message: "must be Historical, Religious, Cultural or Nature"})
	}

	if input.TourType != nil && !TourType(*input.TourType).Valid() {
		errs = append(errs, models.FieldError{Field: "tourType", Message: "must be cebu-city or mountain"})
	}

	return errs
}

// validateLatLng validates a coordinate pair.
func validateLatLng(loc models.LatLng, prefix string) []models.FieldError {
	var errs []models.FieldError

	if loc.Lat < -90 || loc.Lat > 90 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lat",
			Message: "must be between -90 and 90",
		})
	}

	if loc.Lng < -180 || loc.Lng > 180 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lng",
			Message: "must be between -180 and 180",
		})
	}

	return errs
}

// toAPILandmark converts a domain Landmark to an API Landmark.
func (s *Service) toAPILandmark(lm *Landmark) models.Landmark {
	return models.Landmark{
		ID:          lm.ID,
		Name:        lm.Name,
		Description: lm.Description,
		Image:       lm.Image,
		Location: models.LatLng{
			Lat: lm.Location.Lat,
			Lng: lm.Location.Lng,
		},
		EstimatedDuration: lm.EstimatedDuration,
		Category:          string(lm.Category),
		TourType:          string(lm.TourType),
		CreatedAt:         models.Timestamp(lm.CreatedAt),
		UpdatedAt:         models.Timestamp(lm.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
