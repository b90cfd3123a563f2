package landmark

import "context"

// Repository defines the interface for landmark data persistence.
type Repository interface {
	// Get retrieves a landmark by ID.
	// Returns ErrLandmarkNotFound if the landmark doesn't exist.
	Get(ctx context.Context, id string) (*Landmark, error)

	// List retrieves all landmarks ordered by name.
	List(ctx context.Context) ([]*Landmark, error)

	// ListByTourType retrieves all landmarks for a tour type ordered by name.
	ListByTourType(ctx context.Context, tourType TourType) ([]*Landmark, error)

	// Create creates a new landmark.
	Create(ctx context.Context, lm *Landmark) error

	// Update updates an existing landmark.
	Update(ctx context.Context, lm *Landmark) error

	// Delete deletes a landmark by ID.
	Delete(ctx context.Context, id string) error
}
