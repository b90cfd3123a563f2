package landmark

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	landmarks map[string]*Landmark
}

// NewInMemoryRepository creates a new in-memory landmark repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		landmarks: make(map[string]*Landmark),
	}
}

// Get retrieves a landmark by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Landmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lm, ok := r.landmarks[id]
	if !ok {
		return nil, ErrLandmarkNotFound
	}

	cpy := *lm
	return &cpy, nil
}

// List retrieves all landmarks ordered by name.
func (r *InMemoryRepository) List(_ context.Context) ([]*Landmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	landmarks := make([]*Landmark, 0, len(r.landmarks))
	for _, lm := range r.landmarks {
		cpy := *lm
		landmarks = append(landmarks, &cpy)
	}

	sortByName(landmarks)
	return landmarks, nil
}

// ListByTourType retrieves all landmarks for a tour type ordered by name.
func (r *InMemoryRepository) ListByTourType(_ context.Context, tourType TourType) ([]*Landmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var landmarks []*Landmark
	for _, lm := range r.landmarks {
		if lm.TourType == tourType {
			cpy := *lm
			landmarks = append(landmarks, &cpy)
		}
	}

	sortByName(landmarks)
	return landmarks, nil
}

// Create creates a new landmark.
func (r *InMemoryRepository) Create(_ context.Context, lm *Landmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *lm
	r.landmarks[lm.ID] = &cpy
	return nil
}

// Update updates an existing landmark.
func (r *InMemoryRepository) Update(_ context.Context, lm *Landmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.landmarks[lm.ID]; !ok {
		return ErrLandmarkNotFound
	}

	cpy := *lm
	r.landmarks[lm.ID] = &cpy
	return nil
}

// Delete deletes a landmark by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.landmarks, id)
	return nil
}

func sortByName(landmarks []*Landmark) {
	sort.Slice(landmarks, func(i, j int) bool {
		return landmarks[i].Name < landmarks[j].Name
	})
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
