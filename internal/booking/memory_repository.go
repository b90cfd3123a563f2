package booking

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
}

// NewInMemoryRepository creates a new in-memory booking repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
	}
}

// Get retrieves a booking by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	cpy := *b
	return &cpy, nil
}

// GetByUserAndID retrieves a booking by user ID and booking ID.
func (r *InMemoryRepository) GetByUserAndID(_ context.Context, userID, bookingID string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, ErrBookingNotFound
	}

	cpy := *b
	return &cpy, nil
}

// List retrieves all bookings for a user with pagination, newest first.
func (r *InMemoryRepository) List(_ context.Context, userID string, opts ListOptions) (*ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			cpy := *b
			bookings = append(bookings, &cpy)
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	result := &ListResult{
		Items: bookings,
	}

	if len(bookings) > limit {
		result.Items = bookings[:limit]
		result.NextCursor = bookings[limit-1].ID
	}

	return result, nil
}

// Create creates a new booking.
func (r *InMemoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *b
	r.bookings[b.ID] = &cpy
	return nil
}

// UpdateStatus updates a booking's status.
func (r *InMemoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
