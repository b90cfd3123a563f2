package booking

import "context"

// ListOptions contains options for listing bookings.
type ListOptions struct {
	Limit  int
	Cursor string
}

// ListResult contains the results of listing bookings.
type ListResult struct {
	Items      []*Booking
	NextCursor string
}

// Repository defines the interface for booking persistence.
type Repository interface {
	// Get retrieves a booking by ID.
	Get(ctx context.Context, id string) (*Booking, error)

	// GetByUserAndID retrieves a booking by user ID and booking ID.
	// Returns ErrBookingNotFound if the booking doesn't exist or doesn't
	// belong to the user.
	GetByUserAndID(ctx context.Context, userID, bookingID string) (*Booking, error)

	// List retrieves all bookings for a user with pagination, newest first.
	List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error)

	// Create creates a new booking.
	Create(ctx context.Context, b *Booking) error

	// UpdateStatus updates a booking's status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
