package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL booking repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const bookingColumns = `
	id, user_id, itinerary_details,
	total_price, group_size, start_date,
	contact_name, contact_email, contact_phone, special_requests,
	status, created_at, updated_at
`

// Get retrieves a booking by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanBooking(ctx, query, id)
}

// GetByUserAndID retrieves a booking by user ID and booking ID.
func (r *PostgresRepository) GetByUserAndID(ctx context.Context, userID, bookingID string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND user_id = $2`
	return r.scanBooking(ctx, query, bookingID, userID)
}

func (r *PostgresRepository) scanBooking(ctx context.Context, query string, args ...interface{}) (*Booking, error) {
	var b Booking

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID,
		&b.UserID,
		&b.ItineraryDetails,
		&b.TotalPrice,
		&b.GroupSize,
		&b.StartDate,
		&b.ContactName,
		&b.ContactEmail,
		&b.ContactPhone,
		&b.SpecialRequests,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

// List retrieves all bookings for a user with pagination, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results
	fetchLimit := limit + 1

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ItineraryDetails,
			&b.TotalPrice,
			&b.GroupSize,
			&b.StartDate,
			&b.ContactName,
			&b.ContactEmail,
			&b.ContactPhone,
			&b.SpecialRequests,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
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
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, itinerary_details,
			total_price, group_size, start_date,
			contact_name, contact_email, contact_phone, special_requests,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.UserID,
		b.ItineraryDetails,
		b.TotalPrice,
		b.GroupSize,
		b.StartDate,
		b.ContactName,
		b.ContactEmail,
		b.ContactPhone,
		b.SpecialRequests,
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

// UpdateStatus updates a booking's status.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
