package landmark

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL landmark repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const landmarkColumns = `
	id, name, description, image,
	lat, lng, estimated_duration, category, tour_type,
	created_at, updated_at
`

// Get retrieves a landmark by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Landmark, error) {
	query := `SELECT ` + landmarkColumns + ` FROM landmarks WHERE id = $1`

	var lm Landmark
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lm.ID,
		&lm.Name,
		&lm.Description,
		&lm.Image,
		&lm.Location.Lat,
		&lm.Location.Lng,
		&lm.EstimatedDuration,
		&lm.Category,
		&lm.TourType,
		&lm.CreatedAt,
		&lm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLandmarkNotFound
		}
		return nil, err
	}

	return &lm, nil
}

// List retrieves all landmarks ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*Landmark, error) {
	query := `SELECT ` + landmarkColumns + ` FROM landmarks ORDER BY name`
	return r.queryLandmarks(ctx, query)
}

// ListByTourType retrieves all landmarks for a tour type ordered by name.
func (r *PostgresRepository) ListByTourType(ctx context.Context, tourType TourType) ([]*Landmark, error) {
	query := `SELECT ` + landmarkColumns + ` FROM landmarks WHERE tour_type = $1 ORDER BY name`
	return r.queryLandmarks(ctx, query, tourType)
}

func (r *PostgresRepository) queryLandmarks(ctx context.Context, query string, args ...interface{}) ([]*Landmark, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var landmarks []*Landmark
	for rows.Next() {
		var lm Landmark
		err := rows.Scan(
			&lm.ID,
			&lm.Name,
			&lm.Description,
			&lm.Image,
			&lm.Location.Lat,
			&lm.Location.Lng,
			&lm.EstimatedDuration,
			&lm.Category,
			&lm.TourType,
			&lm.CreatedAt,
			&lm.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		landmarks = append(landmarks, &lm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return landmarks, nil
}

// Create creates a new landmark.
func (r *PostgresRepository) Create(ctx context.Context, lm *Landmark) error {
	query := `
		INSERT INTO landmarks (
			id, name, description, image,
			lat, lng, estimated_duration, category, tour_type,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		lm.ID,
		lm.Name,
		lm.Description,
		lm.Image,
		lm.Location.Lat,
		lm.Location.Lng,
		lm.EstimatedDuration,
		lm.Category,
		lm.TourType,
		lm.CreatedAt,
		lm.UpdatedAt,
	)
	return err
}

// Update updates an existing landmark.
func (r *PostgresRepository) Update(ctx context.Context, lm *Landmark) error {
	query := `
		UPDATE landmarks SET
			name = $2,
			description = $3,
			image = $4,
			lat = $5,
			lng = $6,
			estimated_duration = $7,
			category = $8,
			tour_type = $9,
			updated_at = $10
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		lm.ID,
		lm.Name,
		lm.Description,
		lm.Image,
		lm.Location.Lat,
		lm.Location.Lng,
		lm.EstimatedDuration,
		lm.Category,
		lm.TourType,
		lm.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrLandmarkNotFound
	}

	return nil
}

// Delete deletes a landmark by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM landmarks WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
