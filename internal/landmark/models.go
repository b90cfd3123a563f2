// Package landmark provides landmark reference data management.
package landmark

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrLandmarkNotFound = errors.New("landmark not found")
)

// TourType identifies which tour a landmark belongs to. Landmarks of
// different tour types are never combined within a single day.
type TourType string

const (
	TourTypeCebuCity TourType = "cebu-city"
	TourTypeMountain TourType = "mountain"
)

// Valid reports whether t is a known tour type.
func (t TourType) Valid() bool {
	return t == TourTypeCebuCity || t == TourTypeMountain
}

// Category classifies a landmark.
type Category string

const (
	CategoryHistorical Category = "Historical"
	CategoryReligious  Category = "Religious"
	CategoryCultural   Category = "Cultural"
	CategoryNature     Category = "Nature"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHistorical, CategoryReligious, CategoryCultural, CategoryNature:
		return true
	}
	return false
}

// Landmark represents a point-of-interest with a fixed visit duration.
// Landmarks are immutable reference data from the itinerary core's point
// of view; only the admin surface creates or edits them.
type Landmark struct {
	ID          string
	Name        string
	Description string
	Image       string
	Location    Location
	// EstimatedDuration is the visit time in minutes.
	EstimatedDuration int
	Category          Category
	TourType          TourType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Location represents a landmark's geographic position.
type Location struct {
	Lat float64
	Lng float64
}
