// Package booking assembles itinerary payloads and manages booking records.
package booking

import (
	"encoding/json"
	"errors"
	"time"
)

// Booking errors.
var (
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotBookable indicates the itinerary fails the booking
	// precondition: every day of the tour needs at least one landmark.
	ErrNotBookable = errors.New("itinerary is not bookable")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// LandmarkEntry is one landmark inside an assembled itinerary payload.
// Order is the 1-based visit rank chosen by the user.
type LandmarkEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Duration int    `json:"duration"`
	Order    int    `json:"order"`
}

// ItineraryDetails is the single-day booking payload. TotalPrice is per
// person; the booking record carries the group total.
type ItineraryDetails struct {
	Landmarks     []LandmarkEntry `json:"landmarks"`
	TotalTime     int             `json:"totalTime"`
	TotalPrice    int             `json:"totalPrice"`
	IsFullPackage bool            `json:"isFullPackage"`
}

// PerPersonPrice returns the per-person price of the payload.
func (d ItineraryDetails) PerPersonPrice() int { return d.TotalPrice }

// DayPlan is the multi-day payload's per-day record.
type DayPlan struct {
	Day       int             `json:"day"`
	TourType  string          `json:"tourType"`
	Landmarks []LandmarkEntry `json:"landmarks"`
	TotalTime int             `json:"totalTime"`
}

// MultiDayItineraryDetails is the 2-day booking payload. TotalPrice is the
// per-person combined price for both days.
type MultiDayItineraryDetails struct {
	Duration      string    `json:"duration"`
	Days          []DayPlan `json:"days"`
	TotalPrice    int       `json:"totalPrice"`
	IsFullPackage bool      `json:"isFullPackage"`
}

// PerPersonPrice returns the per-person price of the payload.
func (d MultiDayItineraryDetails) PerPersonPrice() int { return d.TotalPrice }

// ItineraryPayload is the assembled, serializable itinerary snapshot:
// either ItineraryDetails or MultiDayItineraryDetails.
type ItineraryPayload interface {
	PerPersonPrice() int
}

// Booking is a persisted booking record. ItineraryDetails holds the
// serialized payload; its logical shape must be preserved field-for-field
// for compatibility with downstream consumers.
type Booking struct {
	ID     string
	UserID string

	// ItineraryDetails is the serialized ItineraryPayload.
	ItineraryDetails json.RawMessage

	// TotalPrice is the group total: per-person price times GroupSize.
	TotalPrice int
	GroupSize  int
	StartDate  time.Time

	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests string

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
