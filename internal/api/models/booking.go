package models

import "encoding/json"

// BookingCreateRequest is the request body for creating a booking.
// SessionID references the itinerary session being booked.
type BookingCreateRequest struct {
	SessionID       string `json:"sessionId"`
	GroupSize       int    `json:"groupSize"`
	StartDate       string `json:"startDate"`
	ContactName     string `json:"contactName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Booking is the API representation of a booking. ItineraryDetails is the
// assembled payload, passed through verbatim.
type Booking struct {
	ID               string          `json:"id"`
	ItineraryDetails json.RawMessage `json:"itineraryDetails"`
	TotalPrice       int             `json:"totalPrice"`
	GroupSize        int             `json:"groupSize"`
	StartDate        string          `json:"startDate"`
	ContactName      string          `json:"contactName"`
	ContactEmail     string          `json:"contactEmail"`
	ContactPhone     string          `json:"contactPhone,omitempty"`
	SpecialRequests  string          `json:"specialRequests,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        Timestamp       `json:"createdAt"`
	UpdatedAt        Timestamp       `json:"updatedAt"`
}

// PagedBookings is a paginated list of bookings.
type PagedBookings struct {
	Items []Booking         `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}
