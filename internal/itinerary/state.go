// Package itinerary provides the custom-itinerary builder: a reducer-driven
// state machine for the booking wizard, trip time estimation, and derived
// booking-eligibility selectors.
package itinerary

import (
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// Step identifies the wizard position.
type Step string

const (
	StepDuration  Step = "duration"
	StepTourType  Step = "tour-type"
	StepItinerary Step = "itinerary"
)

// Valid reports whether s is a known wizard step.
func (s Step) Valid() bool {
	return s == StepDuration || s == StepTourType || s == StepItinerary
}

// TourDuration is the chosen tour length.
type TourDuration string

const (
	DurationOneDay  TourDuration = "1-day"
	DurationTwoDays TourDuration = "2-days"
)

// Valid reports whether d is a known tour duration.
func (d TourDuration) Valid() bool {
	return d == DurationOneDay || d == DurationTwoDays
}

// State is the session-scoped itinerary aggregate. It is only ever mutated
// through Reduce; handlers and services treat it as a value.
//
// Day1Landmarks and Day2Landmarks are ordered: position defines the visit
// sequence and feeds both time estimation and the assembled payload's
// order field.
type State struct {
	CurrentStep  Step
	TourDuration TourDuration

	Day1TourType landmark.TourType
	Day2TourType landmark.TourType

	// CurrentDay selects which day's list single-list actions target.
	// Only meaningful for 2-day tours; 1-day tours always target day 1.
	CurrentDay int

	Day1Landmarks []landmark.Landmark
	Day2Landmarks []landmark.Landmark

	// IsFullPackage marks the day-1 list as the flat-priced full bundle.
	// Only meaningful for 1-day tours. Manually editing the list clears it:
	// a custom subset is not the bundle even if it matches the full set.
	IsFullPackage bool
}

// NewState returns the fixed initial wizard state.
func NewState() State {
	return State{
		CurrentStep: StepDuration,
		CurrentDay:  1,
	}
}
