package itinerary

import (
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// Action is the tagged union of wizard transitions. Every variant is a
// value type; Reduce dispatches on the concrete type.
type Action interface {
	isAction()
}

// SetDuration chooses the tour length and advances the wizard to the
// tour-type step.
type SetDuration struct {
	Duration TourDuration
}

// SetDay1TourType sets the tour type for day 1.
type SetDay1TourType struct {
	TourType landmark.TourType
}

// SetDay2TourType sets the tour type for day 2.
type SetDay2TourType struct {
	TourType landmark.TourType
}

// SetStep overrides the wizard position directly (continue/back navigation).
type SetStep struct {
	Step Step
}

// SetCurrentDay changes which day's list subsequent single-list actions
// target. Only relevant for 2-day tours.
type SetCurrentDay struct {
	Day int
}

// ToggleLandmark adds the landmark to the targeted day's list, or removes
// it when already present. Day 0 means the current day.
type ToggleLandmark struct {
	Landmark landmark.Landmark
	Day      int
}

// SetDay1Landmarks replaces day 1's list verbatim (map/programmatic flows).
type SetDay1Landmarks struct {
	Landmarks []landmark.Landmark
}

// SetDay2Landmarks replaces day 2's list verbatim.
type SetDay2Landmarks struct {
	Landmarks []landmark.Landmark
}

// RemoveLandmark removes a landmark by ID from the targeted day's list.
// Day 0 means the current day.
type RemoveLandmark struct {
	LandmarkID string
	Day        int
}

// ReorderLandmarks replaces the targeted day's list with a new ordering.
// Callers are responsible for preserving set membership; the reducer
// performs the replacement verbatim.
type ReorderLandmarks struct {
	Landmarks []landmark.Landmark
	Day       int
}

// ToggleFullPackage flips the full-package flag without touching lists.
type ToggleFullPackage struct{}

// SelectAll replaces the targeted day's list with the given landmarks,
// typically all landmarks of the day's tour type. For 1-day tours a second
// dispatch while the full package is active deselects everything.
type SelectAll struct {
	Landmarks []landmark.Landmark
	Day       int
}

// Reset returns the wizard to the fixed initial state.
type Reset struct{}

func (SetDuration) isAction()       {}
func (SetDay1TourType) isAction()   {}
func (SetDay2TourType) isAction()   {}
func (SetStep) isAction()           {}
func (SetCurrentDay) isAction()     {}
func (ToggleLandmark) isAction()    {}
func (SetDay1Landmarks) isAction()  {}
func (SetDay2Landmarks) isAction()  {}
func (RemoveLandmark) isAction()    {}
func (ReorderLandmarks) isAction()  {}
func (ToggleFullPackage) isAction() {}
func (SelectAll) isAction()         {}
func (Reset) isAction()             {}
