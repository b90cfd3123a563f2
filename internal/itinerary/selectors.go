package itinerary

import (
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// SelectedLandmarks returns the landmark list the wizard is currently
// viewing: day 1 for 1-day tours, the current day's list for 2-day tours.
func SelectedLandmarks(s State) []landmark.Landmark {
	if s.TourDuration == DurationTwoDays && s.CurrentDay == 2 {
		return s.Day2Landmarks
	}
	return s.Day1Landmarks
}

// CanProceedToItinerary reports whether the wizard can advance to the
// itinerary step: a duration and day-1 tour type are chosen, plus a day-2
// tour type for 2-day tours.
func CanProceedToItinerary(s State) bool {
	if s.TourDuration == "" || s.Day1TourType == "" {
		return false
	}
	if s.TourDuration == DurationTwoDays && s.Day2TourType == "" {
		return false
	}
	return true
}

// CanBook reports whether the itinerary is bookable: every day of the tour
// has at least one landmark.
func CanBook(s State) bool {
	if s.TourDuration == DurationTwoDays {
		return len(s.Day1Landmarks) > 0 && len(s.Day2Landmarks) > 0
	}
	return len(s.Day1Landmarks) > 0
}
