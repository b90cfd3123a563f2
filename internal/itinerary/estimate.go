package itinerary

import (
	"fmt"
	"math"

	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/pkg/geo"
)

// travelSpeedKmh is the assumed average in-city travel speed used to turn
// pairwise distances into travel minutes. Distances are static estimates,
// not live traffic data.
const travelSpeedKmh = 30.0

// EstimateTotalTime returns the total trip duration in minutes for the
// given visit sequence: the sum of each landmark's visit duration plus the
// estimated travel time between consecutive pairs. Zero landmarks yields 0;
// a single landmark yields just its visit duration.
func EstimateTotalTime(landmarks []landmark.Landmark) int {
	total := 0
	for i := range landmarks {
		total += landmarks[i].EstimatedDuration
		if i > 0 {
			total += TravelMinutes(landmarks[i-1], landmarks[i])
		}
	}
	return total
}

// TravelMinutes estimates the travel time between two landmarks from their
// great-circle distance at the assumed travel speed, rounded to the
// nearest minute.
func TravelMinutes(from, to landmark.Landmark) int {
	meters := geo.Distance(from.Location.Lat, from.Location.Lng, to.Location.Lat, to.Location.Lng)
	minutes := meters / 1000 / travelSpeedKmh * 60
	return int(math.Round(minutes))
}

// TimeBreakdown splits a trip estimate into visit and travel components.
type TimeBreakdown struct {
	VisitMinutes  int
	TravelMinutes int
	TotalMinutes  int
}

// EstimateBreakdown returns the visit/travel split for a visit sequence.
func EstimateBreakdown(landmarks []landmark.Landmark) TimeBreakdown {
	var b TimeBreakdown
	for i := range landmarks {
		b.VisitMinutes += landmarks[i].EstimatedDuration
		if i > 0 {
			b.TravelMinutes += TravelMinutes(landmarks[i-1], landmarks[i])
		}
	}
	b.TotalMinutes = b.VisitMinutes + b.TravelMinutes
	return b
}

// VisitShare returns the fraction of total time spent visiting, in [0, 1].
// An empty trip yields 0 rather than dividing by zero.
func (b TimeBreakdown) VisitShare() float64 {
	if b.TotalMinutes == 0 {
		return 0
	}
	return float64(b.VisitMinutes) / float64(b.TotalMinutes)
}

// FormatTime renders a minute count for display, e.g. "3h 30m".
// Not a pricing input.
func FormatTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}
