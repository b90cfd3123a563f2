package booking

import (
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// Assembler transforms a final itinerary state into a normalized,
// serializable booking payload. It assumes the caller has already
// validated the booking precondition (CanBook); it does not re-validate.
type Assembler struct {
	calculator *pricing.Calculator
}

// NewAssembler creates a new payload assembler.
func NewAssembler(calculator *pricing.Calculator) *Assembler {
	return &Assembler{calculator: calculator}
}

// Assemble produces the payload for a final itinerary state. 2-day tours
// yield a MultiDayItineraryDetails built from both day lists; everything
// else yields a single-day ItineraryDetails from day 1's list.
// bothDaysFull applies the full-package regime uniformly to a 2-day tour
// and is ignored for single-day tours.
func (a *Assembler) Assemble(state itinerary.State, bothDaysFull bool) ItineraryPayload {
	if state.TourDuration == itinerary.DurationTwoDays {
		return a.assembleMultiDay(state, bothDaysFull)
	}
	return a.assembleSingleDay(state)
}

func (a *Assembler) assembleSingleDay(state itinerary.State) ItineraryDetails {
	totalTime := itinerary.EstimateTotalTime(state.Day1Landmarks)

	return ItineraryDetails{
		Landmarks:     toEntries(state.Day1Landmarks),
		TotalTime:     totalTime,
		TotalPrice:    a.calculator.CalculatePrice(totalTime, state.IsFullPackage),
		IsFullPackage: state.IsFullPackage,
	}
}

func (a *Assembler) assembleMultiDay(state itinerary.State, bothDaysFull bool) MultiDayItineraryDetails {
	day1Time := itinerary.EstimateTotalTime(state.Day1Landmarks)
	day2Time := itinerary.EstimateTotalTime(state.Day2Landmarks)

	return MultiDayItineraryDetails{
		Duration: string(itinerary.DurationTwoDays),
		Days: []DayPlan{
			{
				Day:       1,
				TourType:  string(state.Day1TourType),
				Landmarks: toEntries(state.Day1Landmarks),
				TotalTime: day1Time,
			},
			{
				Day:       2,
				TourType:  string(state.Day2TourType),
				Landmarks: toEntries(state.Day2Landmarks),
				TotalTime: day2Time,
			},
		},
		TotalPrice:    a.calculator.CalculateMultiDayPrice(day1Time, day2Time, bothDaysFull),
		IsFullPackage: bothDaysFull,
	}
}

// toEntries converts a visit sequence into payload entries. Order is
// assigned from the slice index at assembly time, so reordering the list
// before assembly changes the serialized order.
func toEntries(landmarks []landmark.Landmark) []LandmarkEntry {
	entries := make([]LandmarkEntry, 0, len(landmarks))
	for i := range landmarks {
		entries = append(entries, LandmarkEntry{
			ID:       landmarks[i].ID,
			Name:     landmarks[i].Name,
			Image:    landmarks[i].Image,
			Duration: landmarks[i].EstimatedDuration,
			Order:    i + 1,
		})
	}
	return entries
}
