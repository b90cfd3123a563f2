package itinerary

import (
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// Reduce applies an action to a state and returns the next state. It is
// total and pure: unknown actions return the input state unchanged, input
// slices are never mutated, and no action ever fails.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetDuration:
		s.TourDuration = a.Duration
		s.CurrentStep = StepTourType
		return s

	case SetDay1TourType:
		s.Day1TourType = a.TourType
		return s

	case SetDay2TourType:
		s.Day2TourType = a.TourType
		return s

	case SetStep:
		s.CurrentStep = a.Step
		return s

	case SetCurrentDay:
		if a.Day == 1 || a.Day == 2 {
			s.CurrentDay = a.Day
		}
		return s

	case ToggleLandmark:
		if s.TourDuration == DurationTwoDays {
			day := s.targetDay(a.Day)
			if day == 2 {
				s.Day2Landmarks = toggle(s.Day2Landmarks, a.Landmark)
			} else {
				s.Day1Landmarks = toggle(s.Day1Landmarks, a.Landmark)
			}
			return s
		}
		// 1-day: editing by hand means the list is a custom subset,
		// not the full bundle.
		s.Day1Landmarks = toggle(s.Day1Landmarks, a.Landmark)
		s.IsFullPackage = false
		return s

	case SetDay1Landmarks:
		s.Day1Landmarks = copyLandmarks(a.Landmarks)
		return s

	case SetDay2Landmarks:
		s.Day2Landmarks = copyLandmarks(a.Landmarks)
		return s

	case RemoveLandmark:
		if s.TourDuration == DurationTwoDays {
			day := s.targetDay(a.Day)
			if day == 2 {
				s.Day2Landmarks = removeByID(s.Day2Landmarks, a.LandmarkID)
			} else {
				s.Day1Landmarks = removeByID(s.Day1Landmarks, a.LandmarkID)
			}
			return s
		}
		s.Day1Landmarks = removeByID(s.Day1Landmarks, a.LandmarkID)
		s.IsFullPackage = false
		return s

	case ReorderLandmarks:
		if s.TourDuration == DurationTwoDays && s.targetDay(a.Day) == 2 {
			s.Day2Landmarks = copyLandmarks(a.Landmarks)
		} else {
			s.Day1Landmarks = copyLandmarks(a.Landmarks)
		}
		return s

	case ToggleFullPackage:
		s.IsFullPackage = !s.IsFullPackage
		return s

	case SelectAll:
		if s.TourDuration == DurationTwoDays {
			if s.targetDay(a.Day) == 2 {
				s.Day2Landmarks = copyLandmarks(a.Landmarks)
			} else {
				s.Day1Landmarks = copyLandmarks(a.Landmarks)
			}
			return s
		}
		// 1-day: select-all toggles. With the bundle active it acts as
		// deselect-all; otherwise it installs the bundle.
		if s.IsFullPackage {
			s.Day1Landmarks = nil
			s.IsFullPackage = false
			return s
		}
		s.Day1Landmarks = copyLandmarks(a.Landmarks)
		s.IsFullPackage = len(a.Landmarks) > 0
		return s

	case Reset:
		return NewState()

	default:
		return s
	}
}

// targetDay resolves an action's day field against the current day.
func (s State) targetDay(day int) int {
	if day == 1 || day == 2 {
		return day
	}
	if s.CurrentDay == 2 {
		return 2
	}
	return 1
}

// toggle returns a new list with lm removed when present by ID, or
// appended otherwise.
func toggle(list []landmark.Landmark, lm landmark.Landmark) []landmark.Landmark {
	for i := range list {
		if list[i].ID == lm.ID {
			next := make([]landmark.Landmark, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			return next
		}
	}

	next := make([]landmark.Landmark, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, lm)
	return next
}

// removeByID returns a new list without the landmark with the given ID.
func removeByID(list []landmark.Landmark, id string) []landmark.Landmark {
	next := make([]landmark.Landmark, 0, len(list))
	for i := range list {
		if list[i].ID != id {
			next = append(next, list[i])
		}
	}
	return next
}

// copyLandmarks copies a slice so later caller mutations cannot leak into
// reducer-owned state.
func copyLandmarks(list []landmark.Landmark) []landmark.Landmark {
	if len(list) == 0 {
		return nil
	}
	next := make([]landmark.Landmark, len(list))
	copy(next, list)
	return next
}
