package models

// Itinerary action types accepted by the actions endpoint.
const (
	ActionSetDuration       = "SET_DURATION"
	ActionSetDay1TourType   = "SET_DAY1_TOUR_TYPE"
	ActionSetDay2TourType   = "SET_DAY2_TOUR_TYPE"
	ActionSetStep           = "SET_STEP"
	ActionSetCurrentDay     = "SET_CURRENT_DAY"
	ActionToggleLandmark    = "TOGGLE_LANDMARK"
	ActionSetDay1Landmarks  = "SET_DAY1_LANDMARKS"
	ActionSetDay2Landmarks  = "SET_DAY2_LANDMARKS"
	ActionRemoveLandmark    = "REMOVE_LANDMARK"
	ActionReorderLandmarks  = "REORDER_LANDMARKS"
	ActionToggleFullPackage = "TOGGLE_FULL_PACKAGE"
	ActionSelectAll         = "SELECT_ALL"
	ActionReset             = "RESET"
)

// ItineraryActionRequest is the request body for dispatching a wizard
// action. Type selects the variant; the other fields apply per variant.
// Landmark references are IDs, resolved server-side.
type ItineraryActionRequest struct {
	Type string `json:"type"`

	// Duration for SET_DURATION ("1-day" or "2-days").
	Duration string `json:"duration,omitempty"`

	// TourType for SET_DAY1_TOUR_TYPE / SET_DAY2_TOUR_TYPE.
	TourType string `json:"tourType,omitempty"`

	// Step for SET_STEP.
	Step string `json:"step,omitempty"`

	// Day targets a specific day's list; 0 means the current day.
	Day int `json:"day,omitempty"`

	// LandmarkID for TOGGLE_LANDMARK and REMOVE_LANDMARK.
	LandmarkID string `json:"landmarkId,omitempty"`

	// LandmarkIDs for SET_DAYN_LANDMARKS, REORDER_LANDMARKS and SELECT_ALL.
	// For SELECT_ALL an omitted list means "all landmarks of the targeted
	// day's tour type".
	LandmarkIDs []string `json:"landmarkIds,omitempty"`
}

// ItinerarySession is the API representation of a wizard session: the raw
// state plus the derived values the UI renders.
type ItinerarySession struct {
	ID            string           `json:"id"`
	CurrentStep   string           `json:"currentStep"`
	TourDuration  string           `json:"tourDuration,omitempty"`
	Day1TourType  string           `json:"day1TourType,omitempty"`
	Day2TourType  string           `json:"day2TourType,omitempty"`
	CurrentDay    int              `json:"currentDay"`
	Day1Landmarks []ItineraryEntry `json:"day1Landmarks"`
	Day2Landmarks []ItineraryEntry `json:"day2Landmarks"`
	IsFullPackage bool             `json:"isFullPackage"`
	Summary       ItinerarySummary `json:"summary"`
	CreatedAt     Timestamp        `json:"createdAt"`
	UpdatedAt     Timestamp        `json:"updatedAt"`
}

// ItineraryEntry is one landmark in a session's day list, in visit order.
type ItineraryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Duration int    `json:"duration"`
	Order    int    `json:"order"`
}

// ItinerarySummary carries the derived values for the current selection.
type ItinerarySummary struct {
	TotalTime          int    `json:"totalTime"`
	TotalTimeFormatted string `json:"totalTimeFormatted"`
	TotalPrice         int    `json:"totalPrice"`
	FullPackageBetter  bool   `json:"fullPackageBetter"`
	CanProceed         bool   `json:"canProceedToItinerary"`
	CanBook            bool   `json:"canBook"`
}
