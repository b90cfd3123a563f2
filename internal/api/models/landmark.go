package models

// Landmark is the API representation of a landmark.
type Landmark struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Image             string    `json:"image,omitempty"`
	Location          LatLng    `json:"location"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Category          string    `json:"category"`
	TourType          string    `json:"tourType"`
	CreatedAt         Timestamp `json:"createdAt"`
	UpdatedAt         Timestamp `json:"updatedAt"`
}

// LandmarkList is the response for listing landmarks.
type LandmarkList struct {
	Items []Landmark `json:"items"`
}

// LandmarkCreateRequest is the request body for creating a landmark.
type LandmarkCreateRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Location          LatLng `json:"location"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Category          string `json:"category"`
	TourType          string `json:"tourType"`
}

// LandmarkUpdateRequest is the request body for updating a landmark.
// All fields are optional.
type LandmarkUpdateRequest struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	Image             *string `json:"image,omitempty"`
	Location          *LatLng `json:"location,omitempty"`
	EstimatedDuration *int    `json:"estimatedDuration,omitempty"`
	Category          *string `json:"category,omitempty"`
	TourType          *string `json:"tourType,omitempty"`
}
