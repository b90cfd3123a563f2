package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/api/response"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// ItineraryHandler handles itinerary session endpoints. Actions arrive as
// JSON with landmark IDs, are resolved against the landmark catalog, and
// are dispatched through the session store's reducer.
type ItineraryHandler struct {
	store      *itinerary.Store
	landmarks  *landmark.Service
	calculator *pricing.Calculator
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(store *itinerary.Store, landmarks *landmark.Service, calculator *pricing.Calculator) *ItineraryHandler {
	return &ItineraryHandler{
		store:      store,
		landmarks:  landmarks,
		calculator: calculator,
	}
}

// CreateSession handles POST /v1/itinerary/sessions - start a new wizard session.
func (h *ItineraryHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()

	location := fmt.Sprintf("/v1/itinerary/sessions/%s", sess.ID)
	response.Created(w, r, location, h.toAPISession(sess))
}

// GetSession handles GET /v1/itinerary/sessions/{sessionID}.
func (h *ItineraryHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, itinerary.ErrSessionNotFound) {
			response.NotFound(w, r, "itinerary session not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, h.toAPISession(sess))
}

// DeleteSession handles DELETE /v1/itinerary/sessions/{sessionID}.
func (h *ItineraryHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	h.store.Delete(sessionID)
	response.NoContent(w, r)
}

// DispatchAction handles POST /v1/itinerary/sessions/{sessionID}/actions.
// The request names an action type plus its fields; landmark IDs are
// resolved before the action reaches the reducer, so unknown IDs fail the
// request instead of corrupting the session.
func (h *ItineraryHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var input models.ItineraryActionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	sess, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, itinerary.ErrSessionNotFound) {
			response.NotFound(w, r, "itinerary session not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	action, fieldErrors, err := h.buildAction(r, &input, sess.State)
	if err != nil {
		if errors.Is(err, landmark.ErrLandmarkNotFound) {
			response.BadRequest(w, r, "unknown landmark id", []models.FieldError{
				{Field: "landmarkIds", Message: "references an unknown landmark"},
			})
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "validation failed", fieldErrors)
		return
	}

	sess, err = h.store.Dispatch(sessionID, action)
	if err != nil {
		if errors.Is(err, itinerary.ErrSessionNotFound) {
			response.NotFound(w, r, "itinerary session not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, h.toAPISession(sess))
}

// buildAction translates an action request into a reducer action,
// resolving landmark references. Returns field errors for invalid input.
func (h *ItineraryHandler) buildAction(r *http.Request, input *models.ItineraryActionRequest, state itinerary.State) (itinerary.Action, []models.FieldError, error) {
	ctx := r.Context()

	switch input.Type {
	case models.ActionSetDuration:
		duration := itinerary.TourDuration(input.Duration)
		if !duration.Valid() {
			return nil, fieldError("duration", "must be 1-day or 2-days"), nil
		}
		return itinerary.SetDuration{Duration: duration}, nil, nil

	case models.ActionSetDay1TourType, models.ActionSetDay2TourType:
		tourType := landmark.TourType(input.TourType)
		if !tourType.Valid() {
			return nil, fieldError("tourType", "must be cebu-city or mountain"), nil
		}
		if input.Type == models.ActionSetDay1TourType {
			return itinerary.SetDay1TourType{TourType: tourType}, nil, nil
		}
		return itinerary.SetDay2TourType{TourType: tourType}, nil, nil

	case models.ActionSetStep:
		step := itinerary.Step(input.Step)
		if !step.Valid() {
			return nil, fieldError("step", "must be duration, tour-type or itinerary"), nil
		}
		return itinerary.SetStep{Step: step}, nil, nil

	case models.ActionSetCurrentDay:
		if input.Day != 1 && input.Day != 2 {
			return nil, fieldError("day", "must be 1 or 2"), nil
		}
		return itinerary.SetCurrentDay{Day: input.Day}, nil, nil

	case models.ActionToggleLandmark:
		if input.LandmarkID == "" {
			return nil, fieldError("landmarkId", "is required"), nil
		}
		resolved, err := h.landmarks.GetMany(ctx, []string{input.LandmarkID})
		if err != nil {
			return nil, nil, err
		}
		return itinerary.ToggleLandmark{Landmark: resolved[0], Day: input.Day}, nil, nil

	case models.ActionSetDay1Landmarks:
		resolved, err := h.landmarks.GetMany(ctx, input.LandmarkIDs)
		if err != nil {
			return nil, nil, err
		}
		return itinerary.SetDay1Landmarks{Landmarks: resolved}, nil, nil

	case models.ActionSetDay2Landmarks:
		resolved, err := h.landmarks.GetMany(ctx, input.LandmarkIDs)
		if err != nil {
			return nil, nil, err
		}
		return itinerary.SetDay2Landmarks{Landmarks: resolved}, nil, nil

	case models.ActionRemoveLandmark:
		if input.LandmarkID == "" {
			return nil, fieldError("landmarkId", "is required"), nil
		}
		return itinerary.RemoveLandmark{LandmarkID: input.LandmarkID, Day: input.Day}, nil, nil

	case models.ActionReorderLandmarks:
		resolved, err := h.landmarks.GetMany(ctx, input.LandmarkIDs)
		if err != nil {
			return nil, nil, err
		}
		return itinerary.ReorderLandmarks{Landmarks: resolved, Day: input.Day}, nil, nil

	case models.ActionToggleFullPackage:
		return itinerary.ToggleFullPackage{}, nil, nil

	case models.ActionSelectAll:
		resolved, fieldErrors, err := h.resolveSelectAll(r, input, state)
		if err != nil || len(fieldErrors) > 0 {
			return nil, fieldErrors, err
		}
		return itinerary.SelectAll{Landmarks: resolved, Day: input.Day}, nil, nil

	case models.ActionReset:
		return itinerary.Reset{}, nil, nil

	default:
		return nil, fieldError("type", "unknown action type"), nil
	}
}

// resolveSelectAll resolves the landmark list for SELECT_ALL. An explicit
// ID list wins; otherwise the full set of the targeted day's tour type is
// used, which requires that day's tour type to be chosen.
func (h *ItineraryHandler) resolveSelectAll(r *http.Request, input *models.ItineraryActionRequest, state itinerary.State) ([]landmark.Landmark, []models.FieldError, error) {
	if len(input.LandmarkIDs) > 0 {
		resolved, err := h.landmarks.GetMany(r.Context(), input.LandmarkIDs)
		return resolved, nil, err
	}

	day := input.Day
	if day == 0 {
		day = state.CurrentDay
	}

	tourType := state.Day1TourType
	if day == 2 {
		tourType = state.Day2TourType
	}
	if tourType == "" {
		return nil, fieldError("day", "tour type not chosen for targeted day"), nil
	}

	resolved, err := h.landmarks.AllForTourType(r.Context(), tourType)
	return resolved, nil, err
}

// toAPISession converts a session to its API representation, computing the
// derived summary the wizard UI renders.
func (h *ItineraryHandler) toAPISession(sess itinerary.Session) models.ItinerarySession {
	state := sess.State

	day1Minutes := itinerary.EstimateTotalTime(state.Day1Landmarks)
	day2Minutes := itinerary.EstimateTotalTime(state.Day2Landmarks)

	var totalTime, totalPrice int
	var fullPackageBetter bool
	if state.TourDuration == itinerary.DurationTwoDays {
		totalTime = day1Minutes + day2Minutes
		totalPrice = h.calculator.CalculateMultiDayPrice(day1Minutes, day2Minutes, false)
	} else {
		totalTime = day1Minutes
		totalPrice = h.calculator.CalculatePrice(day1Minutes, state.IsFullPackage)
		fullPackageBetter = h.calculator.IsFullPackageBetter(day1Minutes)
	}

	return models.ItinerarySession{
		ID:            sess.ID,
		CurrentStep:   string(state.CurrentStep),
		TourDuration:  string(state.TourDuration),
		Day1TourType:  string(state.Day1TourType),
		Day2TourType:  string(state.Day2TourType),
		CurrentDay:    state.CurrentDay,
		Day1Landmarks: toAPIEntries(state.Day1Landmarks),
		Day2Landmarks: toAPIEntries(state.Day2Landmarks),
		IsFullPackage: state.IsFullPackage,
		Summary: models.ItinerarySummary{
			TotalTime:          totalTime,
			TotalTimeFormatted: itinerary.FormatTime(totalTime),
			TotalPrice:         totalPrice,
			FullPackageBetter:  fullPackageBetter,
			CanProceed:         itinerary.CanProceedToItinerary(state),
			CanBook:            itinerary.CanBook(state),
		},
		CreatedAt: models.Timestamp(sess.CreatedAt),
		UpdatedAt: models.Timestamp(sess.UpdatedAt),
	}
}

// toAPIEntries converts an ordered landmark list to API entries. Order is
// 1-based to match the assembled booking payload.
func toAPIEntries(landmarks []landmark.Landmark) []models.ItineraryEntry {
	entries := make([]models.ItineraryEntry, 0, len(landmarks))
	for i, lm := range landmarks {
		entries = append(entries, models.ItineraryEntry{
			ID:       lm.ID,
			Name:     lm.Name,
			Image:    lm.Image,
			Duration: lm.EstimatedDuration,
			Order:    i + 1,
		})
	}
	return entries
}

// fieldError builds a single-entry field error slice.
func fieldError(field, message string) []models.FieldError {
	return []models.FieldError{{Field: field, Message: message}}
}
