package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/api/response"
	"github.com/sugbotours/sugbotours/internal/landmark"
)

// LandmarkHandler handles landmark endpoints.
type LandmarkHandler struct {
	service *landmark.Service
}

// NewLandmarkHandler creates a new LandmarkHandler.
func NewLandmarkHandler(service *landmark.Service) *LandmarkHandler {
	return &LandmarkHandler{service: service}
}

// ListLandmarks handles GET /v1/landmarks - list landmarks, optionally
// filtered by tour type via the tourType query parameter.
func (h *LandmarkHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	tourType := r.URL.Query().Get("tourType")

	items, err := h.service.List(r.Context(), tourType)
	if err != nil {
		var validationErr *landmark.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "validation failed", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.LandmarkList{Items: items})
}

// GetLandmark handles GET /v1/landmarks/{landmarkID}.
func (h *LandmarkHandler) GetLandmark(w http.ResponseWriter, r *http.Request) {
	landmarkID := chi.URLParam(r, "landmarkID")

	lm, err := h.service.Get(r.Context(), landmarkID)
	if err != nil {
		if errors.Is(err, landmark.ErrLandmarkNotFound) {
			response.NotFound(w, r, "landmark not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, lm)
}

// CreateLandmark handles POST /v1/admin/landmarks.
func (h *LandmarkHandler) CreateLandmark(w http.ResponseWriter, r *http.Request) {
	var input models.LandmarkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	lm, err := h.service.Create(r.Context(), &input)
	if err != nil {
		var validationErr *landmark.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "validation failed", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	location := fmt.Sprintf("/v1/landmarks/%s", lm.ID)
	response.Created(w, r, location, lm)
}

// UpdateLandmark handles PATCH /v1/admin/landmarks/{landmarkID}.
func (h *LandmarkHandler) UpdateLandmark(w http.ResponseWriter, r *http.Request) {
	landmarkID := chi.URLParam(r, "landmarkID")

	var input models.LandmarkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	lm, err := h.service.Update(r.Context(), landmarkID, &input)
	if err != nil {
		var validationErr *landmark.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(w, r, "validation failed", validationErr.Errors)
		case errors.Is(err, landmark.ErrLandmarkNotFound):
			response.NotFound(w, r, "landmark not found")
		default:
			response.InternalError(w, r, "internal server error")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, lm)
}

// DeleteLandmark handles DELETE /v1/admin/landmarks/{landmarkID}.
func (h *LandmarkHandler) DeleteLandmark(w http.ResponseWriter, r *http.Request) {
	landmarkID := chi.URLParam(r, "landmarkID")

	if err := h.service.Delete(r.Context(), landmarkID); err != nil {
		if errors.Is(err, landmark.ErrLandmarkNotFound) {
			response.NotFound(w, r, "landmark not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.NoContent(w, r)
}
