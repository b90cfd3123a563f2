package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/api/response"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// PricingHandler handles price quote endpoints.
type PricingHandler struct {
	calculator *pricing.Calculator
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(calculator *pricing.Calculator) *PricingHandler {
	return &PricingHandler{calculator: calculator}
}

// Quote handles POST /v1/pricing/quote - per-person price for a trip length.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var input models.PricingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if input.TotalMinutes < 0 {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "totalMinutes", Message: "must be zero or greater"},
		})
		return
	}

	breakdown := h.calculator.GetBreakdown(input.TotalMinutes, input.IsFullPackage, input.LandmarkCount)

	quote := models.PricingQuote{
		TotalPrice:        breakdown.Total,
		BaseRate:          breakdown.BaseRate,
		AdditionalHours:   breakdown.AdditionalHours,
		AdditionalCost:    breakdown.AdditionalCost,
		Savings:           breakdown.Savings,
		FullPackageBetter: h.calculator.IsFullPackageBetter(input.TotalMinutes),
	}

	response.JSON(w, r, http.StatusOK, quote)
}
