package models

// PricingQuoteRequest is the request body for a price quote.
type PricingQuoteRequest struct {
	TotalMinutes  int  `json:"totalMinutes"`
	IsFullPackage bool `json:"isFullPackage"`
	LandmarkCount int  `json:"landmarkCount,omitempty"`
}

// PricingQuote is the response for a price quote.
type PricingQuote struct {
	TotalPrice        int  `json:"totalPrice"`
	BaseRate          int  `json:"baseRate"`
	AdditionalHours   int  `json:"additionalHours"`
	AdditionalCost    int  `json:"additionalCost"`
	Savings           int  `json:"savings"`
	FullPackageBetter bool `json:"fullPackageBetter"`
}
