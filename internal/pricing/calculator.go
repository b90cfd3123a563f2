// Package pricing converts trip durations into per-person tour prices.
//
// Two regimes exist: hourly billing (a base rate covering a base window
// plus a per-additional-hour charge, partial hours rounded up) and a flat
// full-package price covering all landmarks of a tour type in one day.
// All prices are per person; group totals are the caller's concern.
package pricing

// Config holds the tour pricing rates in whole currency units (PHP).
type Config struct {
	// BaseRate is the hourly-regime price covering the base window.
	BaseRate int

	// BaseWindowMinutes is how much trip time the base rate covers
	// (default: 180).
	BaseWindowMinutes int

	// AdditionalHourRate is the charge for each started hour beyond the
	// base window.
	AdditionalHourRate int

	// FullPackagePrice is the flat price for the full-package bundle.
	FullPackagePrice int
}

// DefaultConfig returns the standard tour rates.
func DefaultConfig() Config {
	return Config{
		BaseRate:           1500,
		BaseWindowMinutes:  180,
		AdditionalHourRate: 400,
		FullPackagePrice:   2500,
	}
}

// Calculator computes tour prices. It is a pure function of its inputs
// and the configured rates.
type Calculator struct {
	config Config
}

// NewCalculator creates a calculator, filling zero config fields with
// defaults.
func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if cfg.BaseRate == 0 {
		cfg.BaseRate = def.BaseRate
	}
	if cfg.BaseWindowMinutes == 0 {
		cfg.BaseWindowMinutes = def.BaseWindowMinutes
	}
	if cfg.AdditionalHourRate == 0 {
		cfg.AdditionalHourRate = def.AdditionalHourRate
	}
	if cfg.FullPackagePrice == 0 {
		cfg.FullPackagePrice = def.FullPackagePrice
	}
	return &Calculator{config: cfg}
}

// Config returns the rates in effect.
func (c *Calculator) Config() Config {
	return c.config
}

// CalculatePrice returns the per-person price for a trip of the given
// total duration. The full-package regime ignores the duration entirely.
func (c *Calculator) CalculatePrice(totalMinutes int, isFullPackage bool) int {
	if isFullPackage {
		return c.config.FullPackagePrice
	}
	return c.hourlyPrice(totalMinutes)
}

// AdditionalHours returns the number of started hours beyond the base
// window. Time within the window yields 0.
func (c *Calculator) AdditionalHours(totalMinutes int) int {
	if totalMinutes <= c.config.BaseWindowMinutes {
		return 0
	}
	extra := totalMinutes - c.config.BaseWindowMinutes
	return (extra + 59) / 60
}

// hourlyPrice is the hourly-regime price for a trip duration.
func (c *Calculator) hourlyPrice(totalMinutes int) int {
	return c.config.BaseRate + c.AdditionalHours(totalMinutes)*c.config.AdditionalHourRate
}

// Breakdown itemizes a price for display.
type Breakdown struct {
	// BaseRate is the flat component: the hourly base rate, or the
	// full-package price under the full-package regime.
	BaseRate int

	// AdditionalHours is the number of started hours charged beyond the
	// base window. Always 0 under the full-package regime.
	AdditionalHours int

	// AdditionalCost is AdditionalHours times the per-hour rate.
	AdditionalCost int

	// Savings is the hourly-equivalent price minus the full-package
	// price, floored at zero. Only meaningful under the full-package
	// regime.
	Savings int

	// LandmarkCount is the number of landmarks the price covers.
	LandmarkCount int

	// Total is the per-person price.
	Total int
}

// GetBreakdown itemizes the price for a trip duration under the given
// regime.
func (c *Calculator) GetBreakdown(totalMinutes int, isFullPackage bool, landmarkCount int) Breakdown {
	if isFullPackage {
		savings := c.hourlyPrice(totalMinutes) - c.config.FullPackagePrice
		if savings < 0 {
			savings = 0
		}
		return Breakdown{
			BaseRate:      c.config.FullPackagePrice,
			Savings:       savings,
			LandmarkCount: landmarkCount,
			Total:         c.config.FullPackagePrice,
		}
	}

	additionalHours := c.AdditionalHours(totalMinutes)
	additionalCost := additionalHours * c.config.AdditionalHourRate
	return Breakdown{
		BaseRate:        c.config.BaseRate,
		AdditionalHours: additionalHours,
		AdditionalCost:  additionalCost,
		LandmarkCount:   landmarkCount,
		Total:           c.config.BaseRate + additionalCost,
	}
}

// IsFullPackageBetter reports whether the hourly price for the given
// duration exceeds the full-package price. Used as an advisory nudge only;
// it is never auto-applied.
func (c *Calculator) IsFullPackageBetter(totalMinutes int) bool {
	return c.hourlyPrice(totalMinutes) > c.config.FullPackagePrice
}

// CalculateMultiDayPrice prices a 2-day tour: each day is priced
// independently as if it were a standalone 1-day booking and the results
// are summed. isBothDaysFull applies the full-package regime uniformly to
// both days; for mixed full/non-full days, price each day with
// CalculatePrice and sum instead.
func (c *Calculator) CalculateMultiDayPrice(day1Minutes, day2Minutes int, isBothDaysFull bool) int {
	return c.CalculatePrice(day1Minutes, isBothDaysFull) +
		c.CalculatePrice(day2Minutes, isBothDaysFull)
}
