package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sugbotours/sugbotours/internal/landmark"
)

func placed(id string, lat, lng float64, visitMinutes int) landmark.Landmark {
	return landmark.Landmark{
		ID:                id,
		Location:          landmark.Location{Lat: lat, Lng: lng},
		EstimatedDuration: visitMinutes,
	}
}

func TestEstimateTotalTime_Empty(t *testing.T) {
	assert.Equal(t, 0, EstimateTotalTime(nil))
}

func TestEstimateTotalTime_SingleLandmark(t *testing.T) {
	lms := []landmark.Landmark{placed("lmk_a", 10.2930, 123.9020, 45)}
	assert.Equal(t, 45, EstimateTotalTime(lms))
}

func TestEstimateTotalTime_SameLocation_NoTravel(t *testing.T) {
	lms := []landmark.Landmark{
		placed("lmk_a", 10.2930, 123.9020, 30),
		placed("lmk_b", 10.2930, 123.9020, 45),
	}
	assert.Equal(t, 75, EstimateTotalTime(lms))
}

func TestEstimateTotalTime_IncludesPairwiseTravel(t *testing.T) {
	a := placed("lmk_a", 10.2930, 123.9020, 30)
	b := placed("lmk_b", 10.3160, 123.8910, 45)
	c := placed("lmk_c", 10.3520, 123.9100, 60)

	want := 30 + TravelMinutes(a, b) + 45 + TravelMinutes(b, c) + 60
	assert.Equal(t, want, EstimateTotalTime([]landmark.Landmark{a, b, c}))
}

func TestTravelMinutes(t *testing.T) {
	// Roughly 2.8 km apart across central Cebu City; at 30 km/h that is
	// about six minutes.
	a := placed("lmk_a", 10.2930, 123.9020, 0)
	b := placed("lmk_b", 10.3160, 123.8910, 0)

	minutes := TravelMinutes(a, b)
	assert.Greater(t, minutes, 0)
	assert.Less(t, minutes, 15)
	assert.Equal(t, minutes, TravelMinutes(b, a))
}

func TestEstimateBreakdown(t *testing.T) {
	a := placed("lmk_a", 10.2930, 123.9020, 30)
	b := placed("lmk_b", 10.3160, 123.8910, 45)

	got := EstimateBreakdown([]landmark.Landmark{a, b})

	assert.Equal(t, 75, got.VisitMinutes)
	assert.Equal(t, TravelMinutes(a, b), got.TravelMinutes)
	assert.Equal(t, got.VisitMinutes+got.TravelMinutes, got.TotalMinutes)
	assert.Equal(t, got.TotalMinutes, EstimateTotalTime([]landmark.Landmark{a, b}))
}

func TestTimeBreakdown_VisitShare(t *testing.T) {
	b := TimeBreakdown{VisitMinutes: 75, TravelMinutes: 25, TotalMinutes: 100}
	assert.InDelta(t, 0.75, b.VisitShare(), 1e-9)

	assert.Zero(t, TimeBreakdown{}.VisitShare())
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{180, "3h"},
		{210, "3h 30m"},
		{61, "1h 1m"},
		{-5, "0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.minutes), "minutes=%d", tt.minutes)
	}
}
