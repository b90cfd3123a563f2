package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

func testLandmark(id, name string, lat, lng float64, visitMinutes int) landmark.Landmark {
	return landmark.Landmark{
		ID:                id,
		Name:              name,
		Image:             "https://images.sugbotours.ph/" + id + ".jpg",
		Location:          landmark.Location{Lat: lat, Lng: lng},
		EstimatedDuration: visitMinutes,
		Category:          landmark.CategoryHistorical,
		TourType:          landmark.TourTypeCebuCity,
	}
}

func TestAssemble_SingleDay(t *testing.T) {
	assembler := NewAssembler(pricing.NewCalculator(pricing.DefaultConfig()))

	lms := []landmark.Landmark{
		testLandmark("lmk_cross", "Magellan's Cross", 10.2935, 123.9021, 30),
		testLandmark("lmk_basilica", "Basilica del Santo Nino", 10.2941, 123.9020, 45),
	}
	state := itinerary.State{
		TourDuration:  itinerary.DurationOneDay,
		Day1TourType:  landmark.TourTypeCebuCity,
		Day1Landmarks: lms,
	}

	payload := assembler.Assemble(state, false)
	details, ok := payload.(ItineraryDetails)
	require.True(t, ok)

	assert.Equal(t, itinerary.EstimateTotalTime(lms), details.TotalTime)
	assert.Equal(t, 1500, details.TotalPrice)
	assert.False(t, details.IsFullPackage)

	require.Len(t, details.Landmarks, 2)
	assert.Equal(t, LandmarkEntry{
		ID:       "lmk_cross",
		Name:     "Magellan's Cross",
		Image:    "https://images.sugbotours.ph/lmk_cross.jpg",
		Duration: 30,
		Order:    1,
	}, details.Landmarks[0])
	assert.Equal(t, 2, details.Landmarks[1].Order)
}

func TestAssemble_SingleDay_FullPackage(t *testing.T) {
	assembler := NewAssembler(pricing.NewCalculator(pricing.DefaultConfig()))

	state := itinerary.State{
		TourDuration: itinerary.DurationOneDay,
		Day1Landmarks: []landmark.Landmark{
			testLandmark("lmk_a", "A", 10.29, 123.90, 200),
			testLandmark("lmk_b", "B", 10.31, 123.89, 200),
		},
		IsFullPackage: true,
	}

	payload := assembler.Assemble(state, false)
	details, ok := payload.(ItineraryDetails)
	require.True(t, ok)

	assert.True(t, details.IsFullPackage)
	assert.Equal(t, 2500, details.TotalPrice)
	assert.Equal(t, 2500, payload.PerPersonPrice())
}

func TestAssemble_OrderFollowsVisitSequence(t *testing.T) {
	assembler := NewAssembler(pricing.NewCalculator(pricing.DefaultConfig()))

	a := testLandmark("lmk_a", "A", 10.29, 123.90, 30)
	b := testLandmark("lmk_b", "B", 10.31, 123.89, 30)

	state := itinerary.State{
		TourDuration:  itinerary.DurationOneDay,
		Day1Landmarks: []landmark.Landmark{b, a},
	}

	details := assembler.Assemble(state, false).(ItineraryDetails)

	assert.Equal(t, "lmk_b", details.Landmarks[0].ID)
	assert.Equal(t, 1, details.Landmarks[0].Order)
	assert.Equal(t, "lmk_a", details.Landmarks[1].ID)
	assert.Equal(t, 2, details.Landmarks[1].Order)
}

func TestAssemble_MultiDay(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultConfig())
	assembler := NewAssembler(calc)

	day1 := []landmark.Landmark{
		testLandmark("lmk_cross", "Magellan's Cross", 10.2935, 123.9021, 30),
		testLandmark("lmk_fort", "Fort San Pedro", 10.2925, 123.9057, 60),
	}
	day2 := []landmark.Landmark{
		testLandmark("lmk_sirao", "Sirao Flower Garden", 10.3903, 123.8631, 90),
	}

	state := itinerary.State{
		TourDuration:  itinerary.DurationTwoDays,
		Day1TourType:  landmark.TourTypeCebuCity,
		Day2TourType:  landmark.TourTypeMountain,
		Day1Landmarks: day1,
		Day2Landmarks: day2,
	}

	payload := assembler.Assemble(state, false)
	details, ok := payload.(MultiDayItineraryDetails)
	require.True(t, ok)

	assert.Equal(t, "2-days", details.Duration)
	assert.False(t, details.IsFullPackage)
	require.Len(t, details.Days, 2)

	day1Time := itinerary.EstimateTotalTime(day1)
	day2Time := itinerary.EstimateTotalTime(day2)

	assert.Equal(t, 1, details.Days[0].Day)
	assert.Equal(t, "cebu-city", details.Days[0].TourType)
	assert.Equal(t, day1Time, details.Days[0].TotalTime)
	assert.Len(t, details.Days[0].Landmarks, 2)

	assert.Equal(t, 2, details.Days[1].Day)
	assert.Equal(t, "mountain", details.Days[1].TourType)
	assert.Equal(t, day2Time, details.Days[1].TotalTime)

	assert.Equal(t, calc.CalculateMultiDayPrice(day1Time, day2Time, false), details.TotalPrice)
}

func TestAssemble_MultiDay_BothDaysFull(t *testing.T) {
	assembler := NewAssembler(pricing.NewCalculator(pricing.DefaultConfig()))

	state := itinerary.State{
		TourDuration:  itinerary.DurationTwoDays,
		Day1Landmarks: []landmark.Landmark{testLandmark("lmk_a", "A", 10.29, 123.90, 30)},
		Day2Landmarks: []landmark.Landmark{testLandmark("lmk_b", "B", 10.39, 123.86, 30)},
	}

	details := assembler.Assemble(state, true).(MultiDayItineraryDetails)

	assert.True(t, details.IsFullPackage)
	assert.Equal(t, 5000, details.TotalPrice)
}

func TestAssemble_EmptyDayYieldsEmptyEntries(t *testing.T) {
	assembler := NewAssembler(pricing.NewCalculator(pricing.DefaultConfig()))

	details := assembler.Assemble(itinerary.State{TourDuration: itinerary.DurationOneDay}, false).(ItineraryDetails)

	assert.NotNil(t, details.Landmarks)
	assert.Empty(t, details.Landmarks)
	assert.Equal(t, 0, details.TotalTime)
	assert.Equal(t, 1500, details.TotalPrice)
}
