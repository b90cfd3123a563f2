package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sugbotours/sugbotours/internal/landmark"
)

func TestSelectedLandmarks(t *testing.T) {
	day1 := []landmark.Landmark{lm("lmk_a")}
	day2 := []landmark.Landmark{lm("lmk_b"), lm("lmk_c")}

	oneDay := State{
		TourDuration:  DurationOneDay,
		CurrentDay:    1,
		Day1Landmarks: day1,
		Day2Landmarks: day2,
	}
	assert.Equal(t, day1, SelectedLandmarks(oneDay))

	twoDaysOnDay2 := State{
		TourDuration:  DurationTwoDays,
		CurrentDay:    2,
		Day1Landmarks: day1,
		Day2Landmarks: day2,
	}
	assert.Equal(t, day2, SelectedLandmarks(twoDaysOnDay2))

	twoDaysOnDay1 := twoDaysOnDay2
	twoDaysOnDay1.CurrentDay = 1
	assert.Equal(t, day1, SelectedLandmarks(twoDaysOnDay1))
}

func TestCanProceedToItinerary(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{
			name:  "nothing chosen",
			state: NewState(),
			want:  false,
		},
		{
			name:  "duration without tour type",
			state: State{TourDuration: DurationOneDay},
			want:  false,
		},
		{
			name: "one day complete",
			state: State{
				TourDuration: DurationOneDay,
				Day1TourType: landmark.TourTypeCebuCity,
			},
			want: true,
		},
		{
			name: "two days missing day 2 tour type",
			state: State{
				TourDuration: DurationTwoDays,
				Day1TourType: landmark.TourTypeCebuCity,
			},
			want: false,
		},
		{
			name: "two days complete",
			state: State{
				TourDuration: DurationTwoDays,
				Day1TourType: landmark.TourTypeCebuCity,
				Day2TourType: landmark.TourTypeMountain,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanProceedToItinerary(tt.state))
		})
	}
}

func TestCanBook(t *testing.T) {
	day1 := []landmark.Landmark{lm("lmk_a")}
	day2 := []landmark.Landmark{lm("lmk_b")}

	assert.False(t, CanBook(State{TourDuration: DurationOneDay}))
	assert.True(t, CanBook(State{TourDuration: DurationOneDay, Day1Landmarks: day1}))

	assert.False(t, CanBook(State{TourDuration: DurationTwoDays, Day1Landmarks: day1}))
	assert.False(t, CanBook(State{TourDuration: DurationTwoDays, Day2Landmarks: day2}))
	assert.True(t, CanBook(State{
		TourDuration:  DurationTwoDays,
		Day1Landmarks: day1,
		Day2Landmarks: day2,
	}))
}
