package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayNumber(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "monday", date: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), want: 1},
		{name: "tuesday", date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "wednesday", date: time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC), want: 3},
		{name: "thursday", date: time.Date(2024, 1, 4, 23, 59, 59, 0, time.UTC), want: 4},
		{name: "friday", date: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), want: 5},
		{name: "saturday", date: time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), want: 6},
		{name: "sunday maps to 7", date: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayNumber(tt.date))
		})
	}
}

// Every calendar day over several weeks must land in [1,7].
func TestDayNumberRange(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 28; i++ {
		d := DayNumber(start.AddDate(0, 0, i))
		if d < 1 || d > 7 {
			t.Fatalf("day %d: DayNumber = %d, want within [1,7]", i, d)
		}
	}
}
