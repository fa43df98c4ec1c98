package load_test

import (
	"math"
	"testing"
	"time"

	"github.com/misterclayt0n/loadout/internal/load"
	"github.com/stretchr/testify/assert"
)

func TestDayIndex(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		n      int
		want   int
		wantOK bool
	}{
		{"today", daysAgo(0), 7, 6, true},
		{"yesterday", daysAgo(1), 7, 5, true},
		{"last included day", daysAgo(6), 7, 0, true},
		{"interval days ago", daysAgo(7), 7, 0, false},
		{"exact window start", now.Add(-7 * 24 * time.Hour), 7, 0, false},
		{"extended window", daysAgo(10), 14, 3, true},
		{"later today", now.Add(time.Hour), 7, 0, false},
		{"empty series", daysAgo(0), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := load.DayIndex(tt.date, now, tt.n)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMovingAverage(t *testing.T) {
	data := []float64{4, 0, 2, 6, 0, 0}

	got := load.MovingAverage(data, 3)
	assert.Len(t, got, 3)
	assert.InDelta(t, 8.0/3, got[0], 1e-9)
	assert.InDelta(t, 8.0/3, got[1], 1e-9)
	assert.InDelta(t, 2.0, got[2], 1e-9)
}

func TestMovingAverage_ShortInputUsesAvailablePoints(t *testing.T) {
	got := load.MovingAverage([]float64{2, 4}, 5)
	assert.Equal(t, []float64{2, 3}, got)
}

func TestMovingAverage_NaNFallsBackToZeros(t *testing.T) {
	for _, pos := range []int{0, 3, 7} {
		data := make([]float64, 8)
		data[pos] = math.NaN()

		assert.Equal(t, make([]float64, 4), load.MovingAverage(data, 4), "NaN at %d", pos)
	}
}

func TestMovingAverage_NonPositiveWindow(t *testing.T) {
	assert.Empty(t, load.MovingAverage([]float64{1, 2, 3}, 0))
	assert.Empty(t, load.MovingAverage([]float64{1, 2, 3}, -1))
}
