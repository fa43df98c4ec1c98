package load

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DayIndex maps date into a day-indexed series of length n ending today.
// Today is n-1 and n-1 days ago is 0. Dates on or before now - n days, and
// dates whose rounded-up day distance falls outside [0, n), are rejected.
func DayIndex(date, now time.Time, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	start := now.Add(-time.Duration(n) * day)
	if !date.After(start) {
		return 0, false
	}

	days := math.Ceil(float64(now.Sub(date)) / float64(day))
	idx := n - int(days)
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// MovingAverage returns the trailing mean of data over window points,
// keeping only the last window values. Early points average over what is
// available. If any mean is NaN the result is window zeros.
func MovingAverage(data []float64, window int) []float64 {
	if window <= 0 {
		return []float64{}
	}

	result := make([]float64, len(data))
	for i := range data {
		start := max(0, i-window+1)
		sum := 0.0
		for _, v := range data[start : i+1] {
			sum += v
		}
		avg := sum / float64(i+1-start)
		if math.IsNaN(avg) {
			return make([]float64, window)
		}
		result[i] = avg
	}

	if len(result) > window {
		result = result[len(result)-window:]
	}
	return result
}

func clampSeries(series []float64) {
	for i, v := range series {
		if v < 0 || math.IsNaN(v) {
			series[i] = 0
		}
	}
}

// num treats NaN and infinities as absent.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
