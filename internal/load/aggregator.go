// Package load turns exercise definitions and logged history into per-category
// training load series and target versus actual totals.
package load

import (
	"time"

	"github.com/misterclayt0n/loadout/internal/models"
)

// CategoryStats is the aggregation result for one category.
type CategoryStats struct {
	Interval      int       `json:"interval"`
	LoadByDay     []float64 `json:"load_by_day"`
	MovingAverage []float64 `json:"moving_average"`
	TargetLoad    float64   `json:"target_load"`
	ActualLoad    float64   `json:"actual_load"`
	TargetSets    int       `json:"target_sets"`
	ActualSets    int       `json:"actual_sets"`
}

// TargetPerDay is the flat daily reference line for charting.
func (c CategoryStats) TargetPerDay() float64 {
	if c.Interval <= 0 {
		return 0
	}
	return c.TargetLoad / float64(c.Interval)
}

// HasData reports whether any day in the interval carries load.
func (c CategoryStats) HasData() bool {
	for _, v := range c.LoadByDay {
		if v > 0 {
			return true
		}
	}
	return false
}

type Summary struct {
	Interval  int           `json:"interval"`
	Now       time.Time     `json:"now"`
	Strength  CategoryStats `json:"strength"`
	Endurance CategoryStats `json:"endurance"`
	Mobility  CategoryStats `json:"mobility"`
}

// For returns the stats of a category. Unknown categories count as strength.
func (s *Summary) For(c models.Category) *CategoryStats {
	switch c {
	case models.CategoryEndurance:
		return &s.Endurance
	case models.CategoryMobility:
		return &s.Mobility
	default:
		return &s.Strength
	}
}

func newCategoryStats(interval int) CategoryStats {
	return CategoryStats{
		Interval:  interval,
		LoadByDay: make([]float64, interval),
	}
}

// Aggregate computes per-category load over the trailing interval days ending
// at now. It keeps no state: calling it twice with the same inputs yields the
// same Summary. A non-positive interval yields empty series.
func Aggregate(exercises []models.Exercise, history models.History, interval int, now time.Time) Summary {
	if interval < 0 {
		interval = 0
	}

	s := Summary{
		Interval:  interval,
		Now:       now,
		Strength:  newCategoryStats(interval),
		Endurance: newCategoryStats(interval),
		Mobility:  newCategoryStats(interval),
	}
	extended := map[models.Category][]float64{
		models.CategoryStrength:  make([]float64, 2*interval),
		models.CategoryEndurance: make([]float64, 2*interval),
		models.CategoryMobility:  make([]float64, 2*interval),
	}

	for _, ex := range exercises {
		cat := normalizeCategory(ex.Category)
		st := s.For(cat)
		addTarget(st, cat, ex)

		for _, entry := range history[ex.ID] {
			load, sets := entryLoad(cat, entry)

			if idx, ok := DayIndex(entry.Date, now, interval); ok {
				st.LoadByDay[idx] += load
				st.ActualLoad += load
				st.ActualSets += sets
			}
			if idx, ok := DayIndex(entry.Date, now, 2*interval); ok {
				extended[cat][idx] += load
			}
		}
	}

	for _, cat := range models.Categories {
		st := s.For(cat)
		clampSeries(st.LoadByDay)
		clampSeries(extended[cat])
		st.MovingAverage = MovingAverage(extended[cat], interval)
		st.TargetLoad = max(st.TargetLoad, 0)
	}

	return s
}

func normalizeCategory(c models.Category) models.Category {
	switch c {
	case models.CategoryEndurance, models.CategoryMobility:
		return c
	default:
		return models.CategoryStrength
	}
}

func addTarget(st *CategoryStats, cat models.Category, ex models.Exercise) {
	weekly := float64(ex.WeeklySets)
	switch cat {
	case models.CategoryEndurance:
		st.TargetLoad += weekly * num(ex.Distance)
		st.TargetSets += ex.WeeklySets
	case models.CategoryMobility:
		st.TargetLoad += weekly
		st.TargetSets += ex.WeeklySets
	default:
		st.TargetLoad += weekly * num(ex.TargetRPE)
		st.TargetSets += ex.WeeklySets
	}
}

// entryLoad returns the load and the set count one entry contributes.
func entryLoad(cat models.Category, e models.HistoryEntry) (float64, int) {
	switch cat {
	case models.CategoryEndurance:
		return num(e.Distance), 0
	case models.CategoryMobility:
		return float64(e.Sets), e.Sets
	default:
		return float64(e.Sets) * num(e.RPE), e.Sets
	}
}
