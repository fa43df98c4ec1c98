package volume

import (
	"fmt"

	"github.com/misterclayt0n/loadout/internal/models"
)

// DefaultVolume is used for buckets without a configured weekly volume.
const DefaultVolume = 12

// Table maps category -> muscle group -> weekly sets.
type Table map[models.Category]map[string]int

func DefaultTable() Table {
	return Table{
		models.CategoryStrength: {
			"Arms":      12,
			"Back":      20,
			"Chest":     20,
			"Core":      12,
			"Legs":      20,
			"Shoulders": 12,
			"LowerLegs": 12,
		},
		models.CategoryMobility: {
			"Shoulders": 12,
			"Hips":      12,
			"Legs":      12,
		},
		models.CategoryEndurance: {
			"Legs": 20,
		},
	}
}

// Lookup returns the weekly volume of a bucket, or DefaultVolume if unmapped.
func (t Table) Lookup(category models.Category, muscleGroup string) int {
	if v, ok := t[category][muscleGroup]; ok {
		return v
	}
	return DefaultVolume
}

// Merge returns a copy of t with the overrides applied on top.
func (t Table) Merge(overrides models.VolumeTOML) (Table, error) {
	out := make(Table, len(t))
	for cat, groups := range t {
		out[cat] = make(map[string]int, len(groups))
		for g, v := range groups {
			out[cat][g] = v
		}
	}

	for rawCat, groups := range overrides {
		cat, ok := models.ParseCategory(rawCat)
		if !ok {
			return nil, fmt.Errorf("unknown category %q in volume table", rawCat)
		}
		if out[cat] == nil {
			out[cat] = make(map[string]int, len(groups))
		}
		for g, v := range groups {
			if v < 0 {
				return nil, fmt.Errorf("negative volume %d for %s/%s", v, cat, g)
			}
			out[cat][g] = v
		}
	}
	return out, nil
}
