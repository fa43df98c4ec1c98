package models

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryStrength  Category = "strength"
	CategoryEndurance Category = "endurance"
	CategoryMobility  Category = "mobility"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryStrength, CategoryEndurance, CategoryMobility}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryStrength, CategoryEndurance, CategoryMobility:
		return c, true
	}
	return "", false
}

type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	MuscleGroup string    `json:"muscle_group"`
	Priority    int       `json:"priority"`
	IsSelected  bool      `json:"is_selected"`
	WeeklySets  int       `json:"weekly_sets"`
	TargetRPE   float64   `json:"target_rpe"`          // Strength only.
	Distance    float64   `json:"distance"`            // Endurance only.
	OneRepMax   float64   `json:"one_rep_max"`         // Optional, history view only.
	CreatedAt   time.Time `json:"created_at"`
}

// InBucket reports whether the exercise belongs to the (muscleGroup, category) bucket.
func (e Exercise) InBucket(muscleGroup string, category Category) bool {
	return e.MuscleGroup == muscleGroup && e.Category == category
}

// Bucket is the unit weekly volume is allocated over.
type Bucket struct {
	MuscleGroup string
	Category    Category
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Category    string  `toml:"category"`
	MuscleGroup string  `toml:"muscle_group"`
	Priority    int     `toml:"priority"`
	Selected    *bool   `toml:"selected,omitempty"`
	TargetRPE   float64 `toml:"target_rpe,omitempty"`
	Distance    float64 `toml:"distance,omitempty"`
	WeeklySets  int     `toml:"weekly_sets,omitempty"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}

// ToExercise validates the definition and converts it. Exercises are selected
// unless the definition says otherwise.
func (d ExerciseDefTOML) ToExercise() (Exercise, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Exercise{}, fmt.Errorf("exercise without a name")
	}

	category, ok := ParseCategory(d.Category)
	if !ok {
		return Exercise{}, fmt.Errorf("exercise %q: unknown category %q", name, d.Category)
	}

	muscle := strings.TrimSpace(d.MuscleGroup)
	if muscle == "" {
		return Exercise{}, fmt.Errorf("exercise %q: missing muscle_group", name)
	}

	selected := true
	if d.Selected != nil {
		selected = *d.Selected
	}

	return Exercise{
		Name:        name,
		Description: d.Description,
		Category:    category,
		MuscleGroup: muscle,
		Priority:    d.Priority,
		IsSelected:  selected,
		WeeklySets:  d.WeeklySets,
		TargetRPE:   d.TargetRPE,
		Distance:    d.Distance,
	}, nil
}
