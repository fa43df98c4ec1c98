package models

// Plan is a suggested set of exercises for one category.
type Plan struct {
	Key       string
	Name      string
	Category  Category
	Exercises []Exercise
}

//
// For TOML parsing only
//

type PlanTOML struct {
	Key       string            `toml:"key"`
	Name      string            `toml:"name"`
	Category  string            `toml:"category"`
	Exercises []ExerciseDefTOML `toml:"exercise"`
}

type PlanFileTOML struct {
	Plans []PlanTOML `toml:"plan"`
}

// VolumeTOML maps category -> muscle group -> weekly sets.
type VolumeTOML map[string]map[string]int
