// Package plans holds the suggested starter plans shipped with the binary.
package plans

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/loadout/internal/models"
)

//go:embed plans.toml
var plansTOML string

// Parse decodes a plan file. Every exercise must carry the plan's category.
func Parse(data string) (map[string]models.Plan, error) {
	var file models.PlanFileTOML
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}

	plans := make(map[string]models.Plan, len(file.Plans))
	for _, p := range file.Plans {
		key := strings.ToLower(strings.TrimSpace(p.Key))
		if key == "" {
			return nil, fmt.Errorf("plan %q has no key", p.Name)
		}
		if _, dup := plans[key]; dup {
			return nil, fmt.Errorf("duplicate plan %q", key)
		}

		category, ok := models.ParseCategory(p.Category)
		if !ok {
			return nil, fmt.Errorf("plan %q: unknown category %q", key, p.Category)
		}

		plan := models.Plan{Key: key, Name: p.Name, Category: category}
		for _, def := range p.Exercises {
			ex, err := def.ToExercise()
			if err != nil {
				return nil, fmt.Errorf("plan %q: %w", key, err)
			}
			if ex.Category != category {
				return nil, fmt.Errorf("plan %q: exercise %q is %s, not %s", key, ex.Name, ex.Category, category)
			}
			plan.Exercises = append(plan.Exercises, ex)
		}
		plans[key] = plan
	}
	return plans, nil
}

var builtin = func() map[string]models.Plan {
	plans, err := Parse(plansTOML)
	if err != nil {
		panic(err)
	}
	return plans
}()

// Get returns a copy of the named built-in plan.
func Get(key string) (models.Plan, bool) {
	plan, ok := builtin[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return models.Plan{}, false
	}
	plan.Exercises = append([]models.Exercise(nil), plan.Exercises...)
	return plan, true
}

// Keys lists the built-in plan keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(builtin))
	for k := range builtin {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
