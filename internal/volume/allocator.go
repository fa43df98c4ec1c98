// Package volume distributes a weekly set budget across the exercises of a
// (muscle group, category) bucket in proportion to their priority.
package volume

import (
	"sort"

	"github.com/misterclayt0n/loadout/internal/models"
)

// ZeroScope selects which exercises are zeroed when a bucket has no positive priority.
type ZeroScope int

const (
	// ScopeBucket zeroes only the members of the bucket being allocated.
	ScopeBucket ZeroScope = iota
	// ScopeAll zeroes every exercise in the input, bucket or not.
	ScopeAll
)

type options struct {
	zeroScope ZeroScope
}

type Option func(*options)

// WithZeroScope overrides the default ScopeBucket behaviour.
func WithZeroScope(s ZeroScope) Option {
	return func(o *options) {
		o.zeroScope = s
	}
}

type share struct {
	idx int
	rem int // Numerator of the fractional part, over totalPriority.
}

// Allocate returns a copy of exercises with WeeklySets recomputed for the
// bucket (muscleGroup, category). Selected members with a positive priority
// split totalVolume using the largest remainder method, so their WeeklySets
// always sum to totalVolume exactly. Unselected or non-positive members of the
// bucket get 0. Exercises outside the bucket pass through unchanged.
//
// A negative totalVolume is treated as 0.
func Allocate(exercises []models.Exercise, muscleGroup string, category models.Category, totalVolume int, opts ...Option) []models.Exercise {
	o := options{zeroScope: ScopeBucket}
	for _, opt := range opts {
		opt(&o)
	}
	if totalVolume < 0 {
		totalVolume = 0
	}

	out := make([]models.Exercise, len(exercises))
	copy(out, exercises)

	var active []int
	totalPriority := 0
	for i, ex := range out {
		if !ex.InBucket(muscleGroup, category) {
			continue
		}
		if !ex.IsSelected {
			out[i].WeeklySets = 0
			continue
		}
		active = append(active, i)
		if ex.Priority > 0 {
			totalPriority += ex.Priority
		}
	}

	if totalPriority == 0 {
		for i := range out {
			if o.zeroScope == ScopeAll || out[i].InBucket(muscleGroup, category) {
				out[i].WeeklySets = 0
			}
		}
		return out
	}

	// Integer arithmetic keeps the floor and the remainder ranking exact:
	// priority/total*volume == (priority*volume)/total + rem/total.
	shares := make([]share, 0, len(active))
	assigned := 0
	for _, i := range active {
		if out[i].Priority <= 0 {
			out[i].WeeklySets = 0
			continue
		}
		scaled := out[i].Priority * totalVolume
		sets := scaled / totalPriority
		out[i].WeeklySets = sets
		assigned += sets
		shares = append(shares, share{idx: i, rem: scaled % totalPriority})
	}

	remaining := totalVolume - assigned
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].rem > shares[b].rem
	})
	for k := 0; k < remaining && k < len(shares); k++ {
		out[shares[k].idx].WeeklySets++
	}

	return out
}

// AllocateBucket allocates one bucket using the volume configured in table.
func AllocateBucket(exercises []models.Exercise, muscleGroup string, category models.Category, table Table, opts ...Option) []models.Exercise {
	return Allocate(exercises, muscleGroup, category, table.Lookup(category, muscleGroup), opts...)
}

// AllocateAll reallocates every bucket present in exercises.
func AllocateAll(exercises []models.Exercise, table Table) []models.Exercise {
	out := exercises
	for _, b := range Buckets(exercises) {
		out = AllocateBucket(out, b.MuscleGroup, b.Category, table)
	}
	if out == nil {
		return []models.Exercise{}
	}
	return out
}

// Buckets returns the distinct buckets in order of first appearance.
func Buckets(exercises []models.Exercise) []models.Bucket {
	seen := make(map[models.Bucket]bool)
	var buckets []models.Bucket
	for _, ex := range exercises {
		b := models.Bucket{MuscleGroup: ex.MuscleGroup, Category: ex.Category}
		if seen[b] {
			continue
		}
		seen[b] = true
		buckets = append(buckets, b)
	}
	return buckets
}

// BucketSets sums WeeklySets over the selected, positive-priority members of a bucket.
func BucketSets(exercises []models.Exercise, muscleGroup string, category models.Category) int {
	total := 0
	for _, ex := range exercises {
		if ex.InBucket(muscleGroup, category) && ex.IsSelected && ex.Priority > 0 {
			total += ex.WeeklySets
		}
	}
	return total
}
