package volume_test

import (
	"testing"

	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ex(id, group string, cat models.Category, priority int, selected bool, weekly int) models.Exercise {
	return models.Exercise{
		ID:          id,
		Name:        id,
		MuscleGroup: group,
		Category:    cat,
		Priority:    priority,
		IsSelected:  selected,
		WeeklySets:  weekly,
	}
}

func weekly(exs []models.Exercise) []int {
	out := make([]int, len(exs))
	for i, e := range exs {
		out[i] = e.WeeklySets
	}
	return out
}

func TestAllocate_ExactShares(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 3, true, 0),
		ex("b", "Legs", models.CategoryStrength, 2, true, 0),
		ex("c", "Legs", models.CategoryStrength, 1, true, 0),
	}

	out := volume.Allocate(in, "Legs", models.CategoryStrength, 12)
	assert.Equal(t, []int{6, 4, 2}, weekly(out))
}

func TestAllocate_RemainderTieGoesToFirst(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Arms", models.CategoryStrength, 1, true, 0),
		ex("b", "Arms", models.CategoryStrength, 1, true, 0),
		ex("c", "Arms", models.CategoryStrength, 1, true, 0),
	}

	out := volume.Allocate(in, "Arms", models.CategoryStrength, 10)
	assert.Equal(t, []int{4, 3, 3}, weekly(out))
}

func TestAllocate_LargestRemainderWins(t *testing.T) {
	// 12 * 1/7 = 1.71, 12 * 2/7 = 3.43, 12 * 4/7 = 6.86 -> floors 1,3,6 (10), two left.
	in := []models.Exercise{
		ex("a", "Back", models.CategoryStrength, 1, true, 0),
		ex("b", "Back", models.CategoryStrength, 2, true, 0),
		ex("c", "Back", models.CategoryStrength, 4, true, 0),
	}

	out := volume.Allocate(in, "Back", models.CategoryStrength, 12)
	assert.Equal(t, []int{2, 3, 7}, weekly(out))
}

func TestAllocate_OutsideBucketUntouched(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 1, true, 0),
		ex("other-group", "Chest", models.CategoryStrength, 2, true, 9),
		ex("other-cat", "Legs", models.CategoryMobility, 2, true, 5),
		ex("b", "Legs", models.CategoryStrength, 1, true, 0),
	}

	out := volume.Allocate(in, "Legs", models.CategoryStrength, 20)
	require.Len(t, out, 4)
	assert.Equal(t, []int{10, 9, 5, 10}, weekly(out))
	assert.Equal(t, "other-group", out[1].ID)
}

func TestAllocate_InactiveMembersZeroed(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Core", models.CategoryStrength, 2, true, 0),
		ex("unselected", "Core", models.CategoryStrength, 5, false, 7),
		ex("zero", "Core", models.CategoryStrength, 0, true, 3),
		ex("negative", "Core", models.CategoryStrength, -2, true, 3),
	}

	out := volume.Allocate(in, "Core", models.CategoryStrength, 12)
	assert.Equal(t, []int{12, 0, 0, 0}, weekly(out))
}

func TestAllocate_ZeroPriorityBucketScope(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Hips", models.CategoryMobility, 0, true, 4),
		ex("b", "Hips", models.CategoryMobility, 3, false, 4),
		ex("c", "Legs", models.CategoryMobility, 2, true, 6),
	}

	out := volume.Allocate(in, "Hips", models.CategoryMobility, 12)
	assert.Equal(t, []int{0, 0, 6}, weekly(out))
}

func TestAllocate_ZeroPriorityWholeListScope(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Hips", models.CategoryMobility, 0, true, 4),
		ex("c", "Legs", models.CategoryMobility, 2, true, 6),
		ex("d", "Chest", models.CategoryStrength, 1, true, 20),
	}

	out := volume.Allocate(in, "Hips", models.CategoryMobility, 12, volume.WithZeroScope(volume.ScopeAll))
	assert.Equal(t, []int{0, 0, 0}, weekly(out))
}

func TestAllocate_EmptyBucket(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 1, true, 8),
	}

	out := volume.Allocate(in, "Arms", models.CategoryStrength, 12)
	assert.Equal(t, []int{8}, weekly(out))

	assert.Empty(t, volume.Allocate(nil, "Arms", models.CategoryStrength, 12))
}

func TestAllocate_NegativeVolumeClamped(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 1, true, 3),
		ex("b", "Legs", models.CategoryStrength, 2, true, 3),
	}

	out := volume.Allocate(in, "Legs", models.CategoryStrength, -5)
	assert.Equal(t, []int{0, 0}, weekly(out))
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 1, true, 0),
		ex("b", "Legs", models.CategoryStrength, 1, false, 9),
	}

	_ = volume.Allocate(in, "Legs", models.CategoryStrength, 12)
	assert.Equal(t, []int{0, 9}, weekly(in))
}

func TestAllocate_SumsExactly(t *testing.T) {
	priorities := [][]int{
		{1},
		{1, 1},
		{5, 3, 1},
		{7, 7, 7, 7, 7, 7, 7},
		{1, 2, 3, 4, 5, 6},
		{10, 1, 1},
		{3, 0, -1, 2},
		{13, 17, 19, 23},
	}
	volumes := []int{0, 1, 7, 10, 12, 20, 97}

	for _, ps := range priorities {
		for _, total := range volumes {
			var in []models.Exercise
			for i, p := range ps {
				in = append(in, ex(string(rune('a'+i)), "Legs", models.CategoryStrength, p, true, 0))
			}

			out := volume.Allocate(in, "Legs", models.CategoryStrength, total)
			assert.Equal(t, total, volume.BucketSets(out, "Legs", models.CategoryStrength), "priorities %v volume %d", ps, total)
			for _, e := range out {
				assert.GreaterOrEqual(t, e.WeeklySets, 0)
			}
		}
	}
}

func TestAllocateBucket_UsesTable(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Back", models.CategoryStrength, 3, true, 0),
		ex("b", "Back", models.CategoryStrength, 2, true, 0),
		ex("c", "Glutes", models.CategoryStrength, 1, true, 0),
	}
	table := volume.DefaultTable()

	out := volume.AllocateBucket(in, "Back", models.CategoryStrength, table)
	assert.Equal(t, []int{12, 8, 0}, weekly(out))

	out = volume.AllocateBucket(out, "Glutes", models.CategoryStrength, table)
	assert.Equal(t, []int{12, 8, volume.DefaultVolume}, weekly(out))
}

func TestAllocateAll(t *testing.T) {
	in := []models.Exercise{
		ex("run", "Legs", models.CategoryEndurance, 3, true, 0),
		ex("squat", "Legs", models.CategoryStrength, 1, true, 0),
		ex("bike", "Legs", models.CategoryEndurance, 1, true, 0),
		ex("hang", "Shoulders", models.CategoryMobility, 2, true, 0),
	}

	out := volume.AllocateAll(in, volume.DefaultTable())
	assert.Equal(t, []int{15, 20, 5, 12}, weekly(out))
	assert.Empty(t, volume.AllocateAll(nil, volume.DefaultTable()))
}

func TestBuckets_FirstAppearanceOrder(t *testing.T) {
	in := []models.Exercise{
		ex("a", "Legs", models.CategoryStrength, 1, true, 0),
		ex("b", "Arms", models.CategoryStrength, 1, true, 0),
		ex("c", "Legs", models.CategoryStrength, 1, true, 0),
		ex("d", "Legs", models.CategoryMobility, 1, true, 0),
	}

	assert.Equal(t, []models.Bucket{
		{MuscleGroup: "Legs", Category: models.CategoryStrength},
		{MuscleGroup: "Arms", Category: models.CategoryStrength},
		{MuscleGroup: "Legs", Category: models.CategoryMobility},
	}, volume.Buckets(in))
}
