package volume_test

import (
	"testing"

	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Lookup(t *testing.T) {
	table := volume.DefaultTable()

	tests := []struct {
		cat   models.Category
		group string
		want  int
	}{
		{models.CategoryStrength, "Back", 20},
		{models.CategoryStrength, "Arms", 12},
		{models.CategoryEndurance, "Legs", 20},
		{models.CategoryMobility, "Hips", 12},
		{models.CategoryEndurance, "Arms", volume.DefaultVolume},
		{"yoga", "Legs", volume.DefaultVolume},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Lookup(tt.cat, tt.group), "%s/%s", tt.cat, tt.group)
	}
}

func TestTable_Merge(t *testing.T) {
	base := volume.DefaultTable()

	merged, err := base.Merge(models.VolumeTOML{
		"Strength": {"Back": 16, "Glutes": 10},
		"endurance": {"Arms": 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 16, merged.Lookup(models.CategoryStrength, "Back"))
	assert.Equal(t, 10, merged.Lookup(models.CategoryStrength, "Glutes"))
	assert.Equal(t, 4, merged.Lookup(models.CategoryEndurance, "Arms"))
	assert.Equal(t, 20, merged.Lookup(models.CategoryStrength, "Chest"))

	// The base table is left alone.
	assert.Equal(t, 20, base.Lookup(models.CategoryStrength, "Back"))
}

func TestTable_MergeRejectsBadInput(t *testing.T) {
	_, err := volume.DefaultTable().Merge(models.VolumeTOML{"cardio": {"Legs": 3}})
	require.Error(t, err)

	_, err = volume.DefaultTable().Merge(models.VolumeTOML{"strength": {"Legs": -1}})
	require.Error(t, err)
}
