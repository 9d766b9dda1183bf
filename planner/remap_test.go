package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVariantMapping(t *testing.T) {
	lines := []SourceLine{
		{Family: "Stretch Zion Pant", Color: "Mud", Size: "30"},
		{Family: "Stretch Zion Pant", Color: "Mud", Size: "32"},
		{Family: "Stretch Zion Pant", Color: "Charcoal", Size: "32"},
		{Family: "Bamboo Tee", Color: "Heather", Size: "M"},
	}

	remaps := map[string]FamilyRemap{
		"Stretch Zion Pant": {
			SourceColor:     "Mud",
			TargetColor:     "Charcoal",
			AvailableColors: []string{"Mud", "Charcoal"},
		},
		"Bamboo Tee": {
			SourceColor:     "Heather",
			TargetColor:     "Heather", // keep same
			AvailableColors: []string{"Heather", "Navy"},
		},
	}

	mapping := BuildVariantMapping(lines, remaps)

	// keep-same family omitted entirely
	require.Len(t, mapping, 1)
	sizes := mapping["Stretch Zion Pant"]
	require.Len(t, sizes, 2)
	assert.Equal(t, ColorSwap{From: "Mud", To: "Charcoal"}, sizes["30"])
	assert.Equal(t, ColorSwap{From: "Mud", To: "Charcoal"}, sizes["32"])

	// the Charcoal line doesn't match the chosen source color
	_, ok := sizes["34"]
	assert.False(t, ok)
}

func TestBuildVariantMappingIdentityEverywhere(t *testing.T) {
	lines := []SourceLine{{Family: "Bamboo Tee", Color: "Heather", Size: "M"}}
	remaps := map[string]FamilyRemap{
		"Bamboo Tee": {SourceColor: "Heather", TargetColor: "Heather", AvailableColors: []string{"Heather", "Navy"}},
	}
	assert.Empty(t, BuildVariantMapping(lines, remaps))
}

func TestBuildVariantMappingSingleColorSkipped(t *testing.T) {
	lines := []SourceLine{{Family: "Rope Bag", Color: "Black", Size: "OS"}}
	remaps := map[string]FamilyRemap{
		"Rope Bag": {SourceColor: "Black", TargetColor: "Blue", AvailableColors: []string{"Black"}},
	}
	assert.Empty(t, BuildVariantMapping(lines, remaps))
}
