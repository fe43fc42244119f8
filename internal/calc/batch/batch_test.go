package batch

import (
	"testing"

	tonnage "Quarry/internal/calc/tonnage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTonnageBatch(t *testing.T) {
	res, err := CalculateTonnage(TonnageBatchInput{Items: []tonnage.Input{
		{AreaSqFt: 100, DepthInches: 3, Material: "fines"},
		{AreaSqFt: 50, DepthInches: 2, Material: "sand"},
	}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, 25.0, res.Results[0].CubicFeet)
	assert.Equal(t, "Masonry Sand", res.Results[1].MaterialName)
}

func TestEmptyBatch(t *testing.T) {
	_, err := CalculateTonnage(TonnageBatchInput{})
	assert.Error(t, err)
}

func TestBadItemFailsBatch(t *testing.T) {
	_, err := CalculateTonnage(TonnageBatchInput{Items: []tonnage.Input{
		{AreaSqFt: 100, DepthInches: 3, Material: "fines"},
		{AreaSqFt: -1, DepthInches: 3, Material: "fines"},
	}})
	assert.Error(t, err)
}
