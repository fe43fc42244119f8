package estimate

import (
	"testing"

	calc "Quarry/internal/calc"
	"Quarry/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractorGate(t *testing.T) {
	in := Input{ProjectType: "patio", AreaSqFt: 200, MaterialCost: 1000}
	for _, accountType := range []string{"customer", "admin", ""} {
		_, err := Calculate(accountType, in, DefaultConfig())
		assert.ErrorIs(t, err, ErrContractorOnly, "account type %q", accountType)
	}
	// Gate fires before input validation: even garbage input gets the
	// same refusal, no rate table is consulted.
	_, err := Calculate("customer", Input{ProjectType: "not-a-project", AreaSqFt: -5}, DefaultConfig())
	assert.ErrorIs(t, err, ErrContractorOnly)
}

func TestPatioBreakdown(t *testing.T) {
	// Patio: 200 sq ft x $2.50 x 1.0 = $500 labor. Services: polymeric
	// sand 200 x $0.75 = $150, edge restraint 60 ft x $3.25 = $195,
	// delivery flat $150. Subtotal $1995, tax 8.25% = $164.59.
	res, err := Calculate(AccountContractor, Input{
		ProjectType:  "patio",
		AreaSqFt:     200,
		PerimeterFt:  60,
		MaterialCost: 1000,
		Services:     []string{"polymeric-sand", "edge-restraint", "delivery"},
	}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Patio", res.ProjectTypeName)
	assert.Equal(t, "1000.00", res.MaterialCost.StringFixed(2))
	assert.Equal(t, "500.00", res.LaborCost.StringFixed(2))
	assert.Equal(t, "495.00", res.ServicesCost.StringFixed(2))
	assert.Equal(t, "1995.00", res.Subtotal.StringFixed(2))
	assert.Equal(t, "164.59", res.Tax.StringFixed(2))
	assert.Equal(t, "2159.59", res.Total.StringFixed(2))

	require.Len(t, res.ServiceLines, 3)
	assert.Equal(t, "150.00", res.ServiceLines[0].Cost.StringFixed(2))
	assert.Equal(t, "195.00", res.ServiceLines[1].Cost.StringFixed(2))
	assert.Equal(t, "150.00", res.ServiceLines[2].Cost.StringFixed(2))
}

func TestLaborMultiplier(t *testing.T) {
	// Driveway: 100 sq ft x $3.50 x 1.3 = $455.
	res, err := Calculate(AccountContractor, Input{
		ProjectType: "driveway",
		AreaSqFt:    100,
	}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "455.00", res.LaborCost.StringFixed(2))
}

func TestLinearServiceNeedsPerimeter(t *testing.T) {
	_, err := Calculate(AccountContractor, Input{
		ProjectType:  "patio",
		AreaSqFt:     200,
		MaterialCost: 100,
		Services:     []string{"edge-restraint"},
	}, DefaultConfig())
	assert.ErrorIs(t, err, calc.ErrInvalidInput)
}

func TestUnknownKeys(t *testing.T) {
	_, err := Calculate(AccountContractor, Input{ProjectType: "gazebo", AreaSqFt: 100}, DefaultConfig())
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)

	_, err = Calculate(AccountContractor, Input{
		ProjectType: "patio", AreaSqFt: 100, Services: []string{"landscaping"},
	}, DefaultConfig())
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)
}

func TestInvalidInput(t *testing.T) {
	for _, in := range []Input{
		{ProjectType: "patio", AreaSqFt: 0},
		{ProjectType: "patio", AreaSqFt: 100, PerimeterFt: -1},
		{ProjectType: "patio", AreaSqFt: 100, MaterialCost: -50},
	} {
		_, err := Calculate(AccountContractor, in, DefaultConfig())
		assert.ErrorIs(t, err, calc.ErrInvalidInput, "input %+v", in)
	}
}

func TestIdempotent(t *testing.T) {
	in := Input{ProjectType: "pool-deck", AreaSqFt: 340, PerimeterFt: 74,
		MaterialCost: 2500, Services: []string{"sealing", "edge-restraint"}}
	first, err := Calculate(AccountContractor, in, DefaultConfig())
	require.NoError(t, err)
	second, err := Calculate(AccountContractor, in, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
