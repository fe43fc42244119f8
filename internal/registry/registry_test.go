package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() Definition {
	return Definition{
		Name:     "Flagstone Coverage",
		Category: "flagstone",
		Type:     TypeTonnage,
		Formula:  "(length * width * depth) / 27",
		Variables: []Variable{
			{Name: "length", Label: "Length", Unit: "ft"},
			{Name: "width", Label: "Width", Unit: "ft"},
			{Name: "depth", Label: "Depth", Unit: "ft", DefaultValue: 0.25},
		},
		IsActive: true,
	}
}

func TestValidateAcceptsGoodDefinition(t *testing.T) {
	d := validDefinition()
	assert.NoError(t, d.Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"empty name", func(d *Definition) { d.Name = "  " }},
		{"unknown type", func(d *Definition) { d.Type = "cubic" }},
		{"no variables", func(d *Definition) { d.Variables = nil }},
		{"blank variable name", func(d *Definition) { d.Variables[0].Name = "" }},
		{"duplicate variable", func(d *Definition) { d.Variables[1].Name = "length" }},
		{"formula does not compile", func(d *Definition) { d.Formula = "length +" }},
		{"undeclared formula variable", func(d *Definition) { d.Formula = "length * widht" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDefinition()
			tc.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestEvaluateWithDefaults(t *testing.T) {
	d := validDefinition()
	// depth omitted: the declared default 0.25 applies.
	v, err := d.Evaluate(map[string]float64{"length": 10, "width": 5.4})
	require.NoError(t, err)
	assert.InDelta(t, 10*5.4*0.25/27, v, 1e-9)
}

func TestEvaluateOverridesDefaults(t *testing.T) {
	d := validDefinition()
	v, err := d.Evaluate(map[string]float64{"length": 10, "width": 5, "depth": 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 25.0/27.0, v, 1e-9)
}

func TestEvaluateIgnoresUndeclaredInputs(t *testing.T) {
	d := validDefinition()
	v, err := d.Evaluate(map[string]float64{"length": 10, "width": 5, "depth": 0.5, "bogus": 99})
	require.NoError(t, err)
	assert.InDelta(t, 25.0/27.0, v, 1e-9)
}
