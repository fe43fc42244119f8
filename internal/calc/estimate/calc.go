package estimate

import (
	"errors"
	"fmt"
	"os"

	calc "Quarry/internal/calc"
	"Quarry/internal/catalog"

	"github.com/shopspring/decimal"
)

// AccountContractor is the account type allowed to run project estimates.
// The gate is advisory: it keeps pricing out of the retail UI, it is not a
// security boundary.
const AccountContractor = "contractor"

// ErrContractorOnly is returned before any rate table is consulted when
// the caller is not a contractor.
var ErrContractorOnly = errors.New("contractor account required")

// defaultTaxRate is the regional sales tax applied to estimates. Override
// with the TAX_RATE environment variable.
const defaultTaxRate = "0.0825"

type Config struct {
	TaxRate decimal.Decimal
}

func DefaultConfig() Config {
	rate, _ := decimal.NewFromString(defaultTaxRate)
	return Config{TaxRate: rate}
}

// LoadConfig reads TAX_RATE from the environment, falling back to the
// default regional rate.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil && rate.Sign() >= 0 {
			cfg.TaxRate = rate
		}
	}
	return cfg
}

type Input struct {
	ProjectType  string   `json:"project_type"`
	AreaSqFt     float64  `json:"area_sq_ft"`
	PerimeterFt  float64  `json:"perimeter_ft"`
	MaterialCost float64  `json:"material_cost"`
	Services     []string `json:"services"`
}

type ServiceLine struct {
	Service string          `json:"service"`
	Name    string          `json:"name"`
	Basis   string          `json:"basis"`
	Cost    decimal.Decimal `json:"cost"`
}

type Result struct {
	ProjectTypeName string          `json:"project_type_name"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	ServicesCost    decimal.Decimal `json:"services_cost"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	ServiceLines    []ServiceLine   `json:"service_lines,omitempty"`
}

// Calculate prices a project for a contractor: labor from the project
// type's base rate and multiplier, material cost as entered, selected
// add-on services by their unit basis, then tax on the subtotal. Callers
// without a contractor account are refused before any rates are read.
func Calculate(accountType string, in Input, cfg Config) (Result, error) {
	if accountType != AccountContractor {
		return Result{}, ErrContractorOnly
	}
	if in.AreaSqFt <= 0 || in.PerimeterFt < 0 || in.MaterialCost < 0 {
		return Result{}, calc.ErrInvalidInput
	}
	proj, err := catalog.Project(in.ProjectType)
	if err != nil {
		return Result{}, err
	}

	area := decimal.NewFromFloat(in.AreaSqFt)
	perimeter := decimal.NewFromFloat(in.PerimeterFt)

	labor := area.
		Mul(decimal.NewFromFloat(proj.BaseRatePerSqFt)).
		Mul(decimal.NewFromFloat(proj.LaborMultiplier)).
		Round(2)

	var (
		lines        []ServiceLine
		servicesCost = decimal.Zero
	)
	for _, key := range in.Services {
		svc, err := catalog.Service(key)
		if err != nil {
			return Result{}, err
		}
		rate := decimal.NewFromFloat(svc.Rate)
		var cost decimal.Decimal
		switch svc.UnitBasis {
		case catalog.BasisArea:
			cost = area.Mul(rate)
		case catalog.BasisLinear:
			if in.PerimeterFt <= 0 {
				return Result{}, fmt.Errorf("%w: perimeter required for service %q", calc.ErrInvalidInput, key)
			}
			cost = perimeter.Mul(rate)
		case catalog.BasisFlat:
			cost = rate
		default:
			return Result{}, fmt.Errorf("%w: service basis %q", calc.ErrInvalidInput, svc.UnitBasis)
		}
		cost = cost.Round(2)
		servicesCost = servicesCost.Add(cost)
		lines = append(lines, ServiceLine{
			Service: svc.Key,
			Name:    svc.DisplayName,
			Basis:   svc.UnitBasis,
			Cost:    cost,
		})
	}

	material := decimal.NewFromFloat(in.MaterialCost).Round(2)
	subtotal := material.Add(labor).Add(servicesCost)
	tax := subtotal.Mul(cfg.TaxRate).Round(2)

	return Result{
		ProjectTypeName: proj.DisplayName,
		MaterialCost:    material,
		LaborCost:       labor,
		ServicesCost:    servicesCost,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal.Add(tax),
		ServiceLines:    lines,
	}, nil
}
