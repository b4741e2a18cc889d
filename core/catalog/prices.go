package catalog

import (
	"github.com/shopspring/decimal"

	"shadowcost/internal/errors"
)

// Category is a priced element category
type Category string

const (
	CategorySlab   Category = "slab"
	CategoryColumn Category = "column"
	CategoryCore   Category = "core"
)

// Measure returns the billing unit of the category
func (c Category) Measure() string {
	switch c {
	case CategoryColumn:
		return "m"
	default:
		return "m2"
	}
}

// Shadow-price coefficients in € per unit (MKI).
var (
	slabRatePerM2 = map[Material]decimal.Decimal{
		Concrete: decimal.RequireFromString("12.8"),
		Timber:   decimal.RequireFromString("0.9"),
		Steel:    decimal.RequireFromString("10.2"),
	}
	columnRatePerM = map[Material]decimal.Decimal{
		Concrete: decimal.RequireFromString("17.1"),
		Timber:   decimal.RequireFromString("0.7"),
		Steel:    decimal.RequireFromString("9.0"),
	}
	coreRatePerM2 = map[Material]decimal.Decimal{
		Concrete: decimal.RequireFromString("6.9"),
		Timber:   decimal.RequireFromString("0.9"),
	}
)

// Rate returns the shadow price per unit for a material used in a category.
// Pairs that no Assignment produces (steel cores, ground) have no rate.
func Rate(c Category, m Material) (decimal.Decimal, error) {
	var table map[Material]decimal.Decimal
	switch c {
	case CategorySlab:
		table = slabRatePerM2
	case CategoryColumn:
		table = columnRatePerM
	case CategoryCore:
		table = coreRatePerM2
	default:
		return decimal.Zero, errors.Pricing("unknown element category").WithContext("category", string(c))
	}

	rate, ok := table[m]
	if !ok {
		return decimal.Zero, errors.Pricing("no shadow price for material").
			WithContext("category", string(c)).
			WithContext("material", m.Name())
	}
	return rate, nil
}

// SlabRatePerM2 returns the slab coefficient
func SlabRatePerM2(m Material) (decimal.Decimal, error) { return Rate(CategorySlab, m) }

// ColumnRatePerM returns the column coefficient
func ColumnRatePerM(m Material) (decimal.Decimal, error) { return Rate(CategoryColumn, m) }

// CoreRatePerM2 returns the core wall coefficient
func CoreRatePerM2(m Material) (decimal.Decimal, error) { return Rate(CategoryCore, m) }
