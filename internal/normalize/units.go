// Package normalize converts quantities and prices to kilograms and rupees per kilogram,
// and maps quality phrases onto the fixed grade set.
package normalize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrTotalNeedsQuantity = errors.New("total price needs a known quantity")
)

const (
	UnitKg      = "kg"
	UnitQuintal = "quintal"
	UnitTon     = "ton"
	UnitTotal   = "total"
)

var unitAliases = map[string]string{
	"":           UnitKg,
	"kg":         UnitKg,
	"kgs":        UnitKg,
	"kilo":       UnitKg,
	"kilos":      UnitKg,
	"kilogram":   UnitKg,
	"kilograms":  UnitKg,
	"किलो":       UnitKg,
	"quintal":    UnitQuintal,
	"quintals":   UnitQuintal,
	"qtl":        UnitQuintal,
	"q":          UnitQuintal,
	"kuintal":    UnitQuintal,
	"kwintal":    UnitQuintal,
	"क्विंटल":    UnitQuintal,
	"ton":        UnitTon,
	"tons":       UnitTon,
	"tonne":      UnitTon,
	"tonnes":     UnitTon,
	"t":          UnitTon,
	"टन":         UnitTon,
	"total":      UnitTotal,
	"lumpsum":    UnitTotal,
	"lump sum":   UnitTotal,
	"kul":        UnitTotal,
	"कुल":        UnitTotal,
	"whole":      UnitTotal,
	"everything": UnitTotal,
}

var kgPerUnit = map[string]float64{
	UnitKg:      1,
	UnitQuintal: 100,
	UnitTon:     1000,
}

// Unit returns the canonical spelling of a unit word.
func Unit(raw string) (string, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
	}
	return u, nil
}

// QuantityKg converts value in unit to kilograms. "total" is not a quantity unit.
func QuantityKg(value float64, unit string) (float64, error) {
	u, err := Unit(unit)
	if err != nil {
		return 0, err
	}
	factor, ok := kgPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a quantity unit", ErrUnknownUnit, unit)
	}
	return value * factor, nil
}

// PricePerKg converts a price quoted per unit into rupees per kilogram.
// A "total" price is spread over quantityKg, which must be positive.
func PricePerKg(price float64, unit string, quantityKg float64) (float64, error) {
	u, err := Unit(unit)
	if err != nil {
		return 0, err
	}
	if u == UnitTotal {
		if quantityKg <= 0 {
			return 0, ErrTotalNeedsQuantity
		}
		return price / quantityKg, nil
	}
	return price / kgPerUnit[u], nil
}

// PriceInUnit converts a per-kg price back to a price per unit.
func PriceInUnit(perKg float64, unit string) (float64, error) {
	u, err := Unit(unit)
	if err != nil {
		return 0, err
	}
	factor, ok := kgPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no fixed weight", ErrUnknownUnit, unit)
	}
	return perKg * factor, nil
}

// DefaultPriceUnit is the unit assumed for a bare price: mandi rates follow a
// quintal or ton quantity, anything else is per kg.
func DefaultPriceUnit(quantityUnit string) string {
	if u, err := Unit(quantityUnit); err == nil && (u == UnitQuintal || u == UnitTon) {
		return u
	}
	return UnitKg
}
