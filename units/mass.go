package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Mass is a quantity of matter; the SI base unit is the kilogram, not the
// gram.
type Mass = quantity.Quantity[dimension.Mass]

var (
	Kilogram  = unit.New(dimension.Mass{})
	Gram      = unit.Derive(Kilogram, rational.New(1, 1000))
	Milligram = unit.Milli(Gram)
	Microgram = unit.Micro(Gram)
	MetricTon = unit.Derive(Kilogram, rational.FromInt(1000))

	// The avoirdupois pound, exactly 0.45359237 kg.
	Pound       = unit.Derive(Kilogram, rational.New(45_359_237, 100_000_000))
	Ounce       = unit.Derive(Pound, rational.New(1, 16))
	Stone       = unit.Derive(Pound, rational.FromInt(14))
	ImperialTon = unit.Derive(Pound, rational.FromInt(2240))
	USTon       = unit.Derive(Pound, rational.FromInt(2000))

	Carat = unit.Derive(Milligram, rational.FromInt(200))
	Slug  = unit.Derive(Kilogram, rational.New(145_939_029, 10_000_000))
)

func Kilograms(v float64) Mass { return quantity.New[dimension.Mass](v, Kilogram) }

func Grams(v float64) Mass { return quantity.New[dimension.Mass](v, Gram) }

func Milligrams(v float64) Mass { return quantity.New[dimension.Mass](v, Milligram) }

func Micrograms(v float64) Mass { return quantity.New[dimension.Mass](v, Microgram) }

func MetricTons(v float64) Mass { return quantity.New[dimension.Mass](v, MetricTon) }

func Pounds(v float64) Mass { return quantity.New[dimension.Mass](v, Pound) }

func Ounces(v float64) Mass { return quantity.New[dimension.Mass](v, Ounce) }

func Stones(v float64) Mass { return quantity.New[dimension.Mass](v, Stone) }

func ImperialTons(v float64) Mass { return quantity.New[dimension.Mass](v, ImperialTon) }

func USTons(v float64) Mass { return quantity.New[dimension.Mass](v, USTon) }

func Carats(v float64) Mass { return quantity.New[dimension.Mass](v, Carat) }

func Slugs(v float64) Mass { return quantity.New[dimension.Mass](v, Slug) }
