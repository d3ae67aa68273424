package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	AmountOfSubstance = quantity.Quantity[dimension.Substance]
	Density           = quantity.Quantity[dimension.Density]

	// Concentration is a dimensionless mixing ratio kept as its own category
	// so parts-per values do not silently mix with bare scalars.
	Concentration = quantity.Quantity[dimension.Concentration]
)

var (
	Mole      = unit.New(dimension.Substance{})
	Millimole = unit.Milli(Mole)

	KilogramPerCubicMeter = unit.New(dimension.Density{})
	GramPerMilliliter     = unit.Compound(Gram, unit.Invert(Milliliter))
	KilogramPerLiter      = unit.Compound(Kilogram, unit.Invert(Liter))
	PoundPerCubicFoot     = unit.Compound(Pound, unit.Invert(CubicFoot))

	PartsPerMillion  = unit.Derive(Unitless, rational.New(1, 1_000_000))
	PartsPerBillion  = unit.Derive(PartsPerMillion, rational.New(1, 1000))
	PartsPerTrillion = unit.Derive(PartsPerBillion, rational.New(1, 1000))
)

func Moles(v float64) AmountOfSubstance { return quantity.New[dimension.Substance](v, Mole) }

func Millimoles(v float64) AmountOfSubstance { return quantity.New[dimension.Substance](v, Millimole) }

func KilogramsPerCubicMeter(v float64) Density {
	return quantity.New[dimension.Density](v, KilogramPerCubicMeter)
}

func GramsPerMilliliter(v float64) Density {
	return quantity.New[dimension.Density](v, GramPerMilliliter)
}

func KilogramsPerLiter(v float64) Density {
	return quantity.New[dimension.Density](v, KilogramPerLiter)
}

func PoundsPerCubicFoot(v float64) Density {
	return quantity.New[dimension.Density](v, PoundPerCubicFoot)
}

func PPM(v float64) Concentration { return quantity.New[dimension.Concentration](v, PartsPerMillion) }

func PPB(v float64) Concentration { return quantity.New[dimension.Concentration](v, PartsPerBillion) }

func PPT(v float64) Concentration {
	return quantity.New[dimension.Concentration](v, PartsPerTrillion)
}
