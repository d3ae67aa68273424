package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	LuminousIntensity = quantity.Quantity[dimension.LuminousIntensity]
	LuminousFlux      = quantity.Quantity[dimension.LuminousFlux]
	Illuminance       = quantity.Quantity[dimension.Illuminance]
)

var (
	Candela      = unit.New(dimension.LuminousIntensity{})
	Millicandela = unit.Milli(Candela)

	Lumen      = unit.New(dimension.LuminousFlux{})
	Millilumen = unit.Milli(Lumen)

	Lux                = unit.New(dimension.Illuminance{})
	Footcandle         = unit.Compound(Lumen, unit.Invert(SquareFoot))
	LumenPerSquareInch = unit.Compound(Lumen, unit.Invert(SquareInch))
)

func Candelas(v float64) LuminousIntensity {
	return quantity.New[dimension.LuminousIntensity](v, Candela)
}

func Millicandelas(v float64) LuminousIntensity {
	return quantity.New[dimension.LuminousIntensity](v, Millicandela)
}

func Lumens(v float64) LuminousFlux { return quantity.New[dimension.LuminousFlux](v, Lumen) }

func Millilumens(v float64) LuminousFlux { return quantity.New[dimension.LuminousFlux](v, Millilumen) }

func Luxes(v float64) Illuminance { return quantity.New[dimension.Illuminance](v, Lux) }

func Footcandles(v float64) Illuminance { return quantity.New[dimension.Illuminance](v, Footcandle) }

func LumensPerSquareInch(v float64) Illuminance {
	return quantity.New[dimension.Illuminance](v, LumenPerSquareInch)
}
