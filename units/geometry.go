package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	Area   = quantity.Quantity[dimension.Area]
	Volume = quantity.Quantity[dimension.Volume]
)

var (
	SquareMeter     = unit.New(dimension.Area{})
	SquareKilometer = unit.Squared(Kilometer)
	SquareFoot      = unit.Squared(Foot)
	SquareInch      = unit.Squared(Inch)
	SquareMile      = unit.Squared(Mile)
	Hectare         = unit.Derive(SquareMeter, rational.FromInt(10_000))
	Acre            = unit.Derive(SquareFoot, rational.FromInt(43_560))

	CubicMeter = unit.New(dimension.Volume{})
	Liter      = unit.Derive(CubicMeter, rational.New(1, 1000))
	Milliliter = unit.Milli(Liter)
	CubicFoot  = unit.Cubed(Foot)
	CubicInch  = unit.Cubed(Inch)
	// The US liquid gallon, exactly 231 cubic inches.
	Gallon     = unit.Derive(CubicInch, rational.FromInt(231))
	Quart      = unit.Derive(Gallon, rational.New(1, 4))
	Pint       = unit.Derive(Quart, rational.New(1, 2))
	Cup        = unit.Derive(Pint, rational.New(1, 2))
	FluidOunce = unit.Derive(Cup, rational.New(1, 8))
)

func SquareMeters(v float64) Area { return quantity.New[dimension.Area](v, SquareMeter) }

func SquareKilometers(v float64) Area { return quantity.New[dimension.Area](v, SquareKilometer) }

func SquareFeet(v float64) Area { return quantity.New[dimension.Area](v, SquareFoot) }

func SquareInches(v float64) Area { return quantity.New[dimension.Area](v, SquareInch) }

func SquareMiles(v float64) Area { return quantity.New[dimension.Area](v, SquareMile) }

func Hectares(v float64) Area { return quantity.New[dimension.Area](v, Hectare) }

func Acres(v float64) Area { return quantity.New[dimension.Area](v, Acre) }

func CubicMeters(v float64) Volume { return quantity.New[dimension.Volume](v, CubicMeter) }

func Liters(v float64) Volume { return quantity.New[dimension.Volume](v, Liter) }

func Milliliters(v float64) Volume { return quantity.New[dimension.Volume](v, Milliliter) }

func CubicFeet(v float64) Volume { return quantity.New[dimension.Volume](v, CubicFoot) }

func CubicInches(v float64) Volume { return quantity.New[dimension.Volume](v, CubicInch) }

func Gallons(v float64) Volume { return quantity.New[dimension.Volume](v, Gallon) }

func Quarts(v float64) Volume { return quantity.New[dimension.Volume](v, Quart) }

func Pints(v float64) Volume { return quantity.New[dimension.Volume](v, Pint) }

func Cups(v float64) Volume { return quantity.New[dimension.Volume](v, Cup) }

func FluidOunces(v float64) Volume { return quantity.New[dimension.Volume](v, FluidOunce) }
