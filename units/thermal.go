package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Temperature is an absolute temperature quantity. The non-kelvin scales
// carry affine offsets in their descriptors, so conversions and comparisons
// account for the shifted zero points.
type Temperature = quantity.Quantity[dimension.Temperature]

var (
	Kelvin  = unit.New(dimension.Temperature{})
	Celsius = unit.DeriveWith(Kelvin, rational.One, rational.Zero, rational.New(27315, 100))
	// °F relates to °C by a 5/9 slope and a -160/9 shift (32 °F is 0 °C).
	Fahrenheit = unit.DeriveWith(Celsius, rational.New(5, 9), rational.Zero, rational.New(-160, 9))
	Rankine    = unit.Derive(Kelvin, rational.New(5, 9))
	Reaumur    = unit.Derive(Celsius, rational.New(10, 8))
)

func Kelvins(v float64) Temperature { return quantity.New[dimension.Temperature](v, Kelvin) }

func DegreesCelsius(v float64) Temperature { return quantity.New[dimension.Temperature](v, Celsius) }

func DegreesFahrenheit(v float64) Temperature {
	return quantity.New[dimension.Temperature](v, Fahrenheit)
}

func DegreesRankine(v float64) Temperature { return quantity.New[dimension.Temperature](v, Rankine) }

func DegreesReaumur(v float64) Temperature { return quantity.New[dimension.Temperature](v, Reaumur) }
