package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Length is a quantity of linear extent.
type Length = quantity.Quantity[dimension.Length]

var (
	Meter      = unit.New(dimension.Length{})
	Nanometer  = unit.Nano(Meter)
	Micrometer = unit.Micro(Meter)
	Millimeter = unit.Milli(Meter)
	Centimeter = unit.Centi(Meter)
	Kilometer  = unit.Kilo(Meter)

	// The international foot, exactly 0.3048 m.
	Foot = unit.Derive(Meter, rational.New(381, 1250))
	Inch = unit.Derive(Foot, rational.New(1, 12))
	Mil  = unit.Derive(Inch, rational.New(1, 1000))
	Yard = unit.Derive(Foot, rational.FromInt(3))
	Mile = unit.Derive(Foot, rational.FromInt(5280))

	Fathom  = unit.Derive(Foot, rational.FromInt(6))
	Chain   = unit.Derive(Foot, rational.FromInt(66))
	Furlong = unit.Derive(Chain, rational.FromInt(10))
	Hand    = unit.Derive(Inch, rational.FromInt(4))
	Cubit   = unit.Derive(Inch, rational.FromInt(18))

	NauticalMile   = unit.Derive(Meter, rational.FromInt(1852))
	League         = unit.Derive(Mile, rational.FromInt(3))
	NauticalLeague = unit.Derive(NauticalMile, rational.FromInt(3))

	Angstrom         = unit.Derive(Nanometer, rational.New(1, 10))
	AstronomicalUnit = unit.Derive(Meter, rational.FromInt(149_597_870_700))
	Lightyear        = unit.Derive(Meter, rational.FromInt(9_460_730_472_580_800))
	// One parsec is 648000/π astronomical units.
	Parsec = unit.DeriveWith(AstronomicalUnit, rational.FromInt(648_000), rational.FromInt(-1), rational.Zero)
)

func Meters(v float64) Length { return quantity.New[dimension.Length](v, Meter) }

func Nanometers(v float64) Length { return quantity.New[dimension.Length](v, Nanometer) }

func Micrometers(v float64) Length { return quantity.New[dimension.Length](v, Micrometer) }

func Millimeters(v float64) Length { return quantity.New[dimension.Length](v, Millimeter) }

func Centimeters(v float64) Length { return quantity.New[dimension.Length](v, Centimeter) }

func Kilometers(v float64) Length { return quantity.New[dimension.Length](v, Kilometer) }

func Feet(v float64) Length { return quantity.New[dimension.Length](v, Foot) }

func Inches(v float64) Length { return quantity.New[dimension.Length](v, Inch) }

func Mils(v float64) Length { return quantity.New[dimension.Length](v, Mil) }

func Yards(v float64) Length { return quantity.New[dimension.Length](v, Yard) }

func Miles(v float64) Length { return quantity.New[dimension.Length](v, Mile) }

func Fathoms(v float64) Length { return quantity.New[dimension.Length](v, Fathom) }

func Chains(v float64) Length { return quantity.New[dimension.Length](v, Chain) }

func Furlongs(v float64) Length { return quantity.New[dimension.Length](v, Furlong) }

func Hands(v float64) Length { return quantity.New[dimension.Length](v, Hand) }

func Cubits(v float64) Length { return quantity.New[dimension.Length](v, Cubit) }

func NauticalMiles(v float64) Length { return quantity.New[dimension.Length](v, NauticalMile) }

func Leagues(v float64) Length { return quantity.New[dimension.Length](v, League) }

func NauticalLeagues(v float64) Length { return quantity.New[dimension.Length](v, NauticalLeague) }

func Angstroms(v float64) Length { return quantity.New[dimension.Length](v, Angstrom) }

func AstronomicalUnits(v float64) Length { return quantity.New[dimension.Length](v, AstronomicalUnit) }

func Lightyears(v float64) Length { return quantity.New[dimension.Length](v, Lightyear) }

func Parsecs(v float64) Length { return quantity.New[dimension.Length](v, Parsec) }
