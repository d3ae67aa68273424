package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	Force    = quantity.Quantity[dimension.Force]
	Pressure = quantity.Quantity[dimension.Pressure]

	// Torque shares the energy dimension vector but is a distinct category:
	// a Torque never assigns to an Energy or vice versa.
	Torque = quantity.Quantity[dimension.Torque]
)

var (
	Newton     = unit.New(dimension.Force{})
	Kilonewton = unit.Kilo(Newton)
	Dyne       = unit.Derive(Newton, rational.New(1, 100_000))
	Kilopond   = unit.Compound(StandardGravity, Kilogram)
	Poundal    = unit.Compound(Pound, Foot, unit.Invert(unit.Squared(Second)))
	PoundForce = unit.Compound(Slug, Foot, unit.Invert(unit.Squared(Second)))

	Pascal     = unit.New(dimension.Pressure{})
	Kilopascal = unit.Kilo(Pascal)
	Bar        = unit.Derive(Pascal, rational.FromInt(100_000))
	Millibar   = unit.Milli(Bar)
	Atmosphere = unit.Derive(Pascal, rational.FromInt(101_325))
	Torr       = unit.Derive(Atmosphere, rational.New(1, 760))
	PSI        = unit.Compound(PoundForce, unit.Invert(unit.Squared(Inch)))

	NewtonMeter = unit.Compound(Newton, Meter)
	// The gravitational metric torque unit, kilopond-meter.
	MeterKilopond = unit.Compound(Kilopond, Meter)
)

func Newtons(v float64) Force { return quantity.New[dimension.Force](v, Newton) }

func Kilonewtons(v float64) Force { return quantity.New[dimension.Force](v, Kilonewton) }

func Dynes(v float64) Force { return quantity.New[dimension.Force](v, Dyne) }

func Kiloponds(v float64) Force { return quantity.New[dimension.Force](v, Kilopond) }

func Poundals(v float64) Force { return quantity.New[dimension.Force](v, Poundal) }

func PoundsForce(v float64) Force { return quantity.New[dimension.Force](v, PoundForce) }

func Pascals(v float64) Pressure { return quantity.New[dimension.Pressure](v, Pascal) }

func Kilopascals(v float64) Pressure { return quantity.New[dimension.Pressure](v, Kilopascal) }

func Bars(v float64) Pressure { return quantity.New[dimension.Pressure](v, Bar) }

func Millibars(v float64) Pressure { return quantity.New[dimension.Pressure](v, Millibar) }

func Atmospheres(v float64) Pressure { return quantity.New[dimension.Pressure](v, Atmosphere) }

func Torrs(v float64) Pressure { return quantity.New[dimension.Pressure](v, Torr) }

func PoundsPerSquareInch(v float64) Pressure { return quantity.New[dimension.Pressure](v, PSI) }

func NewtonMeters(v float64) Torque { return quantity.New[dimension.Torque](v, NewtonMeter) }

func MeterKiloponds(v float64) Torque { return quantity.New[dimension.Torque](v, MeterKilopond) }
