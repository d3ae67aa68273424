package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	Current               = quantity.Quantity[dimension.Current]
	Charge                = quantity.Quantity[dimension.Charge]
	Voltage               = quantity.Quantity[dimension.Voltage]
	Capacitance           = quantity.Quantity[dimension.Capacitance]
	Impedance             = quantity.Quantity[dimension.Impedance]
	Conductance           = quantity.Quantity[dimension.Conductance]
	MagneticFlux          = quantity.Quantity[dimension.MagneticFlux]
	MagneticFieldStrength = quantity.Quantity[dimension.MagneticFieldStrength]
	Inductance            = quantity.Quantity[dimension.Inductance]
)

var (
	Ampere      = unit.New(dimension.Current{})
	Milliampere = unit.Milli(Ampere)
	Microampere = unit.Micro(Ampere)

	Coulomb         = unit.New(dimension.Charge{})
	AmpereHour      = unit.Compound(Ampere, Hour)
	MilliampereHour = unit.Milli(AmpereHour)

	Volt      = unit.New(dimension.Voltage{})
	Millivolt = unit.Milli(Volt)
	Kilovolt  = unit.Kilo(Volt)
	// CGS electrostatic and electromagnetic voltage units.
	Statvolt = unit.Derive(Volt, rational.New(299_792_458, 1_000_000))
	Abvolt   = unit.Derive(Volt, rational.New(1, 100_000_000))

	Farad      = unit.New(dimension.Capacitance{})
	Microfarad = unit.Micro(Farad)
	Picofarad  = unit.Pico(Farad)

	Ohm      = unit.New(dimension.Impedance{})
	Milliohm = unit.Milli(Ohm)
	Kiloohm  = unit.Kilo(Ohm)
	Megaohm  = unit.Mega(Ohm)

	Siemens      = unit.New(dimension.Conductance{})
	Millisiemens = unit.Milli(Siemens)

	Weber   = unit.New(dimension.MagneticFlux{})
	Maxwell = unit.Derive(Weber, rational.New(1, 100_000_000))

	Tesla     = unit.New(dimension.MagneticFieldStrength{})
	Nanotesla = unit.Nano(Tesla)
	Gauss     = unit.Derive(Tesla, rational.New(1, 10_000))

	Henry      = unit.New(dimension.Inductance{})
	Millihenry = unit.Milli(Henry)
	Microhenry = unit.Micro(Henry)
)

func Amperes(v float64) Current { return quantity.New[dimension.Current](v, Ampere) }

func Milliamperes(v float64) Current { return quantity.New[dimension.Current](v, Milliampere) }

func Microamperes(v float64) Current { return quantity.New[dimension.Current](v, Microampere) }

func Coulombs(v float64) Charge { return quantity.New[dimension.Charge](v, Coulomb) }

func AmpereHours(v float64) Charge { return quantity.New[dimension.Charge](v, AmpereHour) }

func MilliampereHours(v float64) Charge { return quantity.New[dimension.Charge](v, MilliampereHour) }

func Volts(v float64) Voltage { return quantity.New[dimension.Voltage](v, Volt) }

func Millivolts(v float64) Voltage { return quantity.New[dimension.Voltage](v, Millivolt) }

func Kilovolts(v float64) Voltage { return quantity.New[dimension.Voltage](v, Kilovolt) }

func Statvolts(v float64) Voltage { return quantity.New[dimension.Voltage](v, Statvolt) }

func Abvolts(v float64) Voltage { return quantity.New[dimension.Voltage](v, Abvolt) }

func Farads(v float64) Capacitance { return quantity.New[dimension.Capacitance](v, Farad) }

func Microfarads(v float64) Capacitance { return quantity.New[dimension.Capacitance](v, Microfarad) }

func Picofarads(v float64) Capacitance { return quantity.New[dimension.Capacitance](v, Picofarad) }

func Ohms(v float64) Impedance { return quantity.New[dimension.Impedance](v, Ohm) }

func Milliohms(v float64) Impedance { return quantity.New[dimension.Impedance](v, Milliohm) }

func Kiloohms(v float64) Impedance { return quantity.New[dimension.Impedance](v, Kiloohm) }

func Megaohms(v float64) Impedance { return quantity.New[dimension.Impedance](v, Megaohm) }

// Mhos constructs a conductance in siemens; the mho is the unit's historical
// name and pluralizes where "siemens" does not.
func Mhos(v float64) Conductance { return quantity.New[dimension.Conductance](v, Siemens) }

func Webers(v float64) MagneticFlux { return quantity.New[dimension.MagneticFlux](v, Weber) }

func Maxwells(v float64) MagneticFlux { return quantity.New[dimension.MagneticFlux](v, Maxwell) }

func Teslas(v float64) MagneticFieldStrength {
	return quantity.New[dimension.MagneticFieldStrength](v, Tesla)
}

func Nanoteslas(v float64) MagneticFieldStrength {
	return quantity.New[dimension.MagneticFieldStrength](v, Nanotesla)
}

func Gausses(v float64) MagneticFieldStrength {
	return quantity.New[dimension.MagneticFieldStrength](v, Gauss)
}

func Henries(v float64) Inductance { return quantity.New[dimension.Inductance](v, Henry) }

func Millihenries(v float64) Inductance { return quantity.New[dimension.Inductance](v, Millihenry) }

func Microhenries(v float64) Inductance { return quantity.New[dimension.Inductance](v, Microhenry) }
