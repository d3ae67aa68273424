package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	Energy = quantity.Quantity[dimension.Energy]
	Power  = quantity.Quantity[dimension.Power]

	// PowerLevel is a power carried in the decibel domain, e.g. dBW or dBm.
	PowerLevel = quantity.Level[dimension.Power]
)

var (
	Joule     = unit.New(dimension.Energy{})
	Kilojoule = unit.Kilo(Joule)
	Megajoule = unit.Mega(Joule)

	// The thermochemical calorie, exactly 4.184 J.
	Calorie      = unit.Derive(Joule, rational.New(4184, 1000))
	Kilocalorie  = unit.Kilo(Calorie)
	WattHour     = unit.Compound(Watt, Hour)
	KilowattHour = unit.Kilo(WattHour)
	// The international table BTU, exactly 1055.05585262 J.
	BTU       = unit.Derive(Joule, rational.New(105_505_585_262, 100_000_000))
	Therm     = unit.Derive(BTU, rational.FromInt(100_000))
	FootPound = unit.Compound(PoundForce, Foot)

	Watt      = unit.New(dimension.Power{})
	Milliwatt = unit.Milli(Watt)
	Kilowatt  = unit.Kilo(Watt)
	Megawatt  = unit.Mega(Watt)
	Gigawatt  = unit.Giga(Watt)
	// The mechanical horsepower, exactly 745.7 W.
	Horsepower = unit.Derive(Watt, rational.New(7457, 10))
)

func Joules(v float64) Energy { return quantity.New[dimension.Energy](v, Joule) }

func Kilojoules(v float64) Energy { return quantity.New[dimension.Energy](v, Kilojoule) }

func Megajoules(v float64) Energy { return quantity.New[dimension.Energy](v, Megajoule) }

func Calories(v float64) Energy { return quantity.New[dimension.Energy](v, Calorie) }

func Kilocalories(v float64) Energy { return quantity.New[dimension.Energy](v, Kilocalorie) }

func WattHours(v float64) Energy { return quantity.New[dimension.Energy](v, WattHour) }

func KilowattHours(v float64) Energy { return quantity.New[dimension.Energy](v, KilowattHour) }

func BTUs(v float64) Energy { return quantity.New[dimension.Energy](v, BTU) }

func Therms(v float64) Energy { return quantity.New[dimension.Energy](v, Therm) }

func FootPounds(v float64) Energy { return quantity.New[dimension.Energy](v, FootPound) }

func Watts(v float64) Power { return quantity.New[dimension.Power](v, Watt) }

func Milliwatts(v float64) Power { return quantity.New[dimension.Power](v, Milliwatt) }

func Kilowatts(v float64) Power { return quantity.New[dimension.Power](v, Kilowatt) }

func Megawatts(v float64) Power { return quantity.New[dimension.Power](v, Megawatt) }

func Gigawatts(v float64) Power { return quantity.New[dimension.Power](v, Gigawatt) }

func Horsepowers(v float64) Power { return quantity.New[dimension.Power](v, Horsepower) }

// DBWatts constructs a power level in decibel-watts.
func DBWatts(decibels float64) PowerLevel {
	return quantity.NewLevel[dimension.Power](decibels, Watt)
}

// DBMilliwatts constructs a power level in decibel-milliwatts (dBm).
func DBMilliwatts(decibels float64) PowerLevel {
	return quantity.NewLevel[dimension.Power](decibels, Milliwatt)
}
