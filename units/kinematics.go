package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

type (
	Frequency    = quantity.Quantity[dimension.Frequency]
	Velocity     = quantity.Quantity[dimension.Velocity]
	Acceleration = quantity.Quantity[dimension.Acceleration]
)

var (
	Hertz     = unit.New(dimension.Frequency{})
	Kilohertz = unit.Kilo(Hertz)
	Megahertz = unit.Mega(Hertz)
	Gigahertz = unit.Giga(Hertz)

	MeterPerSecond   = unit.New(dimension.Velocity{})
	FootPerSecond    = unit.Compound(Foot, unit.Invert(Second))
	KilometerPerHour = unit.Compound(Kilometer, unit.Invert(Hour))
	MilePerHour      = unit.Compound(Mile, unit.Invert(Hour))
	Knot             = unit.Compound(NauticalMile, unit.Invert(Hour))

	MeterPerSecondSquared = unit.New(dimension.Acceleration{})
	FootPerSecondSquared  = unit.Compound(Foot, unit.Invert(unit.Squared(Second)))
	// Standard gravity, exactly 9.80665 m/s².
	StandardGravity = unit.Derive(MeterPerSecondSquared, rational.New(980_665, 100_000))
)

// PerSecond constructs a frequency in hertz; "hertz" has no distinct plural
// to name a constructor after.
func PerSecond(v float64) Frequency { return quantity.New[dimension.Frequency](v, Hertz) }

func MetersPerSecond(v float64) Velocity {
	return quantity.New[dimension.Velocity](v, MeterPerSecond)
}

func FeetPerSecond(v float64) Velocity { return quantity.New[dimension.Velocity](v, FootPerSecond) }

func KilometersPerHour(v float64) Velocity {
	return quantity.New[dimension.Velocity](v, KilometerPerHour)
}

func MilesPerHour(v float64) Velocity { return quantity.New[dimension.Velocity](v, MilePerHour) }

func Knots(v float64) Velocity { return quantity.New[dimension.Velocity](v, Knot) }

func MetersPerSecondSquared(v float64) Acceleration {
	return quantity.New[dimension.Acceleration](v, MeterPerSecondSquared)
}

func FeetPerSecondSquared(v float64) Acceleration {
	return quantity.New[dimension.Acceleration](v, FootPerSecondSquared)
}

func StandardGravities(v float64) Acceleration {
	return quantity.New[dimension.Acceleration](v, StandardGravity)
}
