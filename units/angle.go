package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Angle is a planar angle quantity.
type Angle = quantity.Quantity[dimension.Angle]

// SolidAngle is a three-dimensional angular extent.
type SolidAngle = quantity.Quantity[dimension.SolidAngle]

var (
	Radian      = unit.New(dimension.Angle{})
	Milliradian = unit.Milli(Radian)

	// One degree is π/180 radians; the π factor rides in the descriptor's
	// exponent, so degree-to-degree work stays exact.
	Degree    = unit.DeriveWith(Radian, rational.New(1, 180), rational.One, rational.Zero)
	ArcMinute = unit.Derive(Degree, rational.New(1, 60))
	ArcSecond = unit.Derive(ArcMinute, rational.New(1, 60))
	Turn      = unit.DeriveWith(Radian, rational.FromInt(2), rational.One, rational.Zero)
	Gradian   = unit.Derive(Turn, rational.New(1, 400))
	// The NATO angular mil, 1/6400 of a full turn.
	AngularMil = unit.Derive(Turn, rational.New(1, 6400))

	Steradian    = unit.New(dimension.SolidAngle{})
	SquareDegree = unit.Squared(Degree)
	// The full sphere, 4π steradians.
	Spat = unit.DeriveWith(Steradian, rational.FromInt(4), rational.One, rational.Zero)
)

func Radians(v float64) Angle { return quantity.New[dimension.Angle](v, Radian) }

func Milliradians(v float64) Angle { return quantity.New[dimension.Angle](v, Milliradian) }

func Degrees(v float64) Angle { return quantity.New[dimension.Angle](v, Degree) }

func ArcMinutes(v float64) Angle { return quantity.New[dimension.Angle](v, ArcMinute) }

func ArcSeconds(v float64) Angle { return quantity.New[dimension.Angle](v, ArcSecond) }

func Turns(v float64) Angle { return quantity.New[dimension.Angle](v, Turn) }

func Gradians(v float64) Angle { return quantity.New[dimension.Angle](v, Gradian) }

func AngularMils(v float64) Angle { return quantity.New[dimension.Angle](v, AngularMil) }

func Steradians(v float64) SolidAngle { return quantity.New[dimension.SolidAngle](v, Steradian) }

func SquareDegrees(v float64) SolidAngle { return quantity.New[dimension.SolidAngle](v, SquareDegree) }

func Spats(v float64) SolidAngle { return quantity.New[dimension.SolidAngle](v, Spat) }
