package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Scalar is a bare dimensionless quantity.
type Scalar = quantity.Quantity[dimension.Scalar]

// Gain is a dimensionless ratio carried in the decibel domain.
type Gain = quantity.Gain

var (
	// Unitless is the canonical dimensionless unit with conversion factor one.
	Unitless = unit.New(dimension.Scalar{})

	Percent = unit.Derive(Unitless, rational.New(1, 100))
)

func Scalars(v float64) Scalar { return quantity.FromFloat(v) }

func Percents(v float64) Scalar { return quantity.New[dimension.Scalar](v, Percent) }

// DB builds a dimensionless gain from a value in decibels.
func DB(decibels float64) Gain { return quantity.DB(decibels) }
