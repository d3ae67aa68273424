package quantity

import (
	"math"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Level is a logarithmic (decibel) dimensioned value. The stored magnitude is
// linearized: constructing from v dB stores 10^(v/10), and Decibels reads
// back 10·log10 of the store. Arithmetic therefore multiplies and divides
// magnitudes where the dB domain adds and subtracts.
type Level[D dimension.Spec] struct {
	mag  float64
	unit unit.Unit
}

// NewLevel builds a level from a value in decibels relative to the given
// unit. The unit must measure D; a mismatch panics as in New.
func NewLevel[D dimension.Spec](decibels float64, u unit.Unit) Level[D] {
	var d D
	if u.Dim() != d.Vector() {
		panic("quantity: unit [" + u.String() + "] does not measure " + d.Vector().String())
	}

	return Level[D]{mag: math.Pow(10, decibels/10), unit: u}
}

// Decibels returns the level in the log domain.
func (l Level[D]) Decibels() float64 { return 10 * math.Log10(l.mag) }

// Magnitude returns the linearized store, e.g. 100 for a 20 dB level.
func (l Level[D]) Magnitude() float64 { return l.mag }

// Unit returns the level's unit descriptor.
func (l Level[D]) Unit() unit.Unit { return l.unit }

// Gain is a dimensionless level: a pure ratio expressed in dB, used as a
// gain or attenuation factor rather than a physical quantity in its own
// right.
type Gain = Level[dimension.Scalar]

// DB builds a dimensionless gain from a value in decibels.
func DB(decibels float64) Gain {
	return Gain{mag: math.Pow(10, decibels/10), unit: scalarUnit}
}

// Boost applies a gain: in the dB domain the values add, so the linearized
// magnitudes multiply. The gain is a pure ratio, so the level's descriptor is
// preserved.
func (l Level[D]) Boost(g Gain) Level[D] {
	return Level[D]{mag: l.mag * g.mag, unit: l.unit}
}

// Cut applies an attenuation: dB subtraction, magnitude division, descriptor
// preserved.
func (l Level[D]) Cut(g Gain) Level[D] {
	return Level[D]{mag: l.mag / g.mag, unit: l.unit}
}

// Combine adds two physical levels in the dB domain. Adding dB values means
// multiplying the underlying power ratios, so the physical dimensions compose
// as well: the result dimension P is the square of D, and the result unit is
// the square of the left operand's unit with the right operand converted
// first.
func Combine[P, D dimension.Spec](a, b Level[D]) Level[P] {
	out := Level[P]{
		mag:  a.mag * unit.MustConvert(b.mag, b.unit, a.unit),
		unit: unit.Squared(a.unit),
	}

	var p P
	if out.unit.Dim() != p.Vector() {
		panic("quantity: Combine result has dimension " + out.unit.Dim().String() +
			", type argument expects " + p.Vector().String())
	}

	return out
}

// Diff subtracts two levels of the same dimension in the dB domain. The
// underlying ratio of two like quantities is dimensionless, so the result is
// always a Gain; no type argument is needed.
func Diff[D dimension.Spec](a, b Level[D]) Gain {
	return Gain{
		mag:  a.mag / unit.MustConvert(b.mag, b.unit, a.unit),
		unit: scalarUnit,
	}
}
