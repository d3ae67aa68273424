package quantity

import (
	"math"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Quantity is a linear dimensioned value: a raw magnitude expressed in its
// own unit, tagged at the type level with the physical dimension D.
type Quantity[D dimension.Spec] struct {
	value float64
	unit  unit.Unit
}

// New wraps a raw magnitude in the given unit. The unit must measure the
// dimension D; a mismatch is a programmer error and panics. Catalog
// constructors (units.Meters, units.Seconds, ...) pair tag and unit correctly
// by construction, so user code normally never sees the check.
func New[D dimension.Spec](value float64, u unit.Unit) Quantity[D] {
	var d D
	if u.Dim() != d.Vector() {
		panic("quantity: unit [" + u.String() + "] does not measure " + d.Vector().String())
	}

	return Quantity[D]{value: value, unit: u}
}

// Value returns the raw magnitude in the quantity's own unit.
func (q Quantity[D]) Value() float64 { return q.value }

// Unit returns the quantity's unit descriptor.
func (q Quantity[D]) Unit() unit.Unit { return q.unit }

// In returns the magnitude converted to the target unit, which must measure
// the same dimension.
func (q Quantity[D]) In(target unit.Unit) float64 {
	return unit.MustConvert(q.value, q.unit, target)
}

// To returns the same physical value re-expressed in the target unit.
func (q Quantity[D]) To(target unit.Unit) Quantity[D] {
	return Quantity[D]{value: q.In(target), unit: target}
}

// Add returns q + r with the right operand converted to q's unit first.
// The result keeps the left operand's unit.
func (q Quantity[D]) Add(r Quantity[D]) Quantity[D] {
	return Quantity[D]{value: q.value + r.In(q.unit), unit: q.unit}
}

// Sub returns q − r with the right operand converted to q's unit first.
func (q Quantity[D]) Sub(r Quantity[D]) Quantity[D] {
	return Quantity[D]{value: q.value - r.In(q.unit), unit: q.unit}
}

// Neg returns the negated quantity.
func (q Quantity[D]) Neg() Quantity[D] {
	return Quantity[D]{value: -q.value, unit: q.unit}
}

// Abs returns the quantity with a non-negative magnitude.
func (q Quantity[D]) Abs() Quantity[D] {
	return Quantity[D]{value: math.Abs(q.value), unit: q.unit}
}

// Scale returns the quantity with its magnitude multiplied by the bare
// factor k. The unit is unchanged: scaling by a number never changes physics.
func (q Quantity[D]) Scale(k float64) Quantity[D] {
	return Quantity[D]{value: q.value * k, unit: q.unit}
}

// DivScale returns the quantity with its magnitude divided by k.
func (q Quantity[D]) DivScale(k float64) Quantity[D] {
	return Quantity[D]{value: q.value / k, unit: q.unit}
}

// Ratio returns q ÷ r as a bare number. Division of two same-dimension
// quantities is the only operation that collapses to dimensionless.
func (q Quantity[D]) Ratio(r Quantity[D]) float64 {
	return q.value / r.In(q.unit)
}

// Cmp compares q and r after converting r to q's unit, returning -1, 0, or
// +1. NaN magnitudes compare as unordered and return 0.
func (q Quantity[D]) Cmp(r Quantity[D]) int {
	rhs := r.In(q.unit)

	switch {
	case q.value < rhs:
		return -1
	case q.value > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether the two quantities have the same physical value.
func (q Quantity[D]) Equal(r Quantity[D]) bool { return q.value == r.In(q.unit) }

// Less reports whether q is strictly below r.
func (q Quantity[D]) Less(r Quantity[D]) bool { return q.value < r.In(q.unit) }

// LessEq reports whether q is at most r.
func (q Quantity[D]) LessEq(r Quantity[D]) bool { return q.value <= r.In(q.unit) }

// Greater reports whether q is strictly above r.
func (q Quantity[D]) Greater(r Quantity[D]) bool { return q.value > r.In(q.unit) }

// GreaterEq reports whether q is at least r.
func (q Quantity[D]) GreaterEq(r Quantity[D]) bool { return q.value >= r.In(q.unit) }

// Min returns the smaller of q and r, expressed in q's unit.
func (q Quantity[D]) Min(r Quantity[D]) Quantity[D] {
	if rhs := r.In(q.unit); rhs < q.value {
		return Quantity[D]{value: rhs, unit: q.unit}
	}

	return q
}

// Max returns the larger of q and r, expressed in q's unit.
func (q Quantity[D]) Max(r Quantity[D]) Quantity[D] {
	if rhs := r.In(q.unit); rhs > q.value {
		return Quantity[D]{value: rhs, unit: q.unit}
	}

	return q
}

// scalarUnit is the canonical dimensionless descriptor: ratio 1, no π, no
// offset.
var scalarUnit = unit.New(dimension.Scalar{})

// FromFloat wraps a bare number as a dimensionless quantity. This and Float
// are the only bridges between numbers and quantities; the restriction to the
// scalar dimension guards against silently constructing, say, a length from a
// bare 3.0.
func FromFloat(value float64) Quantity[dimension.Scalar] {
	return Quantity[dimension.Scalar]{value: value, unit: scalarUnit}
}

// Float collapses a dimensionless quantity to a bare number, converting
// through the canonical scalar descriptor so that scaled or π-carrying
// dimensionless units (percent, the constant π) evaluate correctly.
func Float(q Quantity[dimension.Scalar]) float64 {
	return q.In(scalarUnit)
}
