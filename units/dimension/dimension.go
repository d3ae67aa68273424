package dimension

import (
	"strings"

	"github.com/LerianStudio/lib-units/v2/units/rational"
)

// Size is the arity of the dimension basis.
const Size = 8

// Slot indices into a Vector, fixed by convention.
const (
	SlotLength = iota
	SlotMass
	SlotTime
	SlotAngle
	SlotCurrent
	SlotTemperature
	SlotSubstance
	SlotLuminousIntensity
)

// symbols are the SI reference symbols per slot, used only for diagnostics.
var symbols = [Size]string{"m", "kg", "s", "rad", "A", "K", "mol", "cd"}

// Vector is an ordered 8-tuple of rational exponents, one per base quantity.
// The zero value is the scalar (dimensionless) vector. Vector is comparable;
// == answers "same dimension".
type Vector [Size]rational.Rat

// FromInts builds a Vector from integer exponents in slot order.
func FromInts(length, mass, time, angle, current, temperature, substance, luminousIntensity int64) Vector {
	return Vector{
		rational.FromInt(length),
		rational.FromInt(mass),
		rational.FromInt(time),
		rational.FromInt(angle),
		rational.FromInt(current),
		rational.FromInt(temperature),
		rational.FromInt(substance),
		rational.FromInt(luminousIntensity),
	}
}

// Mul returns the element-wise exponent sum. Multiplying two quantities adds
// their dimensions.
func (v Vector) Mul(w Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Add(w[i])
	}

	return out
}

// Div returns the element-wise exponent difference.
func (v Vector) Div(w Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}

	return out
}

// Invert returns the element-wise negation. The inverse of a velocity
// dimension is a pace dimension, and so on.
func (v Vector) Invert() Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Neg()
	}

	return out
}

// Pow returns the vector scaled element-wise by the integer n.
func (v Vector) Pow(n int64) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].MulInt(n)
	}

	return out
}

// IsScalar reports whether every exponent is zero.
func (v Vector) IsScalar() bool {
	return v == Vector{}
}

// String renders the vector for diagnostics, e.g. "m·s^-2" or "scalar".
func (v Vector) String() string {
	var b strings.Builder

	for i, exp := range v {
		if exp.IsZero() {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("·")
		}

		b.WriteString(symbols[i])

		if exp != rational.One {
			b.WriteString("^")
			b.WriteString(exp.String())
		}
	}

	if b.Len() == 0 {
		return "scalar"
	}

	return b.String()
}
