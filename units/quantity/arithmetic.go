package quantity

import (
	"math"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Mul returns a × b as a quantity of dimension P.
//
// When the operands share a resolved dimension the right operand is converted
// to the left operand's unit and the result unit is the square of the left
// operand's: 3 m × 4 m is 12 m², not a scalar 12. Otherwise the result unit
// is the compound of both operand units and the raw magnitudes multiply.
//
// P must name the product dimension; a wrong argument panics at the call.
func Mul[P, A, B dimension.Spec](a Quantity[A], b Quantity[B]) Quantity[P] {
	var va A
	var vb B

	var out Quantity[P]
	if va.Vector() == vb.Vector() {
		out = Quantity[P]{value: a.value * b.In(a.unit), unit: unit.Squared(a.unit)}
	} else {
		out = Quantity[P]{value: a.value * b.value, unit: unit.Mul(a.unit, b.unit)}
	}

	checkResult[P]("Mul", out.unit)

	return out
}

// Div returns a ÷ b as a quantity of dimension P.
//
// Same-dimension operands collapse to the canonical unit of P, which must be
// a dimensionless category, with the right operand converted first; otherwise
// the result unit compounds the left unit with the inverse of the right.
func Div[P, A, B dimension.Spec](a Quantity[A], b Quantity[B]) Quantity[P] {
	var va A
	var vb B
	var p P

	var out Quantity[P]
	if va.Vector() == vb.Vector() {
		// unit.New(p) always measures P, so the collapse must be checked
		// against the scalar vector here, not by checkResult.
		if !p.Vector().IsScalar() {
			panic("quantity: Div of same-dimension operands is dimensionless, type argument expects " +
				p.Vector().String())
		}

		out = Quantity[P]{value: a.value / b.In(a.unit), unit: unit.New(p)}
	} else {
		out = Quantity[P]{value: a.value / b.value, unit: unit.Mul(a.unit, unit.Invert(b.unit))}
	}

	checkResult[P]("Div", out.unit)

	return out
}

// Pow returns q raised to the integer power n ≥ 1 as a quantity of dimension
// P. The magnitude uses real-valued exponentiation, not repeated
// multiplication.
func Pow[P, A dimension.Spec](q Quantity[A], n int) Quantity[P] {
	out := Quantity[P]{value: math.Pow(q.value, float64(n)), unit: unit.Pow(q.unit, n)}

	checkResult[P]("Pow", out.unit)

	return out
}

// Reciprocal returns k ÷ q as a quantity of the inverted dimension P; a bare
// number divided by a frequency is a period, and so on.
func Reciprocal[P, A dimension.Spec](k float64, q Quantity[A]) Quantity[P] {
	out := Quantity[P]{value: k / q.value, unit: unit.Invert(q.unit)}

	checkResult[P]("Reciprocal", out.unit)

	return out
}

// checkResult verifies that the computed unit measures the requested result
// dimension. The failure is a programmer error at the call site (wrong type
// argument), so it panics with the two dimensions spelled out.
func checkResult[P dimension.Spec](op string, u unit.Unit) {
	var p P
	if u.Dim() != p.Vector() {
		panic("quantity: " + op + " result has dimension " + u.Dim().String() +
			", type argument expects " + p.Vector().String())
	}
}
