package unit

import "strconv"

// Mul returns the product descriptor: ratios multiply, dimensions add, pi
// exponents add. The translation is always zero: a unit formed by
// multiplication is never an offset unit, offsets exist only on directly
// defined units such as temperature scales.
func Mul(a, b Unit) Unit {
	return Unit{
		ratio: a.ratio.Mul(b.ratio),
		dim:   a.dim.Mul(b.dim),
		piExp: a.piExp.Add(b.piExp),
	}
}

// Div returns the quotient descriptor: ratios divide, dimensions subtract, pi
// exponents subtract, translation zero.
func Div(a, b Unit) Unit {
	return Unit{
		ratio: a.ratio.Div(b.ratio),
		dim:   a.dim.Div(b.dim),
		piExp: a.piExp.Sub(b.piExp),
	}
}

// Invert returns the reciprocal descriptor. An inverted unit represents a
// rate, so any datum offset is dropped.
func Invert(u Unit) Unit {
	return Unit{
		ratio: u.ratio.Inv(),
		dim:   u.dim.Invert(),
		piExp: u.piExp.Neg(),
	}
}

// Squared returns u × u.
func Squared(u Unit) Unit {
	return Mul(u, u)
}

// Cubed returns u × u × u.
func Cubed(u Unit) Unit {
	return Mul(u, Squared(u))
}

// Compound left-folds pairwise multiplication over the given descriptors.
// Compound(a) is a; Compound(a, b, c) is (a×b)×c.
func Compound(first Unit, rest ...Unit) Unit {
	out := first
	for _, u := range rest {
		out = Mul(out, u)
	}

	return out
}

// Pow returns u raised to the integer power n by repeated multiplication.
// It panics if n < 1.
func Pow(u Unit, n int) Unit {
	if n < 1 {
		panic("unit: Pow requires exponent >= 1, got " + strconv.Itoa(n))
	}

	out := u
	for i := 1; i < n; i++ {
		out = Mul(out, u)
	}

	return out
}
