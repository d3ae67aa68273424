package rational

import (
	"math/bits"
	"strconv"

	"github.com/shopspring/decimal"
)

// Rat is an exact fraction over int64, always held in lowest terms with a
// positive denominator. The canonical form makes Rat comparable: two equal
// fractions are equal with ==, so Rat can key maps and fill arrays.
//
// The denominator is stored minus one so that the zero value of Rat is 0/1.
type Rat struct {
	num  int64
	den1 int64
}

// Zero is the fraction 0/1. It is also the zero value of Rat.
var Zero = Rat{}

// One is the fraction 1/1.
var One = Rat{num: 1}

// New returns the reduced fraction num/den.
// It panics if den is zero; a zero denominator is a programmer error on the
// same footing as an out-of-range array index.
func New(num, den int64) Rat {
	if den == 0 {
		panic("rational: zero denominator")
	}

	return reduce(num, den)
}

// FromInt returns the fraction n/1.
func FromInt(n int64) Rat {
	return Rat{num: n}
}

// Num returns the numerator. Negative fractions carry the sign here.
func (r Rat) Num() int64 { return r.num }

// Den returns the denominator, always positive.
func (r Rat) Den() int64 { return r.den1 + 1 }

// IsZero reports whether r is zero.
func (r Rat) IsZero() bool { return r.num == 0 }

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and s represent the same fraction.
// Because both are canonical this is the same as r == s.
func (r Rat) Equal(s Rat) bool { return r == s }

// Cmp compares r and s, returning -1 if r < s, 0 if equal, +1 if r > s.
// The cross products are formed in 128 bits, so Cmp is total: it never
// overflows, even where Sub on the same operands would panic.
func (r Rat) Cmp(s Rat) int {
	if r == s {
		return 0
	}

	if r.Sign() != s.Sign() {
		if r.Sign() < s.Sign() {
			return -1
		}

		return 1
	}

	// Same sign and not equal: order by |r.num|·den(s) vs |s.num|·den(r),
	// flipping for negatives. Canonical form rules out equal cross products.
	lhsHi, lhsLo := bits.Mul64(uint64(abs(r.num)), uint64(s.Den()))
	rhsHi, rhsLo := bits.Mul64(uint64(abs(s.num)), uint64(r.Den()))

	out := 1
	if lhsHi < rhsHi || (lhsHi == rhsHi && lhsLo < rhsLo) {
		out = -1
	}

	if r.Sign() < 0 {
		out = -out
	}

	return out
}

// Add returns r + s in lowest terms.
func (r Rat) Add(s Rat) Rat {
	// Reduce through gcd(den, den) first so intermediates stay small.
	g := gcd(r.Den(), s.Den())
	lhs := mulChecked(r.num, s.Den()/g)
	rhs := mulChecked(s.num, r.Den()/g)

	return reduce(addChecked(lhs, rhs), mulChecked(r.Den(), s.Den()/g))
}

// Sub returns r - s in lowest terms.
func (r Rat) Sub(s Rat) Rat {
	return r.Add(s.Neg())
}

// Mul returns r × s in lowest terms.
func (r Rat) Mul(s Rat) Rat {
	// Cross-reduce before multiplying to delay overflow.
	g1 := gcd(abs(r.num), s.Den())
	g2 := gcd(abs(s.num), r.Den())

	num := mulChecked(r.num/g1, s.num/g2)
	den := mulChecked(r.Den()/g2, s.Den()/g1)

	return reduce(num, den)
}

// Div returns r ÷ s in lowest terms.
// It panics if s is zero.
func (r Rat) Div(s Rat) Rat {
	return r.Mul(s.Inv())
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: -r.num, den1: r.den1}
}

// Inv returns the reciprocal of r.
// It panics if r is zero.
func (r Rat) Inv() Rat {
	if r.num == 0 {
		panic("rational: inverse of zero")
	}

	return reduce(r.Den(), r.num)
}

// MulInt returns r scaled by the integer n, in lowest terms.
func (r Rat) MulInt(n int64) Rat {
	return r.Mul(FromInt(n))
}

// Float64 returns the fraction evaluated in double precision.
// This is the only lossy view of a Rat.
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// Decimal returns the fraction as a shopspring decimal, dividing at the
// package's configured precision. Terminating fractions are exact.
func (r Rat) Decimal() decimal.Decimal {
	return decimal.NewFromInt(r.num).Div(decimal.NewFromInt(r.Den()))
}

// String renders the fraction as "num/den", or just "num" for integers.
func (r Rat) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// reduce canonicalizes num/den: lowest terms, positive denominator.
func reduce(num, den int64) Rat {
	if den < 0 {
		num, den = -num, -den
	}

	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}

	return Rat{num: num, den1: den - 1}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

func mulChecked(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}

	res := a * b
	if res/b != a {
		panic("rational: int64 overflow in multiplication")
	}

	return res
}

func addChecked(a, b int64) int64 {
	res := a + b
	if (b > 0 && res < a) || (b < 0 && res > a) {
		panic("rational: int64 overflow in addition")
	}

	return res
}
