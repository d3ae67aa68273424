// Package rational provides exact fractions over int64 for unit exponents and
// conversion factors.
//
// Core APIs include the comparable value type Rat, reducing arithmetic
// (Add, Sub, Mul, Div), and exact views (Float64, Decimal).
//
// Every operation returns a fraction in lowest terms with a positive
// denominator, so two equal fractions are equal with ==. Conversion factors
// built from Rat values never accumulate floating-point error; precision is
// only lost when a caller finally asks for a Float64.
package rational
