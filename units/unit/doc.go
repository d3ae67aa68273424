// Package unit defines unit descriptors and the algebra and conversions over
// them.
//
// Core APIs:
//   - Unit: a resolved (conversion ratio, dimension, pi exponent, translation)
//     descriptor relating a concrete unit to its SI reference.
//   - New, Derive, DeriveWith: descriptor construction; derivation composes
//     the parent chain eagerly, so a Unit at rest is always base-referenced.
//   - Mul, Div, Invert, Squared, Cubed, Compound, Pow: descriptor algebra.
//   - Kilo, Milli, Nano, ...: SI prefixes.
//   - Plan, Convert, MustConvert, ConvertDecimal: numeric conversion between
//     dimensionally compatible descriptors.
//
// A conversion resolves once into a Conversion value tagged with one of five
// kinds (identity, linear, pi, translate, general); Apply evaluates the
// transform as scale, then pi power, then translation. The rational bookkeeping
// stays exact end to end; floating point enters only inside Apply.
//
// Dimensional mismatches surface as a ConversionError wrapping
// ErrIncompatibleDimensions. The typed container layer in units/quantity never
// produces that error; it exists for callers driving descriptors dynamically.
package unit
