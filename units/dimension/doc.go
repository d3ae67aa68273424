// Package dimension models physical dimensions as exponent vectors over the
// closed 8-quantity basis {length, mass, time, angle, current, temperature,
// substance, luminous intensity}.
//
// Core APIs include the comparable Vector type with its total algebra
// (Mul, Div, Invert, Pow), the Spec interface, and one phantom tag type per
// physical category (Length, Mass, Velocity, Energy, ...).
//
// Two vectors describe the same dimension exactly when all eight exponents are
// equal, which == answers in O(1). The basis is fixed by convention and not
// extensible; radians are carried as a basis slot because the SI definition
// (m·m⁻¹) would make angles indistinguishable from scalars.
//
// The tag types exist so that the quantity container can carry its dimension
// in a type parameter, turning dimensional mismatches into compile errors.
package dimension
