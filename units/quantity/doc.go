// Package quantity provides the dimensioned value containers.
//
// Core APIs:
//   - Quantity[D]: an immutable linear value tagged with a unit descriptor and
//     a phantom dimension parameter.
//   - Mul, Div, Pow, Reciprocal: cross-dimension arithmetic with an explicit
//     result dimension type argument.
//   - FromFloat, Float: the only bridges between bare numbers and quantities,
//     restricted to the scalar dimension by the type system.
//   - Level[D], Gain, DB: logarithmic (decibel) containers.
//
// The phantom parameter is what makes dimensional safety a compile-time
// property: Quantity[dimension.Length] and Quantity[dimension.Time] are
// different types, so adding or comparing them does not compile. Operations
// whose result dimension the type system cannot derive (products, quotients,
// powers) take it as an explicit type argument instead:
//
//	area := quantity.Mul[dimension.Area](length, width)
//
// and verify the exponent arithmetic once at the call, panicking with a
// message naming the violated constraint if the argument is wrong.
//
// Linear and decibel containers are distinct types with no shared arithmetic;
// adding a Level to a Quantity is a compile error.
//
// Quantities are immutable value types. Every operation returns a new value;
// nothing is shared by reference, so values are safe to copy across
// goroutines.
package quantity
