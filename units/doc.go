// Package units is the named catalog of measurement units, quantity types,
// and physical constants built on the engine subpackages.
//
// The package includes unit descriptors for every supported category
// (Meter, Foot, Kelvin, Joule, ...), one quantity type per category
// (Length, Mass, Energy, ...), plural constructors, decibel helpers, and a
// fixed set of physical constants.
//
// Typical usage:
//
//	distance := units.Kilometers(42.195)
//	elapsed := units.Hours(2.5)
//	pace := quantity.Div[dimension.Velocity](distance, elapsed)
//	fmt.Println(pace.In(units.MilePerHour))
//
// Dimensional soundness is checked by the compiler: quantities of different
// categories cannot be added, subtracted, or compared. This package is
// intentionally data-only; the engine lives in the rational, dimension,
// unit, and quantity subpackages.
package units
