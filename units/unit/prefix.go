package unit

import "github.com/LerianStudio/lib-units/v2/units/rational"

// SI decimal prefixes. Each returns the prefixed unit, e.g. Kilo(Meter).
// Prefixing is ordinary derivation; the full int64 range of exact prefixes
// runs from atto (10⁻¹⁸) to exa (10¹⁸).

// Atto scales by 10⁻¹⁸.
func Atto(u Unit) Unit { return Derive(u, rational.New(1, 1_000_000_000_000_000_000)) }

// Femto scales by 10⁻¹⁵.
func Femto(u Unit) Unit { return Derive(u, rational.New(1, 1_000_000_000_000_000)) }

// Pico scales by 10⁻¹².
func Pico(u Unit) Unit { return Derive(u, rational.New(1, 1_000_000_000_000)) }

// Nano scales by 10⁻⁹.
func Nano(u Unit) Unit { return Derive(u, rational.New(1, 1_000_000_000)) }

// Micro scales by 10⁻⁶.
func Micro(u Unit) Unit { return Derive(u, rational.New(1, 1_000_000)) }

// Milli scales by 10⁻³.
func Milli(u Unit) Unit { return Derive(u, rational.New(1, 1000)) }

// Centi scales by 10⁻².
func Centi(u Unit) Unit { return Derive(u, rational.New(1, 100)) }

// Deci scales by 10⁻¹.
func Deci(u Unit) Unit { return Derive(u, rational.New(1, 10)) }

// Deca scales by 10.
func Deca(u Unit) Unit { return Derive(u, rational.FromInt(10)) }

// Hecto scales by 10².
func Hecto(u Unit) Unit { return Derive(u, rational.FromInt(100)) }

// Kilo scales by 10³.
func Kilo(u Unit) Unit { return Derive(u, rational.FromInt(1000)) }

// Mega scales by 10⁶.
func Mega(u Unit) Unit { return Derive(u, rational.FromInt(1_000_000)) }

// Giga scales by 10⁹.
func Giga(u Unit) Unit { return Derive(u, rational.FromInt(1_000_000_000)) }

// Tera scales by 10¹².
func Tera(u Unit) Unit { return Derive(u, rational.FromInt(1_000_000_000_000)) }

// Peta scales by 10¹⁵.
func Peta(u Unit) Unit { return Derive(u, rational.FromInt(1_000_000_000_000_000)) }

// Exa scales by 10¹⁸.
func Exa(u Unit) Unit { return Derive(u, rational.FromInt(1_000_000_000_000_000_000)) }
