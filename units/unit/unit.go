package unit

import (
	"strings"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/rational"
)

// Unit describes how a concrete unit relates to the SI reference of its
// dimension: one unit equals ratio × π^piExp SI units, offset by translation.
// Units are immutable values, always in resolved base-referenced form, and
// comparable: two units with equal resolved descriptors are the same unit.
type Unit struct {
	ratio       rational.Rat
	dim         dimension.Vector
	piExp       rational.Rat
	translation rational.Rat
}

// New returns the SI reference unit of the given category: ratio 1, pi
// exponent 0, translation 0.
func New(spec dimension.Spec) Unit {
	return Unit{ratio: rational.One, dim: spec.Vector()}
}

// Derive returns the unit worth ratio parents. Example: the foot is
// Derive(Meter, rational.New(381, 1250)).
func Derive(parent Unit, ratio rational.Rat) Unit {
	return DeriveWith(parent, ratio, rational.Zero, rational.Zero)
}

// DeriveWith returns a unit defined relative to parent by a local conversion
// ratio, pi exponent, and additive translation, resolved to base-referenced
// form immediately:
//
//	ratio'       = ratio(parent) × r
//	piExp'       = piExp(parent) + p
//	translation' = ratio(parent) × t + translation(parent)
//
// The dimension is the parent's; derivation changes reference scale, never
// physics.
func DeriveWith(parent Unit, ratio, piExp, translation rational.Rat) Unit {
	return Unit{
		ratio:       parent.ratio.Mul(ratio),
		dim:         parent.dim,
		piExp:       parent.piExp.Add(piExp),
		translation: parent.ratio.Mul(translation).Add(parent.translation),
	}
}

// Ratio returns the exact conversion ratio to the SI reference.
func (u Unit) Ratio() rational.Rat { return u.ratio }

// Dim returns the resolved dimension vector.
func (u Unit) Dim() dimension.Vector { return u.dim }

// PiExp returns the exponent of π in the conversion to the SI reference.
func (u Unit) PiExp() rational.Rat { return u.piExp }

// Translation returns the additive datum offset, in SI reference units.
// Nonzero only for directly defined offset units such as Celsius.
func (u Unit) Translation() rational.Rat { return u.translation }

// IsScalar reports whether the unit is dimensionless.
func (u Unit) IsScalar() bool { return u.dim.IsScalar() }

// ConvertibleTo reports whether values can convert between u and v, which
// holds exactly when the resolved dimensions are equal.
func (u Unit) ConvertibleTo(v Unit) bool { return u.dim == v.dim }

// String renders the descriptor for diagnostics, e.g. "381/1250 m" or
// "1/180 π rad".
func (u Unit) String() string {
	var b strings.Builder

	b.WriteString(u.ratio.String())

	if !u.piExp.IsZero() {
		b.WriteString(" π")
		if u.piExp != rational.One {
			b.WriteString("^")
			b.WriteString(u.piExp.String())
		}
	}

	b.WriteString(" ")
	b.WriteString(u.dim.String())

	if !u.translation.IsZero() {
		b.WriteString(" +")
		b.WriteString(u.translation.String())
	}

	return b.String()
}
