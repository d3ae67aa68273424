package unit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-units/v2/units/rational"
)

// Kind tags a resolved conversion with the transform it needs. Exactly one
// kind applies per (from, to) pair; Apply pattern-matches on it.
type Kind uint8

const (
	// KindIdentity converts a unit to itself and performs no floating-point
	// operation at all.
	KindIdentity Kind = iota
	// KindLinear applies the rational scale only.
	KindLinear
	// KindPi applies the rational scale and a real π power.
	KindPi
	// KindTranslate applies the rational scale and an additive offset.
	KindTranslate
	// KindGeneral applies scale, π power, and offset.
	KindGeneral
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindLinear:
		return "linear"
	case KindPi:
		return "pi"
	case KindTranslate:
		return "translate"
	case KindGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Conversion is the numeric transform between two dimensionally compatible
// units, resolved once by Plan. All components are exact rationals; floating
// point enters only in Apply.
type Conversion struct {
	from Unit
	to   Unit
	kind Kind

	// ratio is ratio(from)/ratio(to); piExp is piExp(from)−piExp(to); offset
	// is (translation(from)−translation(to))/ratio(to), already relative to
	// the destination scale.
	ratio  rational.Rat
	piExp  rational.Rat
	offset rational.Rat
}

// Kind returns the resolved conversion kind.
func (c Conversion) Kind() Kind { return c.kind }

// Plan resolves the conversion from one unit to another. It fails with a
// ConversionError wrapping ErrIncompatibleDimensions when the resolved
// dimensions differ; there is no dimensionally mismatched success path.
func Plan(from, to Unit) (Conversion, error) {
	if from.dim != to.dim {
		return Conversion{}, &ConversionError{From: from, To: to, Err: ErrIncompatibleDimensions}
	}

	if from == to {
		return Conversion{from: from, to: to, kind: KindIdentity}, nil
	}

	c := Conversion{
		from:   from,
		to:     to,
		ratio:  from.ratio.Div(to.ratio),
		piExp:  from.piExp.Sub(to.piExp),
		offset: from.translation.Sub(to.translation).Div(to.ratio),
	}

	switch {
	case c.piExp.IsZero() && c.offset.IsZero():
		c.kind = KindLinear
	case c.offset.IsZero():
		c.kind = KindPi
	case c.piExp.IsZero():
		c.kind = KindTranslate
	default:
		c.kind = KindGeneral
	}

	return c, nil
}

// Apply evaluates the transform on a raw magnitude. Order matters: scale,
// then π power, then translation; the offset is defined relative to the
// destination's conversion ratio, so it is always added last.
func (c Conversion) Apply(value float64) float64 {
	if c.kind == KindIdentity {
		return value
	}

	out := float64(c.ratio.Num()) * value / float64(c.ratio.Den())

	if c.kind == KindPi || c.kind == KindGeneral {
		out *= math.Pow(math.Pi, c.piExp.Float64())
	}

	if c.kind == KindTranslate || c.kind == KindGeneral {
		out += c.offset.Float64()
	}

	return out
}

// ApplyDecimal evaluates the transform in decimal arithmetic, keeping the
// rational scale and offset exact up to the decimal package's division
// precision. Conversions that need a π power cannot be exact and fail with
// ErrInexactConversion.
func (c Conversion) ApplyDecimal(value decimal.Decimal) (decimal.Decimal, error) {
	switch c.kind {
	case KindIdentity:
		return value, nil
	case KindPi, KindGeneral:
		return decimal.Zero, &ConversionError{From: c.from, To: c.to, Err: ErrInexactConversion}
	}

	out := value.
		Mul(decimal.NewFromInt(c.ratio.Num())).
		Div(decimal.NewFromInt(c.ratio.Den()))

	if c.kind == KindTranslate {
		out = out.Add(c.offset.Decimal())
	}

	return out, nil
}

// Convert transforms value from one unit to another.
func Convert(value float64, from, to Unit) (float64, error) {
	c, err := Plan(from, to)
	if err != nil {
		return 0, err
	}

	return c.Apply(value), nil
}

// MustConvert is Convert for callers that have already established
// compatibility, typically through the typed quantity layer. It panics on a
// dimension mismatch.
func MustConvert(value float64, from, to Unit) float64 {
	out, err := Convert(value, from, to)
	if err != nil {
		panic(err.Error())
	}

	return out
}

// ConvertDecimal transforms a decimal magnitude between π-free units without
// leaving decimal arithmetic.
func ConvertDecimal(value decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	c, err := Plan(from, to)
	if err != nil {
		return decimal.Zero, err
	}

	return c.ApplyDecimal(value)
}
