//go:build unit

package unit

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/rational"
)

var (
	pascal     = New(dimension.Pressure{})
	atmosphere = Derive(pascal, rational.FromInt(101325))
	watt       = New(dimension.Power{})
	horsepower = Derive(watt, rational.New(7457, 10))
)

func TestPlan_KindSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from Unit
		to   Unit
		want Kind
	}{
		{name: "same descriptor", from: foot, to: foot, want: KindIdentity},
		{name: "scale only", from: foot, to: meter, want: KindLinear},
		{name: "pi power", from: degree, to: radian, want: KindPi},
		{name: "translation", from: celsius, to: kelvin, want: KindTranslate},
		{name: "translation and scale", from: fahrenheit, to: celsius, want: KindTranslate},
		{name: "general", from: degree, to: DeriveWith(radian, rational.One, rational.Zero, rational.One), want: KindGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Plan(tt.from, tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Kind())
		})
	}
}

func TestPlan_IncompatibleDimensions(t *testing.T) {
	t.Parallel()

	_, err := Plan(meter, second)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompatibleDimensions)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, meter, convErr.From)
	assert.Equal(t, second, convErr.To)
}

func TestConvert_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{name: "foot to meters", value: 1, from: foot, to: meter, want: 0.3048},
		{name: "mile to meters", value: 1, from: mile, to: meter, want: 1609.344},
		{name: "celsius zero to kelvin", value: 0, from: celsius, to: kelvin, want: 273.15},
		{name: "fahrenheit freezing to celsius", value: 32, from: fahrenheit, to: celsius, want: 0},
		{name: "fahrenheit to kelvin", value: 0, from: fahrenheit, to: kelvin, want: 45967.0 / 180.0},
		{name: "horsepower to watts", value: 1, from: horsepower, to: watt, want: 745.7},
		{name: "atmosphere to pascals", value: 1, from: atmosphere, to: pascal, want: 101325},
		{name: "straight angle to radians", value: 180, from: degree, to: radian, want: math.Pi},
		{name: "radians to degrees", value: math.Pi / 2, from: radian, to: degree, want: 90},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Convert(tt.value, tt.from, tt.to)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_IdentityIsExact(t *testing.T) {
	t.Parallel()

	// No floating-point operation at all: bit-for-bit equality, even for
	// values that a multiply-divide round trip would perturb.
	value := 0.1 + 0.2

	got, err := Convert(value, foot, foot)

	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name string
		a    Unit
		b    Unit
	}{
		{name: "foot meter", a: foot, b: meter},
		{name: "fahrenheit kelvin", a: fahrenheit, b: kelvin},
		{name: "degree radian", a: degree, b: radian},
		{name: "mile foot", a: mile, b: foot},
	}

	for _, tt := range pairs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const value = 123.456

			mid, err := Convert(value, tt.a, tt.b)
			require.NoError(t, err)

			back, err := Convert(mid, tt.b, tt.a)
			require.NoError(t, err)

			assert.InEpsilon(t, value, back, 1e-9)
		})
	}
}

func TestMustConvert(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.3048, MustConvert(1, foot, meter), 1e-12)

	assert.Panics(t, func() {
		MustConvert(1, meter, second)
	})
}

func TestConvertDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		from  Unit
		to    Unit
		want  string
	}{
		{name: "foot to meters is exact", value: "1", from: foot, to: meter, want: "0.3048"},
		{name: "mile to meters is exact", value: "1", from: mile, to: meter, want: "1609.344"},
		{name: "celsius to kelvin carries offset", value: "0", from: celsius, to: kelvin, want: "273.15"},
		{name: "identity", value: "42.42", from: foot, to: foot, want: "42.42"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ConvertDecimal(decimal.RequireFromString(tt.value), tt.from, tt.to)

			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestConvertDecimal_PiPowerIsInexact(t *testing.T) {
	t.Parallel()

	_, err := ConvertDecimal(decimal.NewFromInt(180), degree, radian)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInexactConversion)
	assert.False(t, errors.Is(err, ErrIncompatibleDimensions))
}

func TestConvertDecimal_IncompatibleDimensions(t *testing.T) {
	t.Parallel()

	_, err := ConvertDecimal(decimal.NewFromInt(1), meter, second)

	assert.ErrorIs(t, err, ErrIncompatibleDimensions)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "identity", KindIdentity.String())
	assert.Equal(t, "linear", KindLinear.String())
	assert.Equal(t, "pi", KindPi.String())
	assert.Equal(t, "translate", KindTranslate.String())
	assert.Equal(t, "general", KindGeneral.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
