//go:build unit

package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/rational"
)

// Fixtures mirroring a slice of the catalog, built from first principles so
// the package tests do not depend on the catalog package above them.
var (
	meter      = New(dimension.Length{})
	foot       = Derive(meter, rational.New(381, 1250))
	mile       = Derive(foot, rational.FromInt(5280))
	second     = New(dimension.Time{})
	kelvin     = New(dimension.Temperature{})
	celsius    = DeriveWith(kelvin, rational.One, rational.Zero, rational.New(27315, 100))
	fahrenheit = DeriveWith(celsius, rational.New(5, 9), rational.Zero, rational.New(-160, 9))
	radian     = New(dimension.Angle{})
	degree     = DeriveWith(radian, rational.New(1, 180), rational.One, rational.Zero)
)

func TestNew(t *testing.T) {
	t.Parallel()

	u := New(dimension.Length{})

	assert.Equal(t, rational.One, u.Ratio())
	assert.Equal(t, dimension.Length{}.Vector(), u.Dim())
	assert.True(t, u.PiExp().IsZero())
	assert.True(t, u.Translation().IsZero())
	assert.False(t, u.IsScalar())
}

func TestDerive_ResolvesChainEagerly(t *testing.T) {
	t.Parallel()

	// mile -> foot -> meter resolves to a single base-referenced ratio.
	assert.Equal(t, rational.New(201168, 125), mile.Ratio())
	assert.Equal(t, meter.Dim(), mile.Dim())
	assert.InDelta(t, 1609.344, mile.Ratio().Float64(), 1e-12)
}

func TestDeriveWith_TranslationChain(t *testing.T) {
	t.Parallel()

	// fahrenheit resolves through celsius to kelvin:
	// ratio = 5/9, translation = -160/9 + 27315/100 = 45967/180.
	assert.Equal(t, rational.New(5, 9), fahrenheit.Ratio())
	assert.Equal(t, rational.New(45967, 180), fahrenheit.Translation())
	assert.Equal(t, kelvin.Dim(), fahrenheit.Dim())
}

func TestDeriveWith_PiExponentChain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rational.New(1, 180), degree.Ratio())
	assert.Equal(t, rational.One, degree.PiExp())

	arcminute := Derive(degree, rational.New(1, 60))

	assert.Equal(t, rational.New(1, 10800), arcminute.Ratio())
	assert.Equal(t, rational.One, arcminute.PiExp())
}

func TestConvertibleTo(t *testing.T) {
	t.Parallel()

	assert.True(t, foot.ConvertibleTo(mile))
	assert.True(t, celsius.ConvertibleTo(fahrenheit))
	assert.False(t, meter.ConvertibleTo(second))
}

func TestUnitEquality(t *testing.T) {
	t.Parallel()

	// Equal resolved descriptors are the same unit regardless of the
	// derivation path that produced them.
	yardViaFeet := Derive(foot, rational.FromInt(3))
	yardDirect := Derive(meter, rational.New(1143, 1250))

	assert.Equal(t, yardDirect, yardViaFeet)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "381/1250 m", foot.String())
	assert.Equal(t, "1/180 π rad", degree.String())
	assert.Equal(t, "1 K +5463/20", celsius.String())
}
