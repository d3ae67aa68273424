//go:build unit

package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

var (
	watt      = unit.New(dimension.Power{})
	milliwatt = unit.Milli(watt)
)

// powerSquaredDim is the composition dimension produced by combining two
// power levels.
type powerSquaredDim struct{}

func (powerSquaredDim) Vector() dimension.Vector {
	return dimension.Power{}.Vector().Pow(2)
}

func TestDB_RoundTrip(t *testing.T) {
	t.Parallel()

	g := DB(20)

	assert.InDelta(t, 100.0, g.Magnitude(), 1e-9, "20 dB linearizes to 10^(20/10)")
	assert.InDelta(t, 20.0, g.Decibels(), 1e-9)
}

func TestNewLevel(t *testing.T) {
	t.Parallel()

	l := NewLevel[dimension.Power](30, watt)

	assert.InDelta(t, 1000.0, l.Magnitude(), 1e-9, "30 dBW is a kilowatt")
	assert.Equal(t, watt, l.Unit())
}

func TestNewLevel_RejectsMismatchedUnit(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewLevel[dimension.Power](10, second)
	})
}

func TestBoostAndCut_PreserveDescriptor(t *testing.T) {
	t.Parallel()

	l := NewLevel[dimension.Power](10, watt)

	boosted := l.Boost(DB(10))

	assert.InDelta(t, 20.0, boosted.Decibels(), 1e-9)
	assert.Equal(t, watt, boosted.Unit(), "a pure gain never changes the unit")

	cut := boosted.Cut(DB(10))

	assert.InDelta(t, 10.0, cut.Decibels(), 1e-9)
}

func TestCombine_SquaresDescriptor(t *testing.T) {
	t.Parallel()

	a := NewLevel[dimension.Power](10, watt)
	b := NewLevel[dimension.Power](10, watt)

	sum := Combine[powerSquaredDim](a, b)

	assert.InDelta(t, 20.0, sum.Decibels(), 1e-9, "dB values add")
	assert.Equal(t, unit.Squared(watt), sum.Unit())
}

func TestCombine_ScalarGainsStayScalar(t *testing.T) {
	t.Parallel()

	sum := Combine[dimension.Scalar](DB(10), DB(10))

	assert.InDelta(t, 20.0, sum.Decibels(), 1e-9)
	assert.True(t, sum.Unit().IsScalar())
}

func TestCombine_WrongResultDimensionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Combine[dimension.Power](NewLevel[dimension.Power](10, watt), NewLevel[dimension.Power](10, watt))
	})
}

func TestDiff_ProducesGain(t *testing.T) {
	t.Parallel()

	a := NewLevel[dimension.Power](20, watt)
	b := NewLevel[dimension.Power](10, watt)

	g := Diff(a, b)

	assert.InDelta(t, 10.0, g.Decibels(), 1e-9)
	assert.True(t, g.Unit().IsScalar())
}

func TestDiff_ConvertsAcrossUnits(t *testing.T) {
	t.Parallel()

	// 20 dBW against 30 dBm: 30 dBm is one watt, so the difference is 20 dB.
	a := NewLevel[dimension.Power](20, watt)
	b := NewLevel[dimension.Power](30, milliwatt)

	g := Diff(a, b)

	assert.InDelta(t, 20.0, g.Decibels(), 1e-9)
}
