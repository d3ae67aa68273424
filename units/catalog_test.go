//go:build unit

package units

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LerianStudio/lib-units/v2/units/quantity"
)

func TestLengthConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "foot to meter", got: Feet(1).In(Meter), want: 0.3048},
		{name: "mile to kilometer", got: Miles(1).In(Kilometer), want: 1.609344},
		{name: "yard to meter", got: Yards(1).In(Meter), want: 0.9144},
		{name: "inch to mil", got: Inches(1).In(Mil), want: 1000},
		{name: "nautical mile to meter", got: NauticalMiles(1).In(Meter), want: 1852},
		{name: "furlong to yard", got: Furlongs(1).In(Yard), want: 220},
		{name: "angstrom to nanometer", got: Angstroms(1).In(Nanometer), want: 0.1},
		{name: "astronomical unit to meter", got: AstronomicalUnits(1).In(Meter), want: 1.495978707e11},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InEpsilon(t, tt.want, tt.got, 1e-12)
		})
	}
}

func TestParsec(t *testing.T) {
	t.Parallel()

	// The π in the parsec's definition divides out of the ratio.
	assert.InEpsilon(t, 3.0856775814913673e16, Parsecs(1).In(Meter), 1e-12)
	assert.InEpsilon(t, 3.2615637771674333, Parsecs(1).In(Lightyear), 1e-12)
}

func TestMassConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 0.45359237, Pounds(1).In(Kilogram), 1e-12)
	assert.InEpsilon(t, 6.35029318, Stones(1).In(Kilogram), 1e-12)
	assert.InEpsilon(t, 14.5939029, Slugs(1).In(Kilogram), 1e-12)
	assert.InEpsilon(t, 28.349523125, Ounces(1).In(Gram), 1e-12)
	assert.InEpsilon(t, 0.2, Carats(1).In(Gram), 1e-12)
}

func TestTimeConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 3600, Hours(1).In(Second), 1e-12)
	assert.InEpsilon(t, 604800, Weeks(1).In(Second), 1e-12)
	assert.InEpsilon(t, 8760, Years(1).In(Hour), 1e-12)
}

func TestDurationInterop(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 1.5, FromDuration(1500*time.Millisecond).In(Second), 1e-12)
	assert.Equal(t, 2500*time.Millisecond, Duration(Seconds(2.5)))
}

func TestAngleConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, math.Pi, Degrees(180).In(Radian), 1e-12)
	assert.InEpsilon(t, 360, Turns(1).In(Degree), 1e-12)
	assert.InEpsilon(t, 90, Gradians(100).In(Degree), 1e-12)
	assert.InEpsilon(t, 1, ArcSeconds(3600).In(Degree), 1e-12)
	assert.InEpsilon(t, 0.05625, AngularMils(1).In(Degree), 1e-12)
	assert.InEpsilon(t, 4*math.Pi, Spats(1).In(Steradian), 1e-12)
}

func TestTemperatureConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 273.15, DegreesCelsius(0).In(Kelvin), 1e-12)
	assert.InDelta(t, 100, DegreesFahrenheit(212).In(Celsius), 1e-9)
	assert.InDelta(t, 273.15, DegreesRankine(491.67).In(Kelvin), 1e-9)
	assert.InDelta(t, 100, DegreesReaumur(80).In(Celsius), 1e-9)
	assert.InDelta(t, -40, DegreesCelsius(-40).In(Fahrenheit), 1e-9)
}

func TestVelocityConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 1.852, Knots(1).In(KilometerPerHour), 1e-12)
	assert.InEpsilon(t, 88, MilesPerHour(60).In(FootPerSecond), 1e-12)
	assert.InEpsilon(t, 9.80665, StandardGravities(1).In(MeterPerSecondSquared), 1e-12)
}

func TestForceAndPressureConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 4.4482216152605, PoundsForce(1).In(Newton), 1e-9)
	assert.InEpsilon(t, 101325, Atmospheres(1).In(Pascal), 1e-12)
	assert.InEpsilon(t, 1, Torrs(760).In(Atmosphere), 1e-12)
	assert.InEpsilon(t, 6894.757293168, PoundsPerSquareInch(1).In(Pascal), 1e-9)
	assert.InEpsilon(t, 1e5, Bars(1).In(Pascal), 1e-12)
	assert.InEpsilon(t, 9.80665, Kiloponds(1).In(Newton), 1e-12)
}

func TestEnergyAndPowerConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 4.184, Calories(1).In(Joule), 1e-12)
	assert.InEpsilon(t, 3.6, KilowattHours(1).In(Megajoule), 1e-12)
	assert.InEpsilon(t, 1055.05585262, BTUs(1).In(Joule), 1e-12)
	assert.InEpsilon(t, 1.3558179483314004, FootPounds(1).In(Joule), 1e-9)
	assert.InEpsilon(t, 745.7, Horsepowers(1).In(Watt), 1e-12)
}

func TestElectricalConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 299.792458, Statvolts(1).In(Volt), 1e-12)
	assert.InEpsilon(t, 1, Gausses(10_000).In(Tesla), 1e-12)
	assert.InEpsilon(t, 1, Maxwells(100_000_000).In(Weber), 1e-12)
	assert.InEpsilon(t, 3600, AmpereHours(1).In(Coulomb), 1e-12)
}

func TestAreaConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 1, Acres(640).In(SquareMile), 1e-12)
	assert.InEpsilon(t, 1e4, Hectares(1).In(SquareMeter), 1e-12)
	assert.InEpsilon(t, 144, SquareFeet(1).In(SquareInch), 1e-12)
}

func TestVolumeConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 3.785411784, Gallons(1).In(Liter), 1e-12)
	assert.InEpsilon(t, 0.001, Liters(1).In(CubicMeter), 1e-12)
	assert.InEpsilon(t, 1, FluidOunces(128).In(Gallon), 1e-12)
	assert.InEpsilon(t, 1728, CubicFeet(1).In(CubicInch), 1e-12)
}

func TestConcentrationConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 1000, PPM(1).In(PartsPerBillion), 1e-12)
	assert.InEpsilon(t, 1e6, PPT(1).In(PartsPerMillion), 1e-12)
}

func TestRadioactivityConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 37, Curies(1).In(Gigabecquerel), 1e-12)
	assert.InEpsilon(t, 1, Rutherfords(1).In(Megabecquerel), 1e-12)
}

func TestDoseConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 1, Rads(100).In(Gray), 1e-12)
	assert.InEpsilon(t, 1000, Sieverts(1).In(Millisievert), 1e-12)
	assert.InEpsilon(t, 0.5, Rems(50).In(Sievert), 1e-12)
	// Absorbed and equivalent dose share one category; gray and sievert
	// interconvert one to one.
	assert.InEpsilon(t, 1, Grays(1).In(Sievert), 1e-12)
}

func TestIlluminanceConversions(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, 10.763910416709722, Footcandles(1).In(Lux), 1e-9)
}

func TestDecibelHelpers(t *testing.T) {
	t.Parallel()

	// 30 dBm and 0 dBW are both one watt.
	assert.InDelta(t, 0, quantity.Diff(DBMilliwatts(30), DBWatts(0)).Decibels(), 1e-9)
	assert.InDelta(t, 30, DBWatts(20).Boost(DB(10)).Decibels(), 1e-9)
}

func TestConstants(t *testing.T) {
	t.Parallel()

	assert.InEpsilon(t, math.Pi, quantity.Float(Pi), 1e-12)
	assert.InEpsilon(t, 299792458, SpeedOfLight.Value(), 1e-12)
	assert.InEpsilon(t, 1.3806488e-23, BoltzmannConstant.Value(), 1e-6)
	assert.InEpsilon(t, 5.670373e-8, StefanBoltzmannConstant.Value(), 1e-5)
	assert.InEpsilon(t, 376.730313461, ImpedanceOfVacuum.Value(), 1e-9)
	assert.InEpsilon(t, 8.854187817e-12, VacuumPermittivity.Value(), 1e-9)
	assert.InEpsilon(t, 8.9875517873681764e9, CoulombConstant.Value(), 1e-12)
	assert.InEpsilon(t, 9.27400968e-24, BohrMagneton.Value(), 1e-6)
	assert.InEpsilon(t, 96485.3365, FaradayConstant.Value(), 1e-6)
}
