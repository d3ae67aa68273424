package units

import (
	"math"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Dimension tags for constants whose categories fall outside the built-in
// set. Any struct with a Vector method works as a category, so these live
// here with the constants that need them.

// Action is J·s, the dimension of the Planck constant.
type Action struct{}

func (Action) Vector() dimension.Vector {
	return dimension.Energy{}.Vector().Mul(dimension.Time{}.Vector())
}

// Gravitation is m³·kg⁻¹·s⁻², the dimension of the gravitational constant.
type Gravitation struct{}

func (Gravitation) Vector() dimension.Vector {
	return dimension.Volume{}.Vector().Div(dimension.Mass{}.Vector()).Div(dimension.Time{}.Vector().Pow(2))
}

// Permeability is N·A⁻² (equivalently H/m).
type Permeability struct{}

func (Permeability) Vector() dimension.Vector {
	return dimension.Force{}.Vector().Div(dimension.Current{}.Vector().Pow(2))
}

// Permittivity is F·m⁻¹.
type Permittivity struct{}

func (Permittivity) Vector() dimension.Vector {
	return dimension.Capacitance{}.Vector().Div(dimension.Length{}.Vector())
}

// CoulombScale is N·m²·C⁻², the dimension of the Coulomb constant.
type CoulombScale struct{}

func (CoulombScale) Vector() dimension.Vector {
	return dimension.Force{}.Vector().Mul(dimension.Area{}.Vector()).Div(dimension.Charge{}.Vector().Pow(2))
}

// Entropy is J·K⁻¹.
type Entropy struct{}

func (Entropy) Vector() dimension.Vector {
	return dimension.Energy{}.Vector().Div(dimension.Temperature{}.Vector())
}

// MolarEntropy is J·K⁻¹·mol⁻¹.
type MolarEntropy struct{}

func (MolarEntropy) Vector() dimension.Vector {
	return Entropy{}.Vector().Div(dimension.Substance{}.Vector())
}

// MolarCharge is C·mol⁻¹.
type MolarCharge struct{}

func (MolarCharge) Vector() dimension.Vector {
	return dimension.Charge{}.Vector().Div(dimension.Substance{}.Vector())
}

// InverseAmount is mol⁻¹.
type InverseAmount struct{}

func (InverseAmount) Vector() dimension.Vector {
	return dimension.Substance{}.Vector().Invert()
}

// MagneticMoment is J·T⁻¹.
type MagneticMoment struct{}

func (MagneticMoment) Vector() dimension.Vector {
	return dimension.Energy{}.Vector().Div(dimension.MagneticFieldStrength{}.Vector())
}

// ThermalRadiance is W·m⁻²·K⁻⁴, the dimension of the Stefan-Boltzmann
// constant.
type ThermalRadiance struct{}

func (ThermalRadiance) Vector() dimension.Vector {
	return dimension.Power{}.Vector().Div(dimension.Area{}.Vector()).Div(dimension.Temperature{}.Vector().Pow(4))
}

// Shared magnitudes for constants derived from one another.
const (
	speedOfLightValue     = 299792458.0
	planckValue           = 6.626070040e-34
	elementaryChargeValue = 1.602176565e-19
	electronMassValue     = 9.10938291e-31
	avogadroValue         = 6.02214129e23
	gasConstantValue      = 8.3144621
)

// Physical constants. Magnitudes follow the 2014 CODATA values; derived
// constants are computed from the primaries rather than quoted separately.
var (
	// Pi carries π symbolically in its unit's exponent, so it stays exact
	// until a conversion forces evaluation.
	Pi = quantity.New[dimension.Scalar](1,
		unit.DeriveWith(Unitless, rational.One, rational.One, rational.Zero))

	SpeedOfLight = MetersPerSecond(speedOfLightValue)

	GravitationalConstant = quantity.New[Gravitation](6.67408e-11,
		unit.Compound(CubicMeter, unit.Invert(Kilogram), unit.Invert(unit.Squared(Second))))

	PlanckConstant = quantity.New[Action](planckValue, unit.Compound(Joule, Second))

	VacuumPermeability = quantity.New[Permeability](4e-7*math.Pi,
		unit.Compound(Newton, unit.Invert(unit.Squared(Ampere))))

	VacuumPermittivity = quantity.New[Permittivity](
		1/(4e-7*math.Pi*speedOfLightValue*speedOfLightValue),
		unit.Compound(Farad, unit.Invert(Meter)))

	// Characteristic impedance of free space, μ₀·c.
	ImpedanceOfVacuum = Ohms(4e-7 * math.Pi * speedOfLightValue)

	// 1/(4π·ε₀), which reduces to 10⁻⁷·c².
	CoulombConstant = quantity.New[CoulombScale](1e-7*speedOfLightValue*speedOfLightValue,
		unit.Compound(Newton, SquareMeter, unit.Invert(unit.Squared(Coulomb))))

	ElementaryCharge = Coulombs(elementaryChargeValue)

	ElectronMass = Kilograms(electronMassValue)

	ProtonMass = Kilograms(1.672621777e-27)

	// e·h/(4π·mₑ).
	BohrMagneton = quantity.New[MagneticMoment](
		elementaryChargeValue*planckValue/(4*math.Pi*electronMassValue),
		unit.Compound(Joule, unit.Invert(Tesla)))

	AvogadroNumber = quantity.New[InverseAmount](avogadroValue, unit.Invert(Mole))

	GasConstant = quantity.New[MolarEntropy](gasConstantValue,
		unit.Compound(Joule, unit.Invert(Kelvin), unit.Invert(Mole)))

	// R/Nₐ.
	BoltzmannConstant = quantity.New[Entropy](gasConstantValue/avogadroValue,
		unit.Compound(Joule, unit.Invert(Kelvin)))

	// Nₐ·e.
	FaradayConstant = quantity.New[MolarCharge](avogadroValue*elementaryChargeValue,
		unit.Compound(Coulomb, unit.Invert(Mole)))

	// 2π⁵R⁴ / (15h³c²Nₐ⁴).
	StefanBoltzmannConstant = quantity.New[ThermalRadiance](
		2*math.Pow(math.Pi, 5)*math.Pow(gasConstantValue, 4)/
			(15*math.Pow(planckValue, 3)*speedOfLightValue*speedOfLightValue*math.Pow(avogadroValue, 4)),
		unit.Compound(Watt, unit.Invert(SquareMeter), unit.Invert(unit.Pow(Kelvin, 4))))
)
