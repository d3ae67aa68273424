package dimension

// Spec identifies a physical category at the type level. Implementations are
// empty tag structs whose only job is to pin a Vector to a type parameter.
//
// The catalog may declare additional Spec types for categories outside this
// package (for example the action dimension of the Planck constant); any
// struct with a Vector method participates.
type Spec interface {
	Vector() Vector
}

// Category vectors. Slot order: length, mass, time, angle, current,
// temperature, substance, luminous intensity.
var (
	scalarVec            = Vector{}
	lengthVec            = FromInts(1, 0, 0, 0, 0, 0, 0, 0)
	massVec              = FromInts(0, 1, 0, 0, 0, 0, 0, 0)
	timeVec              = FromInts(0, 0, 1, 0, 0, 0, 0, 0)
	angleVec             = FromInts(0, 0, 0, 1, 0, 0, 0, 0)
	currentVec           = FromInts(0, 0, 0, 0, 1, 0, 0, 0)
	temperatureVec       = FromInts(0, 0, 0, 0, 0, 1, 0, 0)
	substanceVec         = FromInts(0, 0, 0, 0, 0, 0, 1, 0)
	luminousIntensityVec = FromInts(0, 0, 0, 0, 0, 0, 0, 1)

	solidAngleVec    = FromInts(0, 0, 0, 2, 0, 0, 0, 0)
	frequencyVec     = FromInts(0, 0, -1, 0, 0, 0, 0, 0)
	velocityVec      = FromInts(1, 0, -1, 0, 0, 0, 0, 0)
	accelerationVec  = FromInts(1, 0, -2, 0, 0, 0, 0, 0)
	forceVec         = FromInts(1, 1, -2, 0, 0, 0, 0, 0)
	pressureVec      = FromInts(-1, 1, -2, 0, 0, 0, 0, 0)
	chargeVec        = FromInts(0, 0, 1, 0, 1, 0, 0, 0)
	energyVec        = FromInts(2, 1, -2, 0, 0, 0, 0, 0)
	powerVec         = FromInts(2, 1, -3, 0, 0, 0, 0, 0)
	voltageVec       = FromInts(2, 1, -3, 0, -1, 0, 0, 0)
	capacitanceVec   = FromInts(-2, -1, 4, 0, 2, 0, 0, 0)
	impedanceVec     = FromInts(2, 1, -3, 0, -2, 0, 0, 0)
	conductanceVec   = FromInts(-2, -1, 3, 0, 2, 0, 0, 0)
	magneticFluxVec  = FromInts(2, 1, -2, 0, -1, 0, 0, 0)
	magneticFieldVec = FromInts(0, 1, -2, 0, -1, 0, 0, 0)
	inductanceVec    = FromInts(2, 1, -2, 0, -2, 0, 0, 0)
	luminousFluxVec  = FromInts(0, 0, 0, 2, 0, 0, 0, 1)
	illuminanceVec   = FromInts(-2, 0, 0, 2, 0, 0, 0, 1)
	torqueVec        = FromInts(2, 1, -2, 0, 0, 0, 0, 0)
	areaVec          = FromInts(2, 0, 0, 0, 0, 0, 0, 0)
	volumeVec        = FromInts(3, 0, 0, 0, 0, 0, 0, 0)
	densityVec       = FromInts(-3, 1, 0, 0, 0, 0, 0, 0)
)

// Scalar is the dimensionless category. It is the only category whose
// quantities may be built from and collapsed to bare numbers.
type Scalar struct{}

func (Scalar) Vector() Vector { return scalarVec }

// Length is the meter-referenced base category.
type Length struct{}

func (Length) Vector() Vector { return lengthVec }

// Mass is the kilogram-referenced base category.
type Mass struct{}

func (Mass) Vector() Vector { return massVec }

// Time is the second-referenced base category.
type Time struct{}

func (Time) Vector() Vector { return timeVec }

// Angle is the radian-referenced base category.
type Angle struct{}

func (Angle) Vector() Vector { return angleVec }

// Current is the ampere-referenced base category.
type Current struct{}

func (Current) Vector() Vector { return currentVec }

// Temperature is the kelvin-referenced base category.
type Temperature struct{}

func (Temperature) Vector() Vector { return temperatureVec }

// Substance is the mole-referenced base category.
type Substance struct{}

func (Substance) Vector() Vector { return substanceVec }

// LuminousIntensity is the candela-referenced base category.
type LuminousIntensity struct{}

func (LuminousIntensity) Vector() Vector { return luminousIntensityVec }

// SolidAngle is rad².
type SolidAngle struct{}

func (SolidAngle) Vector() Vector { return solidAngleVec }

// Frequency is s⁻¹.
type Frequency struct{}

func (Frequency) Vector() Vector { return frequencyVec }

// Velocity is m·s⁻¹.
type Velocity struct{}

func (Velocity) Vector() Vector { return velocityVec }

// Acceleration is m·s⁻².
type Acceleration struct{}

func (Acceleration) Vector() Vector { return accelerationVec }

// Force is kg·m·s⁻².
type Force struct{}

func (Force) Vector() Vector { return forceVec }

// Pressure is kg·m⁻¹·s⁻².
type Pressure struct{}

func (Pressure) Vector() Vector { return pressureVec }

// Charge is A·s.
type Charge struct{}

func (Charge) Vector() Vector { return chargeVec }

// Energy is kg·m²·s⁻².
type Energy struct{}

func (Energy) Vector() Vector { return energyVec }

// Power is kg·m²·s⁻³.
type Power struct{}

func (Power) Vector() Vector { return powerVec }

// Voltage is kg·m²·s⁻³·A⁻¹.
type Voltage struct{}

func (Voltage) Vector() Vector { return voltageVec }

// Capacitance is kg⁻¹·m⁻²·s⁴·A².
type Capacitance struct{}

func (Capacitance) Vector() Vector { return capacitanceVec }

// Impedance is kg·m²·s⁻³·A⁻².
type Impedance struct{}

func (Impedance) Vector() Vector { return impedanceVec }

// Conductance is kg⁻¹·m⁻²·s³·A².
type Conductance struct{}

func (Conductance) Vector() Vector { return conductanceVec }

// MagneticFlux is kg·m²·s⁻²·A⁻¹.
type MagneticFlux struct{}

func (MagneticFlux) Vector() Vector { return magneticFluxVec }

// MagneticFieldStrength is kg·s⁻²·A⁻¹.
type MagneticFieldStrength struct{}

func (MagneticFieldStrength) Vector() Vector { return magneticFieldVec }

// Inductance is kg·m²·s⁻²·A⁻².
type Inductance struct{}

func (Inductance) Vector() Vector { return inductanceVec }

// LuminousFlux is cd·rad².
type LuminousFlux struct{}

func (LuminousFlux) Vector() Vector { return luminousFluxVec }

// Illuminance is cd·rad²·m⁻².
type Illuminance struct{}

func (Illuminance) Vector() Vector { return illuminanceVec }

// Radioactivity is s⁻¹, kept distinct from Frequency at the type level even
// though the vectors coincide.
type Radioactivity struct{}

func (Radioactivity) Vector() Vector { return frequencyVec }

// Torque is kg·m²·s⁻². Dimensionally identical to Energy; the distinct tag
// keeps newton-meters from being added to joules by accident.
type Torque struct{}

func (Torque) Vector() Vector { return torqueVec }

// Area is m².
type Area struct{}

func (Area) Vector() Vector { return areaVec }

// Volume is m³.
type Volume struct{}

func (Volume) Vector() Vector { return volumeVec }

// Density is kg·m⁻³.
type Density struct{}

func (Density) Vector() Vector { return densityVec }

// Concentration is dimensionless (parts-per ratios), kept distinct from
// Scalar at the type level.
type Concentration struct{}

func (Concentration) Vector() Vector { return scalarVec }
