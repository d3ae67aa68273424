package units

import (
	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Radioactivity is a decay-rate quantity. It shares the frequency dimension
// vector but is its own category.
type Radioactivity = quantity.Quantity[dimension.Radioactivity]

// Dose is J·kg⁻¹ (m²·s⁻²), the category of absorbed and equivalent
// radiation dose.
type Dose struct{}

func (Dose) Vector() dimension.Vector {
	return dimension.Energy{}.Vector().Div(dimension.Mass{}.Vector())
}

// RadiationDose is an absorbed or equivalent dose quantity.
type RadiationDose = quantity.Quantity[Dose]

var (
	Becquerel     = unit.New(dimension.Radioactivity{})
	Kilobecquerel = unit.Kilo(Becquerel)
	Megabecquerel = unit.Mega(Becquerel)
	Gigabecquerel = unit.Giga(Becquerel)
	Rutherford    = unit.Mega(Becquerel)
	Curie         = unit.Derive(Becquerel, rational.FromInt(37_000_000_000))

	Gray         = unit.Compound(Joule, unit.Invert(Kilogram))
	Milligray    = unit.Milli(Gray)
	Sievert      = unit.Compound(Joule, unit.Invert(Kilogram))
	Millisievert = unit.Milli(Sievert)
	// CGS dose units, a hundredth of their SI counterparts.
	Rad          = unit.Derive(Gray, rational.New(1, 100))
	Rem          = unit.Derive(Sievert, rational.New(1, 100))
)

func Becquerels(v float64) Radioactivity {
	return quantity.New[dimension.Radioactivity](v, Becquerel)
}

func Kilobecquerels(v float64) Radioactivity {
	return quantity.New[dimension.Radioactivity](v, Kilobecquerel)
}

func Megabecquerels(v float64) Radioactivity {
	return quantity.New[dimension.Radioactivity](v, Megabecquerel)
}

func Gigabecquerels(v float64) Radioactivity {
	return quantity.New[dimension.Radioactivity](v, Gigabecquerel)
}

func Rutherfords(v float64) Radioactivity {
	return quantity.New[dimension.Radioactivity](v, Rutherford)
}

func Curies(v float64) Radioactivity { return quantity.New[dimension.Radioactivity](v, Curie) }

func Grays(v float64) RadiationDose { return quantity.New[Dose](v, Gray) }

func Milligrays(v float64) RadiationDose { return quantity.New[Dose](v, Milligray) }

func Sieverts(v float64) RadiationDose { return quantity.New[Dose](v, Sievert) }

func Millisieverts(v float64) RadiationDose { return quantity.New[Dose](v, Millisievert) }

func Rads(v float64) RadiationDose { return quantity.New[Dose](v, Rad) }

func Rems(v float64) RadiationDose { return quantity.New[Dose](v, Rem) }
