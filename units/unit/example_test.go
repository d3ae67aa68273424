package unit_test

import (
	"fmt"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

func ExamplePlan() {
	meter := unit.New(dimension.Length{})
	foot := unit.Derive(meter, rational.New(381, 1250))

	conv, err := unit.Plan(foot, meter)
	if err != nil {
		panic(err)
	}

	fmt.Println(conv.Kind())
	fmt.Println(conv.Apply(10))
	// Output:
	// linear
	// 3.048
}

func ExampleCompound() {
	kilogram := unit.New(dimension.Mass{})
	meter := unit.New(dimension.Length{})
	second := unit.New(dimension.Time{})

	newton := unit.Compound(kilogram, meter, unit.Invert(unit.Squared(second)))

	fmt.Println(newton)
	// Output: 1 m·kg·s^-2
}
