package units

import (
	"time"

	"github.com/LerianStudio/lib-units/v2/units/dimension"
	"github.com/LerianStudio/lib-units/v2/units/quantity"
	"github.com/LerianStudio/lib-units/v2/units/rational"
	"github.com/LerianStudio/lib-units/v2/units/unit"
)

// Time is a quantity of duration.
type Time = quantity.Quantity[dimension.Time]

var (
	Second      = unit.New(dimension.Time{})
	Nanosecond  = unit.Nano(Second)
	Microsecond = unit.Micro(Second)
	Millisecond = unit.Milli(Second)
	Minute      = unit.Derive(Second, rational.FromInt(60))
	Hour        = unit.Derive(Minute, rational.FromInt(60))
	Day         = unit.Derive(Hour, rational.FromInt(24))
	Week        = unit.Derive(Day, rational.FromInt(7))
	Year        = unit.Derive(Day, rational.FromInt(365))
)

func Seconds(v float64) Time { return quantity.New[dimension.Time](v, Second) }

func Nanoseconds(v float64) Time { return quantity.New[dimension.Time](v, Nanosecond) }

func Microseconds(v float64) Time { return quantity.New[dimension.Time](v, Microsecond) }

func Milliseconds(v float64) Time { return quantity.New[dimension.Time](v, Millisecond) }

func Minutes(v float64) Time { return quantity.New[dimension.Time](v, Minute) }

func Hours(v float64) Time { return quantity.New[dimension.Time](v, Hour) }

func Days(v float64) Time { return quantity.New[dimension.Time](v, Day) }

func Weeks(v float64) Time { return quantity.New[dimension.Time](v, Week) }

func Years(v float64) Time { return quantity.New[dimension.Time](v, Year) }

// FromDuration converts a time.Duration into a Time quantity carried in
// nanoseconds.
func FromDuration(d time.Duration) Time { return Nanoseconds(float64(d.Nanoseconds())) }

// Duration converts a Time quantity into a time.Duration, truncating toward
// zero at nanosecond resolution.
func Duration(t Time) time.Duration { return time.Duration(t.In(Nanosecond)) }
