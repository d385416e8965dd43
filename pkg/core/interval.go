package core

import "math"

// Interval represents a closed range [Min, Max] of ray parameters or
// bounding box extents. An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

// Sentinel intervals. EmptyInterval contains nothing, UniverseInterval
// contains everything, UnitInterval is [0, 1].
var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	UnitInterval     = Interval{Min: 0, Max: 1}
)

// NewInterval creates the interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalFromIntervals creates the tightest interval enclosing both inputs
func NewIntervalFromIntervals(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether value lies in [Min, Max]
func (i Interval) Contains(value float64) bool {
	return i.Min <= value && value <= i.Max
}

// Surrounds reports whether value lies strictly inside (Min, Max)
func (i Interval) Surrounds(value float64) bool {
	return i.Min < value && value < i.Max
}

// Clamp limits value to [Min, Max]
func (i Interval) Clamp(value float64) float64 {
	if value < i.Min {
		return i.Min
	}
	if value > i.Max {
		return i.Max
	}
	return value
}

// Expand returns the interval widened by delta, split evenly on both sides
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Add returns the interval shifted by offset
func (i Interval) Add(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}
