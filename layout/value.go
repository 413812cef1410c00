package layout

import "math"

// Undefined marks a dimension with no value. It is NaN, so it never compares
// equal to anything; use IsUndefined to test for it.
var Undefined = math.NaN()

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitPoint               // Absolute points
	UnitPercent             // Percentage of the parent's size
)

// Value represents a dimension that can be points, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns a Value representing an absolute number of points.
func Points(n float64) Value {
	return Value{Amount: n, Unit: UnitPoint}
}

// Percent returns a Value representing a percentage of the parent's size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value against the parent's size.
// Auto, and percentages of an undefined parent, resolve to Undefined.
func (v Value) Resolve(parent float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Amount
	case UnitPercent:
		if IsUndefined(parent) {
			return Undefined
		}
		return parent * v.Amount / 100.0
	default:
		return Undefined
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// PointValue returns the amount when the value is an absolute point value.
func (v Value) PointValue() (float64, bool) {
	if v.Unit != UnitPoint || IsUndefined(v.Amount) || math.IsInf(v.Amount, 0) {
		return 0, false
	}
	return v.Amount, true
}
