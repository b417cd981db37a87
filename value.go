package flexbox

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by content/flex
	UnitFixed             // Absolute units in the caller's coordinate space
)

// Value represents a dimension that is either fixed or computed.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute dimension.
func Fixed(v float64) Value {
	return Value{Amount: v, Unit: UnitFixed}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
