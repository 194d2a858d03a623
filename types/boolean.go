package types

// Boolean - boolean values
type Boolean bool

// ValueEquals compares booleans
func (boolean Boolean) ValueEquals(that Value) bool {
	thatBoolean, valid := that.(Boolean)
	return valid && boolean == thatBoolean
}

func (boolean Boolean) hashBytes() []byte {
	if bool(boolean) {
		return []byte{1}
	}
	return []byte{2}
}
