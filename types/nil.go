package types

// Nil - the absent value
type Nil struct{}

// ValueEquals compares nils
func (Nil) ValueEquals(that Value) bool {
	_, valid := that.(Nil)
	return valid
}

func (Nil) hashBytes() []byte {
	return []byte{0}
}
