package types

// String - string values
type String string

// ValueEquals compares strings
func (s String) ValueEquals(that Value) bool {
	thatString, valid := that.(String)
	return valid && s == thatString
}

func (s String) hashBytes() []byte {
	return append([]byte(s), '"')
}
