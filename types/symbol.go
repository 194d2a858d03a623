package types

// Symbol - names bound in an env
type Symbol struct {
	Name string
}

// NewSymbol builds a new symbol
func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// ValueEquals compares symbols
func (symbol Symbol) ValueEquals(that Value) bool {
	thatSymbol, valid := that.(Symbol)
	return valid && symbol.Name == thatSymbol.Name
}

func (symbol Symbol) hashBytes() []byte {
	return append([]byte(symbol.Name), '\'')
}
