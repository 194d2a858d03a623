package types

// Function - builtins of values to value
type Function struct {
	Name string
	Fn   func(...Value) (Value, error)
}
