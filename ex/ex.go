package ex

import "fmt"

// Error codes raised by ranges and cursors
const (
	InvalidArgument  = "invalid argument"
	EmptyRange       = "empty range"
	IndexOutOfBounds = "index out of bounds"
	InvalidState     = "invalid state"
)

// Sentinels for matching with errors.Is
var (
	ErrInvalidArgument  = Ex{Code: InvalidArgument}
	ErrEmptyRange       = Ex{Code: EmptyRange}
	ErrIndexOutOfBounds = Ex{Code: IndexOutOfBounds}
	ErrInvalidState     = Ex{Code: InvalidState}
)

// Ex is an error with a code, possibly an error, and a context map
type Ex struct {
	Code    string
	Err     error
	Context map[string]interface{}
}

func (ex Ex) Unwrap() error { return ex.Err }

// Is matches any Ex with the same code
func (ex Ex) Is(target error) bool {
	that, valid := target.(Ex)
	return valid && that.Code == ex.Code
}

func (ex Ex) String() string {
	if ex.Err == nil {
		return fmt.Sprintf("error: %v", ex.Code)
	}
	if len(ex.Context) == 0 {
		return fmt.Sprintf("error: %v: %v", ex.Code, ex.Err)
	}
	return fmt.Sprintf("error: %v: %v: %v", ex.Code, ex.Err, ex.Context)
}

func (ex Ex) Error() string {
	return ex.String()
}
