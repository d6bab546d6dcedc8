package budget

import "fmt"

// OutOfRangeError signals that a budget plan field is outside its documented
// bounds.
type OutOfRangeError struct {
	Field string
	Min   float64
	Max   float64
	Value float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}
