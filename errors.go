package fruitbook

import "fmt"

// ValidationError reports a rejected input: a missing required field, an empty
// required string, or a numeric value that is not positive and finite. It is
// always raised before any mutation takes place.
type ValidationError struct {
	Field  string // name of the offending field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// newValidationError is a convenience constructor used by order validation.
func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientStockError reports a sale that asks for more of a product than
// the warehouse holds. A product with no inventory entry at all is reported
// with a zero Available quantity.
type InsufficientStockError struct {
	Product   string
	Requested Quantity
	Available Quantity
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %q: requested %s kg, available %s kg",
		e.Product, e.Requested, e.Available)
}
