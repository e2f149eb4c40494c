package service

import "errors"

// Client-facing errors. The messages are part of the API contract and are
// returned verbatim in the response body.
var (
	ErrInvalidMovementType = errors.New("type must be IN or OUT")
	ErrInvalidMovement     = errors.New("Valid productId and positive quantity required")
	ErrProductNotFound     = errors.New("Product not found")
	ErrInsufficientStock   = errors.New("Insufficient stock")
	ErrNameRequired        = errors.New("Name is required")
	ErrStockImmutable      = errors.New("currentStock cannot be updated directly; record a transaction instead")
	ErrProductHasMovements = errors.New("Product has ledger entries and cannot be deleted")
)

// IsClientError reports whether err should surface as a 400 instead of a 500.
func IsClientError(err error) bool {
	for _, e := range []error{
		ErrInvalidMovementType,
		ErrInvalidMovement,
		ErrProductNotFound,
		ErrInsufficientStock,
		ErrNameRequired,
		ErrStockImmutable,
		ErrProductHasMovements,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return errors.As(err, &ValidationError{})
}

// ValidationError wraps a field-level validation failure with its client message.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}
