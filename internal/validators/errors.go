package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrNilValue        = errors.New("nil value for validation")

	// ErrInvalidSettings is matched by any non-empty [Violations].
	ErrInvalidSettings = errors.New("invalid settings")

	ErrBlank          = errors.New("blank required field")
	ErrOutOfRange     = errors.New("numeric value out of range")
	ErrMalformedEmail = errors.New("malformed email address")
	ErrDomainMismatch = errors.New("email domain mismatch")
	ErrConversion     = errors.New("value conversion failed")
)
