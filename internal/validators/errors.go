package validators

import "errors"

// Sentinel errors wrapped into the failures returned by this package.
// Callers can match them with [errors.Is].
var (
	ErrBodyTooLarge      = errors.New("request body exceeds size limit")
	ErrBodyRead          = errors.New("failed to read request body")
	ErrInvalidJSON       = errors.New("request body is not valid JSON")
	ErrTrailingData      = errors.New("request body has data after the JSON value")
	ErrNotAnObject       = errors.New("payload is not a JSON object")
	ErrPayloadTooLarge   = errors.New("encoded payload exceeds size limit")
	ErrInvalidIdentifier = errors.New("identifier is not a decimal number")
	ErrMissingAmount     = errors.New("amount is missing")
	ErrAmountNotNumber   = errors.New("amount is not a number")
	ErrZeroAmount        = errors.New("amount is zero")
	ErrInvalidCurrency   = errors.New("currency is not a string")
)
