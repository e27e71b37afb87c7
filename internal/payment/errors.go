package payment

import "errors"

var (
	// ErrInvalidTokenParams is returned when a charge token is requested
	// with an empty issuer, reference, signing key or a zero lifetime.
	ErrInvalidTokenParams = errors.New("invalid params for generating charge token")

	// ErrInvalidChargeToken is returned when a charge token fails signature,
	// issuer or expiry validation.
	ErrInvalidChargeToken = errors.New("invalid charge token")

	// ErrChargeMismatch is returned when the signed claims do not match the
	// submitted charge.
	ErrChargeMismatch = errors.New("charge does not match its token")

	// ErrUnauthorized is returned when the provider API key is missing.
	ErrUnauthorized = errors.New("payment provider rejected credentials")
)
