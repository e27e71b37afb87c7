package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// ChargeClaims is the claim set of a ChargeToken. The charge reference is
// carried in the standard "jti" claim.
type ChargeClaims struct {
	jwt.RegisteredClaims

	// Amount is the charged amount, signed so the gateway can detect
	// tampering between service and provider.
	Amount float64 `json:"amt"`

	// Currency is the charged currency, if any.
	Currency string `json:"cur,omitempty"`
}

// ChargeToken wraps a signed JWT that authorizes a single charge.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature). It is handed to the payment gateway only and
// never included in a response body or a log entry.
type ChargeToken struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String hides the signed token from formatted output.
// It implements the [fmt.Stringer] interface.
func (t ChargeToken) String() string {
	return "[charge token]"
}
