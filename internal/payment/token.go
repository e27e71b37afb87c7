package payment

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/models"
)

// SignChargeToken creates a signed HMAC-SHA256 JWT authorizing a single
// charge.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the charge reference
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//   - amt / cur: the charged amount and currency
//
// Returns [ErrInvalidTokenParams] if issuer, the charge reference or
// signKey is empty, or ttl is not positive.
func SignChargeToken(issuer string, charge models.Charge, ttl time.Duration, signKey secrets.Secret) (models.ChargeToken, error) {
	if issuer == "" || charge.Reference == "" || ttl <= 0 || signKey.IsZero() {
		return models.ChargeToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.ChargeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        charge.Reference,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Amount:   charge.Amount,
		Currency: charge.Currency,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey.Reveal()))
	if err != nil {
		return models.ChargeToken{}, fmt.Errorf("error occurred during signing charge token: %w", err)
	}

	return models.ChargeToken{Token: token, SignedString: tokenString}, nil
}

// VerifyChargeToken validates tokenString and returns its claims.
//
// Validation includes:
//   - Signature verification with signKey (HS256 only)
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim check
//   - presence of the charge reference (jti)
func VerifyChargeToken(tokenString string, signKey secrets.Secret, issuer string) (*models.ChargeClaims, error) {
	claims := &models.ChargeClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey.Reveal()), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChargeToken, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: empty charge reference", ErrInvalidChargeToken)
	}

	return claims, nil
}
