package payment

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/models"
)

const (
	testIssuer = "test-issuer"
	testKey    = secrets.Secret("signing-key")
)

func signedCharge(t *testing.T, ref string, amount float64) models.Charge {
	t.Helper()
	charge := models.Charge{Reference: ref, Amount: amount, Currency: "EUR"}
	token, err := SignChargeToken(testIssuer, charge, time.Minute, testKey)
	require.NoError(t, err)
	charge.Token = token
	return charge
}

func TestSignChargeToken_Claims(t *testing.T) {
	charge := signedCharge(t, "ref-1", 12.5)

	require.NotEmpty(t, charge.Token.SignedString)
	claims, ok := charge.Token.Claims.(*models.ChargeClaims)
	require.True(t, ok)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "ref-1", claims.ID)
	assert.InDelta(t, 12.5, claims.Amount, 1e-9)
	assert.Equal(t, "EUR", claims.Currency)
	assert.NotContains(t, charge.Token.SignedString, testKey.Reveal())
}

func TestSignChargeToken_InvalidParams(t *testing.T) {
	charge := models.Charge{Reference: "ref", Amount: 1}
	tests := []struct {
		name   string
		issuer string
		charge models.Charge
		ttl    time.Duration
		key    secrets.Secret
	}{
		{"empty issuer", "", charge, time.Minute, testKey},
		{"empty reference", testIssuer, models.Charge{Amount: 1}, time.Minute, testKey},
		{"zero ttl", testIssuer, charge, 0, testKey},
		{"empty key", testIssuer, charge, time.Minute, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignChargeToken(tt.issuer, tt.charge, tt.ttl, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestVerifyChargeToken(t *testing.T) {
	charge := signedCharge(t, "ref-2", 3)

	claims, err := VerifyChargeToken(charge.Token.SignedString, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "ref-2", claims.ID)

	_, err = VerifyChargeToken(charge.Token.SignedString, "other-key", testIssuer)
	assert.ErrorIs(t, err, ErrInvalidChargeToken)

	_, err = VerifyChargeToken(charge.Token.SignedString, testKey, "other-issuer")
	assert.ErrorIs(t, err, ErrInvalidChargeToken)

	_, err = VerifyChargeToken("not.a.token", testKey, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidChargeToken)
}

func TestVerifyChargeToken_Expired(t *testing.T) {
	claims := &models.ChargeClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ID:        "ref",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey.Reveal()))
	require.NoError(t, err)

	_, err = VerifyChargeToken(signed, testKey, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidChargeToken)
}

func TestVerifyChargeToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &models.ChargeClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ID:        "ref",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyChargeToken(signed, testKey, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidChargeToken)
}

func TestStubGateway_Charge(t *testing.T) {
	gw := NewStubGateway(testKey, testIssuer, logger.Nop())
	charge := signedCharge(t, "ref-3", 99.99)

	receipt, err := gw.Charge(context.Background(), "api-key", charge)

	require.NoError(t, err)
	assert.Equal(t, models.ChargeReceipt{Reference: "ref-3", Approved: true}, receipt)
}

func TestStubGateway_Rejections(t *testing.T) {
	gw := NewStubGateway(testKey, testIssuer, logger.Nop())

	t.Run("missing api key", func(t *testing.T) {
		_, err := gw.Charge(context.Background(), "", signedCharge(t, "ref", 1))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("tampered amount", func(t *testing.T) {
		charge := signedCharge(t, "ref", 1)
		charge.Amount = 1000
		_, err := gw.Charge(context.Background(), "api-key", charge)
		assert.ErrorIs(t, err, ErrChargeMismatch)
	})

	t.Run("swapped reference", func(t *testing.T) {
		charge := signedCharge(t, "ref", 1)
		charge.Reference = "other"
		_, err := gw.Charge(context.Background(), "api-key", charge)
		assert.ErrorIs(t, err, ErrChargeMismatch)
	})

	t.Run("unsigned charge", func(t *testing.T) {
		_, err := gw.Charge(context.Background(), "api-key", models.Charge{Reference: "ref", Amount: 1})
		assert.ErrorIs(t, err, ErrInvalidChargeToken)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := gw.Charge(ctx, "api-key", signedCharge(t, "ref", 1))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
