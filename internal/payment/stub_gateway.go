package payment

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/models"
)

// StubGateway is an in-process [Gateway] that approves every well-formed
// charge. It checks the API key is present and that the charge token was
// signed with the shared key for exactly this charge.
type StubGateway struct {
	signingKey secrets.Secret
	issuer     string
	logger     *logger.Logger
}

// NewStubGateway returns a StubGateway that trusts tokens signed with
// signingKey by issuer.
func NewStubGateway(signingKey secrets.Secret, issuer string, log *logger.Logger) *StubGateway {
	log.Debug().Msg("creating stub payment gateway")
	return &StubGateway{
		signingKey: signingKey,
		issuer:     issuer,
		logger:     log,
	}
}

// Charge implements [Gateway].
func (g *StubGateway) Charge(ctx context.Context, apiKey secrets.Secret, charge models.Charge) (models.ChargeReceipt, error) {
	if err := ctx.Err(); err != nil {
		return models.ChargeReceipt{}, err
	}

	if apiKey.IsZero() {
		return models.ChargeReceipt{}, ErrUnauthorized
	}

	claims, err := VerifyChargeToken(charge.Token.SignedString, g.signingKey, g.issuer)
	if err != nil {
		return models.ChargeReceipt{}, err
	}

	if claims.ID != charge.Reference || claims.Amount != charge.Amount || claims.Currency != charge.Currency {
		return models.ChargeReceipt{}, fmt.Errorf("%w: reference %s", ErrChargeMismatch, charge.Reference)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*StubGateway.Charge").
		Str("reference", charge.Reference).
		Msg("charge approved")

	return models.ChargeReceipt{Reference: charge.Reference, Approved: true}, nil
}
