package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/payment"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/internal/utils"
	"github.com/MKhiriev/go-secure-api/models"
)

const paymentProcessedMessage = "Payment processed successfully"

type paymentService struct {
	gateway     payment.Gateway
	secrets     *secrets.Store
	idGenerator utils.IDGenerator
	issuer      string
	tokenTTL    time.Duration

	logger *logger.Logger
}

func NewPaymentService(gateway payment.Gateway, secretStore *secrets.Store, idGenerator utils.IDGenerator, cfg config.App, logger *logger.Logger) (PaymentService, error) {
	switch {
	case gateway == nil:
		return nil, fmt.Errorf("%w: payment gateway", ErrNilDependency)
	case secretStore == nil:
		return nil, fmt.Errorf("%w: secret store", ErrNilDependency)
	case idGenerator == nil:
		return nil, fmt.Errorf("%w: id generator", ErrNilDependency)
	}

	return &paymentService{
		gateway:     gateway,
		secrets:     secretStore,
		idGenerator: idGenerator,
		issuer:      cfg.TokenIssuer,
		tokenTTL:    cfg.ChargeTokenTTL,
		logger:      logger,
	}, nil
}

// Charge signs a single-use charge token and submits the charge to the
// gateway with the provider API key. Neither secret is logged.
func (s *paymentService) Charge(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	log := logger.FromContext(ctx)

	charge := models.Charge{
		Reference: s.idGenerator.Generate(),
		Amount:    req.Amount,
		Currency:  req.Currency,
	}

	log.Info().
		Str("func", "*paymentService.Charge").
		Str("reference", charge.Reference).
		Msg("Processing payment")

	token, err := payment.SignChargeToken(s.issuer, charge, s.tokenTTL, s.secrets.SigningKey())
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("error signing charge %s: %w", charge.Reference, err)
	}
	charge.Token = token

	receipt, err := s.gateway.Charge(ctx, s.secrets.APIKey(), charge)
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("error charging %s: %w", charge.Reference, err)
	}
	if !receipt.Approved {
		return models.PaymentResult{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, charge.Reference)
	}

	return models.PaymentResult{Success: true, Message: paymentProcessedMessage}, nil
}
