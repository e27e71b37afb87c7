// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payment contains the payment provider boundary used by the
// payment service.
//
// A charge travels to the provider together with the API key and a signed
// charge token (HS256 JWT) that binds the charge reference to its amount.
// The only provider shipped here is [StubGateway], which verifies both and
// approves the charge without contacting anything external.
package payment

import (
	"context"

	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_gateway_mock.go -package=mock

// Gateway submits charges to a payment provider.
type Gateway interface {
	// Charge submits charge, authenticating with apiKey. A non-nil error
	// means the charge was not accepted.
	Charge(ctx context.Context, apiKey secrets.Secret, charge models.Charge) (models.ChargeReceipt, error)
}
