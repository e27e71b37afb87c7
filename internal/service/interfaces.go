// Package service holds the business operations behind the HTTP handlers.
//
// Handlers validate input before calling a service, so services receive
// only well-formed values. A service error is always an internal failure
// from the caller's point of view: it is logged in full and answered with
// the generic 500 body.
package service

import (
	"context"

	"github.com/MKhiriev/go-secure-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService resolves users for GET /api/user/{id}.
type UserService interface {
	// GetUser returns the user with id, or nil when none exists.
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// ProcessingService accepts bulk payloads for POST /api/process.
type ProcessingService interface {
	Process(ctx context.Context, payload models.Payload) (models.ProcessResult, error)
}

// PaymentService charges validated payment requests for POST /api/payment.
type PaymentService interface {
	Charge(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error)
}
