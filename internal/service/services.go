package service

import (
	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/payment"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/internal/store"
	"github.com/MKhiriev/go-secure-api/internal/utils"
)

type Services struct {
	UserService       UserService
	ProcessingService ProcessingService
	PaymentService    PaymentService
}

func NewServices(storages *store.Storages, gateway payment.Gateway, secretStore *secrets.Store, cfg config.App, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNilDependency
	}

	userService, err := NewUserService(storages.UserRepository, logger)
	if err != nil {
		return nil, err
	}

	paymentService, err := NewPaymentService(gateway, secretStore, utils.NewUUIDGenerator(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:       userService,
		ProcessingService: NewProcessingService(logger),
		PaymentService:    paymentService,
	}, nil
}
