package service

import "errors"

var (
	ErrNilDependency   = errors.New("service dependency is nil")
	ErrPaymentDeclined = errors.New("payment was declined by provider")
)
