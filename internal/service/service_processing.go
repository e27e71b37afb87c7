package service

import (
	"context"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/models"
)

const statusSuccess = "success"

type processingService struct {
	logger *logger.Logger
}

func NewProcessingService(logger *logger.Logger) ProcessingService {
	return &processingService{logger: logger}
}

// Process acknowledges payload. Only the number of top-level fields is
// logged; field names and values may carry user data.
func (s *processingService) Process(ctx context.Context, payload models.Payload) (models.ProcessResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ProcessResult{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*processingService.Process").
		Int("fields", len(payload)).
		Msg("payload processed")

	return models.ProcessResult{Processed: true, Status: statusSuccess}, nil
}
