// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the limits and formats every inbound request
// must satisfy before it reaches business logic.
//
// Core concepts:
//   - Body size ceiling: request bodies are read incrementally and the read
//     is aborted as soon as the ceiling is crossed, so an oversized body is
//     never buffered in full.
//   - Shape: decoded payloads must be JSON objects whose re-encoded size
//     stays under the same ceiling.
//   - Formats: identifiers are decimal digits only; payment amounts are JSON
//     numbers.
//
// Every check returns an error that is a *failure.InternalFailure with the
// matching Kind, so handlers can pass it straight to failure.Respond.
// A nil error is the only "valid" result; callers must not continue on a
// non-nil error.
package validators

import (
	"net/http"

	"github.com/MKhiriev/go-secure-api/models"
)

// Validator is the set of request checks used by the HTTP handlers.
type Validator interface {
	// ReadBody reads r's body under the size ceiling.
	ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error)

	// Decode parses body as a single JSON value.
	Decode(body []byte) (any, error)

	// ValidateShape checks that v is a JSON object within the size ceiling.
	ValidateShape(v any) (models.Payload, error)

	// ValidateIdentifier checks that raw is a decimal identifier.
	ValidateIdentifier(raw string) (int64, error)

	// ValidateAmount extracts a numeric "amount" from v.
	ValidateAmount(v any) (models.PaymentRequest, error)
}
