// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/utils"
)

// Report writes the full failure to the request-scoped logger, which is the
// internal sink. Client errors are logged at warn level, server errors at
// error level.
func Report(ctx context.Context, err error, where string) {
	log := logger.FromContext(ctx)

	var f *InternalFailure
	if !errors.As(err, &f) {
		f = Wrap(DomainFailure, err, "unclassified error")
	}

	event := log.Warn()
	if Public(f.Kind).StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Stack().
		Err(f).
		Str("kind", f.Kind.String()).
		Str("detail", f.Detail).
		Str("where", where).
		Time("timestamp", time.Now().UTC()).
		Msg("request failed")
}

// Respond reports err and writes its public form as the response. It is the
// single exit for every failed request.
func Respond(w http.ResponseWriter, r *http.Request, err error, where string) {
	Report(r.Context(), err, where)

	public := Classify(err)
	if public.StatusCode == http.StatusRequestEntityTooLarge {
		w.Header().Set("Connection", "close")
	}

	if _, writeErr := utils.WriteJSON(w, public, public.StatusCode); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("where", where).Msg("failed to write error response")
	}
}
