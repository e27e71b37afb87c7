// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"errors"
	"fmt"
)

// ErrMissingSecret is returned by [New] when any of the required secrets is
// empty. The server must not start without all of them.
var ErrMissingSecret = errors.New("required secret is not set")

// Store is the process-wide, read-only set of credentials.
//
// It has no setters and its fields are unexported, so once built by [New]
// it can be shared between request goroutines without locking.
type Store struct {
	dbPassword Secret
	apiKey     Secret
	signingKey Secret
}

// New builds a Store. It fails if any secret is empty.
func New(dbPassword, apiKey, signingKey Secret) (*Store, error) {
	var missing []error
	if dbPassword.IsZero() {
		missing = append(missing, fmt.Errorf("%w: db password", ErrMissingSecret))
	}
	if apiKey.IsZero() {
		missing = append(missing, fmt.Errorf("%w: api key", ErrMissingSecret))
	}
	if signingKey.IsZero() {
		missing = append(missing, fmt.Errorf("%w: signing key", ErrMissingSecret))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	return &Store{
		dbPassword: dbPassword,
		apiKey:     apiKey,
		signingKey: signingKey,
	}, nil
}

// DBPassword returns the database password.
func (s *Store) DBPassword() Secret {
	return s.dbPassword
}

// APIKey returns the payment provider API key.
func (s *Store) APIKey() Secret {
	return s.apiKey
}

// SigningKey returns the key used to sign internal tokens.
func (s *Store) SigningKey() Secret {
	return s.signingKey
}
