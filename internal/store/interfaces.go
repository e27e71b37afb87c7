// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the user backend consulted by GET /api/user/{id}.
//
// Two implementations exist:
//   - an in-memory repository, the default, which holds no rows unless it is
//     seeded;
//   - a SQL repository over database/sql, backed by PostgreSQL (pgx) or
//     SQLite, whose lookup is always a parameterized query built with
//     squirrel.
//
// Repository errors are sentinel values from this package wrapped with
// context; callers match them with [errors.Is]. Driver messages stay in the
// wrapped chain and must only ever reach the log.
package store

import (
	"context"

	"github.com/MKhiriev/go-secure-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository looks users up by numeric identifier.
type UserRepository interface {
	// FindUserByID returns the user with the given id, or (nil, nil) when no
	// row matches.
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}
