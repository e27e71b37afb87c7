// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` tags of its fields before it is used at startup.
//
// The first failing group decides the sentinel: [ErrMissingSecrets],
// [ErrInvalidServerConfigs], [ErrInvalidStorageConfigs] or
// [ErrInvalidAppConfigs]. Only field names are reported, never values.
func (cfg *StructuredConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
	}

	return fmt.Errorf("%w: %s", groupError(fieldErrs[0].StructNamespace()), strings.Join(fields, ", "))
}

func groupError(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "StructuredConfig.Secrets."):
		return ErrMissingSecrets
	case strings.HasPrefix(namespace, "StructuredConfig.Server."):
		return ErrInvalidServerConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Storage."):
		return ErrInvalidStorageConfigs
	default:
		return ErrInvalidAppConfigs
	}
}
