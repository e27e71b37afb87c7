// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import "encoding/json"

const redacted = "[REDACTED]"

// Secret is a credential value that refuses to print itself.
//
// It is a plain string underneath so configuration loaders (env, JSON,
// mergo) can populate it without special handling.
type Secret string

// Reveal returns the raw secret value. Call it only at the point of use.
func (s Secret) Reveal() string {
	return string(s)
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s == ""
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v is redacted too.
func (s Secret) GoString() string {
	return redacted
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
