// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// InternalFailure is the full-fidelity description of a failed request.
// It never crosses the response boundary; see [Classify].
type InternalFailure struct {
	Kind   Kind
	Detail string
	Cause  error
}

// New creates an InternalFailure without an underlying error. A stack is
// captured at the call site.
func New(kind Kind, detail string) *InternalFailure {
	return &InternalFailure{
		Kind:   kind,
		Detail: detail,
		Cause:  pkgerrors.New(detail),
	}
}

// Wrap creates an InternalFailure around cause, capturing a stack at the
// call site. A nil cause behaves like [New].
func Wrap(kind Kind, cause error, detail string) *InternalFailure {
	if cause == nil {
		return New(kind, detail)
	}

	return &InternalFailure{
		Kind:   kind,
		Detail: detail,
		Cause:  pkgerrors.WithStack(cause),
	}
}

func (f *InternalFailure) Error() string {
	if f.Cause == nil || f.Cause.Error() == f.Detail {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}
	return fmt.Sprintf("%s: %s: %v", f.Kind, f.Detail, f.Cause)
}

func (f *InternalFailure) Unwrap() error {
	return f.Cause
}

// KindOf returns the Kind carried by err. Errors that are not an
// InternalFailure are treated as [DomainFailure].
func KindOf(err error) Kind {
	var f *InternalFailure
	if errors.As(err, &f) {
		return f.Kind
	}
	return DomainFailure
}
