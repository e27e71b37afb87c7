// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

// Kind is the internal reason a request failed.
type Kind int

const (
	// BodyTooLarge: the request body exceeded the size ceiling.
	BodyTooLarge Kind = iota + 1
	// DecodeFailed: the body is not valid JSON.
	DecodeFailed
	// InvalidFormat: the decoded body has the wrong shape.
	InvalidFormat
	// InvalidIdentifier: a path identifier is not a decimal number.
	InvalidIdentifier
	// InvalidAmount: a payment amount is missing or not a number.
	InvalidAmount
	// DomainFailure: a backend or service failed.
	DomainFailure
	// RouteNotFound: no route matches method and path.
	RouteNotFound
	// RateLimited: the client exceeded its request rate.
	RateLimited
)

// Kinds lists every Kind. Each must have an entry in the policy table.
func Kinds() []Kind {
	return []Kind{
		BodyTooLarge,
		DecodeFailed,
		InvalidFormat,
		InvalidIdentifier,
		InvalidAmount,
		DomainFailure,
		RouteNotFound,
		RateLimited,
	}
}

func (k Kind) String() string {
	switch k {
	case BodyTooLarge:
		return "body_too_large"
	case DecodeFailed:
		return "decode_failed"
	case InvalidFormat:
		return "invalid_format"
	case InvalidIdentifier:
		return "invalid_identifier"
	case InvalidAmount:
		return "invalid_amount"
	case DomainFailure:
		return "domain_failure"
	case RouteNotFound:
		return "route_not_found"
	case RateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}
