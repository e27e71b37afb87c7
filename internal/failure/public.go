// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import "net/http"

// PublicError is the only error representation ever serialized to a
// client. StatusCode is sent as the HTTP status, not in the body.
type PublicError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Hint       string `json:"message,omitempty"`
}

const (
	msgTooLarge        = "Request entity too large"
	msgInvalidData     = "Invalid request data"
	msgInvalidUserID   = "Invalid user ID"
	msgInvalidAmount   = "Invalid payment amount"
	msgGeneric         = "An error occurred while processing your request"
	hintGeneric        = "Please try again later or contact support"
	msgRouteNotFound   = "Route not found"
	msgTooManyRequests = "Too many requests"
)

// policy is the reviewed mapping from Kind to public response. Adding a Kind
// without an entry here fails TestPolicy_CoversEveryKind.
var policy = map[Kind]PublicError{
	BodyTooLarge:      {StatusCode: http.StatusRequestEntityTooLarge, Message: msgTooLarge},
	DecodeFailed:      {StatusCode: http.StatusBadRequest, Message: msgInvalidData},
	InvalidFormat:     {StatusCode: http.StatusBadRequest, Message: msgInvalidData},
	InvalidIdentifier: {StatusCode: http.StatusBadRequest, Message: msgInvalidUserID},
	InvalidAmount:     {StatusCode: http.StatusBadRequest, Message: msgInvalidAmount},
	DomainFailure:     {StatusCode: http.StatusInternalServerError, Message: msgGeneric, Hint: hintGeneric},
	RouteNotFound:     {StatusCode: http.StatusNotFound, Message: msgRouteNotFound},
	RateLimited:       {StatusCode: http.StatusTooManyRequests, Message: msgTooManyRequests},
}

// Public returns the public response for kind. Unknown kinds get the
// generic 500.
func Public(kind Kind) PublicError {
	if p, ok := policy[kind]; ok {
		return p
	}
	return policy[DomainFailure]
}

// Classify maps err to its public response. Only the Kind of err is used;
// detail and cause are discarded.
func Classify(err error) PublicError {
	return Public(KindOf(err))
}
