// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/MKhiriev/go-secure-api/internal/failure"
	"github.com/MKhiriev/go-secure-api/models"
)

// FieldAmount and FieldCurrency are the payload keys read by ValidateAmount.
const (
	FieldAmount   = "amount"
	FieldCurrency = "currency"
)

var identifierPattern = regexp.MustCompile(`^[0-9]+$`)

// Decode parses body as exactly one JSON value. Numbers are decoded as
// json.Number so their type can be checked without loss.
func Decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, failure.Wrap(failure.DecodeFailed, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "json decode failed")
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, failure.Wrap(failure.DecodeFailed, ErrTrailingData, "json decode failed")
	}

	return v, nil
}

// ValidateShape checks that v is a JSON object and that its encoded form is
// at most maxBytes long. See encodedSize for how the length is measured.
func ValidateShape(v any, maxBytes int64) (models.Payload, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, failure.Wrap(failure.InvalidFormat, ErrNotAnObject, fmt.Sprintf("payload is %T", v))
	}

	size, err := encodedSize(obj)
	if err != nil {
		return nil, failure.Wrap(failure.InvalidFormat, err, "payload cannot be re-encoded")
	}
	if size > maxBytes {
		return nil, failure.Wrap(failure.InvalidFormat, ErrPayloadTooLarge, fmt.Sprintf("encoded payload is %d bytes", size))
	}

	return models.Payload(obj), nil
}

// ValidateIdentifier checks that raw consists only of ASCII digits and fits
// in an int64.
func ValidateIdentifier(raw string) (int64, error) {
	if !identifierPattern.MatchString(raw) {
		return 0, failure.Wrap(failure.InvalidIdentifier, ErrInvalidIdentifier, "identifier rejected by pattern")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.Wrap(failure.InvalidIdentifier, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err), "identifier out of range")
	}

	return id, nil
}

// ValidateAmount extracts the payment request from v. The "amount" field
// must be present, a JSON number, finite and non-zero. An optional
// "currency" must be a string.
func ValidateAmount(v any) (models.PaymentRequest, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrNotAnObject, fmt.Sprintf("payment payload is %T", v))
	}

	raw, ok := obj[FieldAmount]
	if !ok || raw == nil {
		return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrMissingAmount, "amount rejected")
	}

	number, ok := raw.(json.Number)
	if !ok {
		return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrAmountNotNumber, fmt.Sprintf("amount is %T", raw))
	}

	amount, err := number.Float64()
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrAmountNotNumber, "amount out of range")
	}
	if amount == 0 {
		return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrZeroAmount, "amount rejected")
	}

	request := models.PaymentRequest{Amount: amount}
	if cur, ok := obj[FieldCurrency]; ok && cur != nil {
		currency, ok := cur.(string)
		if !ok {
			return models.PaymentRequest{}, failure.Wrap(failure.InvalidAmount, ErrInvalidCurrency, fmt.Sprintf("currency is %T", cur))
		}
		request.Currency = currency
	}

	return request, nil
}
