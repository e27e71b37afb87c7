package validators

import (
	"net/http"

	"github.com/MKhiriev/go-secure-api/models"
)

// RequestValidator implements [Validator] with a fixed body size ceiling.
type RequestValidator struct {
	maxBodySize int64
}

// NewRequestValidator returns a Validator enforcing maxBodySize. A
// non-positive value selects DefaultMaxBodySize.
func NewRequestValidator(maxBodySize int64) Validator {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &RequestValidator{maxBodySize: maxBodySize}
}

func (v *RequestValidator) ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return ReadBody(w, r, v.maxBodySize)
}

func (v *RequestValidator) Decode(body []byte) (any, error) {
	return Decode(body)
}

func (v *RequestValidator) ValidateShape(obj any) (models.Payload, error) {
	return ValidateShape(obj, v.maxBodySize)
}

func (v *RequestValidator) ValidateIdentifier(raw string) (int64, error) {
	return ValidateIdentifier(raw)
}

func (v *RequestValidator) ValidateAmount(obj any) (models.PaymentRequest, error) {
	return ValidateAmount(obj)
}
