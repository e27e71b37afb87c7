package models

// PaymentRequest is the validated input of a payment submission.
type PaymentRequest struct {
	// Amount is the numeric amount taken from the "amount" field.
	Amount float64

	// Currency is the optional ISO currency code; empty means the
	// provider default.
	Currency string
}

// Charge is what the payment service sends to the payment gateway.
type Charge struct {
	// Reference is a unique, server-generated identifier of the charge.
	Reference string

	// Amount and Currency are copied from the PaymentRequest.
	Amount   float64
	Currency string

	// Token is a signed ChargeToken binding Reference and Amount.
	Token ChargeToken
}

// ChargeReceipt is the gateway's acknowledgement of a Charge.
type ChargeReceipt struct {
	Reference string
	Approved  bool
}
