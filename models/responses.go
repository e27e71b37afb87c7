package models

// Capabilities is the body of GET /. It lists route names only.
type Capabilities struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// UserResponse is the body of GET /api/user/{id}. User is null when no row
// matches the identifier.
type UserResponse struct {
	User *User `json:"user"`
}

// ProcessResult is the body of a successful POST /api/process.
// It never includes any part of the submitted payload.
type ProcessResult struct {
	Processed bool   `json:"processed"`
	Status    string `json:"status"`
}

// PaymentResult is the body of a successful POST /api/payment.
type PaymentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
