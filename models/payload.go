package models

// Payload is a decoded JSON object received in a request body.
//
// It exists only for the lifetime of the request that decoded it and is
// never echoed back to the client or written to logs. Numbers inside a
// Payload are kept as json.Number.
type Payload map[string]any
