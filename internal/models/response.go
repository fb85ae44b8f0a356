package models

// Response is the envelope every API response is wrapped in.
// swagger:model Response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error"`
}

// HealthResponse is the bare body of the health route.
// swagger:model HealthResponse
type HealthResponse struct {
	Success bool `json:"success"`
}

// ErrorBody carries a stable machine-readable code and a message.
// swagger:model ErrorBody
type ErrorBody struct {
	// example: NOT_FOUND
	Code string `json:"code"`
	// example: event not found
	Message string `json:"message"`
	// Per-field details for validation failures
	Fields []FieldError `json:"fields,omitempty"`
}

// IDResponse is returned by create, update and delete operations.
// swagger:model IDResponse
type IDResponse struct {
	ID int64 `json:"id"`
}
