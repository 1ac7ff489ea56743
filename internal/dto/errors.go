package dto

// ErrorResponse is the error body shape for all API errors. Field is only
// set for validation errors that can be attributed to a single input field.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
