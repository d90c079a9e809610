package utils

// ErrorResponse is the failure payload returned by every handler. Field is
// set when the failure is tied to one request field.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}
