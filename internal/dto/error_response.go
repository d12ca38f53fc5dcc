package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error         bool     `json:"error"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// NewErrorResponse builds an ErrorResponse.
func NewErrorResponse(message string, missingFields ...string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message, MissingFields: missingFields}
}
