package dto

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
