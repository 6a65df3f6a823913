package models

// ErrorResponse is the envelope for failures produced before any broker call
// is attempted (bad input, unknown route). It never carries upstream detail.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewError(msg string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   msg,
	}
}

// ServiceInfo is the descriptor returned from the root route.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	CORS    string `json:"cors"`
}
