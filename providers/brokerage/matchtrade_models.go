package brokerage

import "net/http"

// RelayResult is the normalized outcome of one account-creation call to the
// broker. It serializes directly as the response envelope returned to clients.
type RelayResult struct {
	Success    bool        `json:"success"`
	StatusCode *int        `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// HTTPStatus maps the result onto the status returned to the caller. A result
// with no upstream status (timeout, connection failure) always maps to 500;
// this is the single place that default is applied.
func (r *RelayResult) HTTPStatus() int {
	if r.Success {
		return http.StatusOK
	}
	if r.StatusCode != nil {
		return *r.StatusCode
	}
	return http.StatusInternalServerError
}

func failure(reason string) *RelayResult {
	return &RelayResult{
		Success:    false,
		StatusCode: nil,
		Error:      reason,
	}
}
