package dto

// ErrorResponse is the uniform error body for every failure status
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	// Remaining is set only for insufficient-seat rejections
	Remaining *int `json:"remaining,omitempty"`
}
