package models

// ParseResumeRequest represents request to parse resume content
// @Description Resume parsing request
type ParseResumeRequest struct {
	// RawText is nullable: a JSON null short-circuits to the empty record
	RawText *string `json:"raw_text" example:"John Doe\nSoftware Engineer\n5 years of Go and Python..."`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
