package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeleteResponse confirms a removal
type DeleteResponse struct {
	Message       string `json:"message"`
	ProductID     uint64 `json:"prd_id,omitempty"`
	TransactionID uint64 `json:"trd_id,omitempty"`
}

// ServiceInfoResponse is returned by the root endpoint
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthResponse reports liveness of the service and its store
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
