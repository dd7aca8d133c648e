package entities

// ServiceStatus describes the health of one backing service
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is the payload for GET /healthCheck
type HealthCheckResponse struct {
	Status       string                   `json:"status"`
	Uptime       string                   `json:"uptime"`
	ResponseTime string                   `json:"response_time"`
	Services     map[string]ServiceStatus `json:"services"`
}
