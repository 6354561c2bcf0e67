package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Events   ComponentHealthStatus `json:"events"`
}

func DownStatus(err error) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusDown,
		Details: map[string]string{"message": err.Error()},
	}
}

func UpStatus(details map[string]string) ComponentHealthStatus {
	if details == nil {
		details = make(map[string]string)
	}
	details["message"] = string(StatusUp)
	return ComponentHealthStatus{Status: StatusUp, Details: details}
}
