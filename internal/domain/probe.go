package domain

// ProbeResult is the raw outcome of a successful connectivity probe.
type ProbeResult struct {
	Status  int
	Headers map[string]string
}

// PingResult is the outcome of a connectivity check as reported to the user.
// Status is zero when no response was received.
type PingResult struct {
	Status  int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
}
