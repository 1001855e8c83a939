package dto

type HealthResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// InternalErrorResponse is the uniform 5xx body produced by the central
// error handler. Intentional 4xx errors use {"detail": ...} instead.
type InternalErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestId string `json:"request_id"`
}
