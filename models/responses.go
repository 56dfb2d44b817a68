package models

// MessageResponse is the body of the liveness endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// DBVersionResponse carries the version string reported by the database.
type DBVersionResponse struct {
	DBVersion string `json:"db_version"`
}

// ErrorResponse reports a failure as data. The HTTP status stays 200 for
// endpoints that surface backend errors this way.
type ErrorResponse struct {
	Error string `json:"error"`
}
