package models

// APIError is the JSON error envelope returned by the notification
// endpoints, mirroring the {"error": "..."} shape the web client expects.
type APIError struct {
	Error string `json:"error"`
}

// APIMessage is the JSON success envelope of the notification endpoints.
type APIMessage struct {
	Message string `json:"message"`
}

// LoginResponse is the body returned by a successful login. The session
// token itself travels in the Authorization response header.
type LoginResponse struct {
	// User is the authenticated account without credential fields.
	User User `json:"user"`
}
