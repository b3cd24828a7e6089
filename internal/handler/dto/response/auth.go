package response

import "time"

type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
