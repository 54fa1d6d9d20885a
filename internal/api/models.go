package api

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
}

// LoginResponse carries the identity token returned by a login.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
