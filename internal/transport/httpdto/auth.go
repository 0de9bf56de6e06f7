package httpdto

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Handle          string `json:"handle"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the minted bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
