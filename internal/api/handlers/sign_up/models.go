package sign_up

// SignUpRequest HTTP request model
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
