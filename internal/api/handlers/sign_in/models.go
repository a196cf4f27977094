package sign_in

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
