package model

// GoogleProfile is the slice of the Google userinfo payload kept on a
// user record after login.
type GoogleProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
