package dto

// UserOutput carries the public user fields. The password hash never leaves
// the domain layer.
type UserOutput struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}
