package models

// User is a registered account. Username and email are unique across all users.
type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
}
