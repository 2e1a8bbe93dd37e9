package service

// SignUpParams is the validated signup input.
type SignUpParams struct {
	FullName string
	Username string
	Email    string
	Password string // raw; hashed before persistence
}

// ProfileParams carries the fields a profile update overwrites. The username
// itself is the record key and is never changed.
type ProfileParams struct {
	FullName string
	Email    string
	Password string // raw; hashed before persistence
}
