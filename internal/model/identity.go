package model

// Identity is an authenticated caller as carried by an access token.
type Identity struct {
	Email string
	Name  string
	Role  Role
}
