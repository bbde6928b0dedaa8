package model

// Principal is the caller behind a verified session.
type Principal struct {
	Role Role
	ID   string
}
