package model

import (
	"time"
)

type Developer struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// DeveloperRef is the slice of a Developer embedded in client listings.
type DeveloperRef struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
}

type DeveloperProfile struct {
	Developer
	Counts DeveloperCounts `json:"_count"`
}

type DeveloperCounts struct {
	Clients int `db:"clients" json:"clients"`
	Tasks   int `db:"tasks" json:"tasks"`
	Reports int `db:"reports" json:"reports"`
}

type DeveloperCredential struct {
	DeveloperID  string    `db:"developer_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
