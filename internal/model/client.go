package model

import (
	"time"
)

type Client struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	ContactName *string    `db:"contact_name" json:"contactName"`
	Email       *string    `db:"email" json:"email"`
	Mobile      *string    `db:"mobile" json:"mobile"`
	TotalBudget *float64   `db:"total_budget" json:"totalBudget"`
	AmountPaid  *float64   `db:"amount_paid" json:"amountPaid"`
	StartDate   *time.Time `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// ClientWithDevelopers is a Client plus its assigned developers.
type ClientWithDevelopers struct {
	Client
	Developers []DeveloperRef `json:"developers"`
}

type CreateClientParams struct {
	ID          string
	Name        string
	ContactName *string
	Email       *string
	Mobile      *string
	TotalBudget *float64
	AmountPaid  *float64
	StartDate   *time.Time
	EndDate     *time.Time
	// DeveloperIDs are linked in the same transaction as the insert.
	DeveloperIDs []string
}

type UpdateClientParams struct {
	NewID       *string
	Name        *string
	ContactName *string
	Email       *string
	Mobile      *string
	TotalBudget *float64
	AmountPaid  *float64
	StartDate   *time.Time
	EndDate     *time.Time
	// DeveloperIDs replaces the assigned set when non-nil.
	DeveloperIDs []string
}
