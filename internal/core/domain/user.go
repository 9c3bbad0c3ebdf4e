package domain

import (
	"slices"
	"time"
)

// RoleUser is the default authority granted to every registered account.
const RoleUser = "ROLE_USER"

// User models a registered account. CreditCardLimit is nil until the user
// sets one.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	CreditCardLimit *float64  `json:"credit_card_limit,omitempty"`
	Roles           []string  `json:"roles"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Role is a named authority that can be attached to users.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Principal is the request-scoped authenticated identity established by the
// authentication middleware. It lives on a single request's context and is
// never shared across requests.
type Principal struct {
	Username string
	Roles    []string
}

func (p Principal) HasRole(name string) bool {
	return slices.Contains(p.Roles, name)
}
