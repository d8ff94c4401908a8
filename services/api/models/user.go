package models

import "time"

// User is an account known from the identity provider. ID is the provider's open id.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         *string   `json:"name" db:"name"`
	Email        *string   `json:"email" db:"email"`
	LoginMethod  *string   `json:"loginMethod" db:"login_method"`
	Role         string    `json:"role" db:"role"`
	Ativo        bool      `json:"ativo" db:"ativo"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	LastSignedIn time.Time `json:"lastSignedIn" db:"last_signed_in"`
}

// IsManager reports whether the user may run administrative operations.
func (u *User) IsManager() bool {
	return u != nil && (u.Role == "admin" || u.Role == "gestor")
}

// UserIdentity is what a session token says about its bearer.
type UserIdentity struct {
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
}
