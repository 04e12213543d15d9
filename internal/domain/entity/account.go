package entity

import "time"

// Role is the privilege level of an account.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

// Account is a registered user. Email is the natural key: the store enforces
// at most one account per email, and the authorization path looks accounts up
// by email only.
//
// Accounts carry no credentials; authentication is delegated to the external
// token issuer.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"displayName,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin treats any role other than admin (including unset) as standard.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
