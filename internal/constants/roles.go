package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role is the dashboard role an identity signs in with.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleRaider Role = "raider"
)

// Stringer ­– convenient for fmt / logs
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the two dashboard roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRaider
}

// ParseRole maps a form toggle value onto a Role, defaulting to admin like the login screen.
func ParseRole(s string) Role {
	if Role(s) == RoleRaider {
		return RoleRaider
	}
	return RoleAdmin
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
