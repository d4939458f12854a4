package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Role is the capability class of a user, stored as lower-case text in users.type
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a stored or typed role name to a Role, ignoring case and padding.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleManager, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Rank orders roles so that admin > manager > customer. Unknown roles rank below customer.
func (r Role) Rank() int {
	switch r {
	case RoleCustomer:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// AtLeast reports whether r carries every capability of other
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

// Elevated is true for managers and admins
func (r Role) Elevated() bool {
	return r.AtLeast(RoleManager)
}

// ElevatedRoles lists the stored values that satisfy Elevated, for IN predicates.
func ElevatedRoles() []Role {
	return []Role{RoleManager, RoleAdmin}
}

func (r Role) String() string {
	return string(r)
}

// Value stores the role lower-cased
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// Scan accepts the mixed-case and char-padded values older rows carry
// ("Customer", "manager   ").
func (r *Role) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		*r = ""
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		// keep the raw value so callers see an unknown, unprivileged role
		*r = Role(strings.ToLower(strings.TrimSpace(s)))
		return nil
	}
	*r = parsed
	return nil
}

// GormDBDataType sizes the column per dialect; MSSQL has no unbounded varchar default.
func (Role) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlserver", "mssql":
		return "NVARCHAR(16)"
	case "sqlite":
		return "TEXT"
	}
	return "VARCHAR(16)"
}
