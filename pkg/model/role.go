package model

// Role is the access tier of an authenticated user.
// The zero value RoleNone means "no recognised role".
type Role int

const (
	// RoleNone is used for unauthenticated sessions and for any persisted
	// role string that is not one of the known variants.
	RoleNone Role = iota
	// RoleAdmin manages inventory and views reports.
	RoleAdmin
	// RoleCustomer browses and rents equipment.
	RoleCustomer
)

// Wire names of the roles as issued by the backend.
const (
	roleAdminName    = "admin"
	roleCustomerName = "customer"
)

// ParseRole maps a role string to a Role. Anything other than the exact
// strings "admin" and "customer" yields RoleNone.
func ParseRole(s string) Role {
	switch s {
	case roleAdminName:
		return RoleAdmin
	case roleCustomerName:
		return RoleCustomer
	default:
		return RoleNone
	}
}

// String returns the wire name of the role, or "" for RoleNone.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return roleAdminName
	case RoleCustomer:
		return roleCustomerName
	default:
		return ""
	}
}

// Valid reports whether r is one of the known variants.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// Home returns the root view of the role's view subtree.
// RoleNone has no home and returns "".
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleCustomer:
		return "/customer"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode
// to RoleNone rather than failing.
func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}
