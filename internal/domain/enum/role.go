package enum

// Role represents a user's role within an outlet
type Role string

const (
	RoleSuperuser Role = "SUPERUSER"
	RoleOwner     Role = "OWNER"
	RoleAdmin     Role = "ADMIN"
	RoleCashier   Role = "CASHIER"
	RoleChef      Role = "CHEF"
	RoleWaiter    Role = "WAITER"
)

// IsValid reports whether the role is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperuser, RoleOwner, RoleAdmin, RoleCashier, RoleChef, RoleWaiter:
		return true
	}
	return false
}

// CanManageOutlets reports whether the role may create or edit outlets
func (r Role) CanManageOutlets() bool {
	return r == RoleSuperuser || r == RoleOwner
}
