package domain

// PermissionSet is the fixed bundle of capability flags associated with a role.
// It is recomputed from the role on every check and never persisted.
type PermissionSet struct {
	CanManageUsers      bool `json:"canManageUsers"`
	CanManageProducts   bool `json:"canManageProducts"`
	CanManageOrders     bool `json:"canManageOrders"`
	CanManageSettings   bool `json:"canManageSettings"`
	CanViewAllStats     bool `json:"canViewAllStats"`
	CanManageStock      bool `json:"canManageStock"`
	CanManageCategories bool `json:"canManageCategories"`
	CanDeleteProducts   bool `json:"canDeleteProducts"`
	CanRefundOrders     bool `json:"canRefundOrders"`
	CanExportData       bool `json:"canExportData"`
}

// rolePermissions is the single source of truth for capability checks.
// The table is total: every role has an entry, and lookups for anything
// else fall back to the customer entry (least privilege, fail closed).
var rolePermissions = map[Role]PermissionSet{
	RoleAdmin: {
		CanManageUsers:      true,
		CanManageProducts:   true,
		CanManageOrders:     true,
		CanManageSettings:   true,
		CanViewAllStats:     true,
		CanManageStock:      true,
		CanManageCategories: true,
		CanDeleteProducts:   true,
		CanRefundOrders:     true,
		CanExportData:       true,
	},
	RoleManager: {
		CanManageProducts:   true,
		CanManageOrders:     true,
		CanManageStock:      true,
		CanManageCategories: true,
	},
	RoleCustomer:    {},
	RoleB2BCustomer: {},
}

// HasRole reports whether role is one of the required roles.
// An empty role always yields false.
func HasRole(role Role, required ...Role) bool {
	if role == "" {
		return false
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role is ADMIN.
func IsAdmin(role Role) bool { return HasRole(role, RoleAdmin) }

// IsManager reports whether the role is MANAGER.
func IsManager(role Role) bool { return HasRole(role, RoleManager) }

// IsAdminOrManager reports whether the role is ADMIN or MANAGER.
func IsAdminOrManager(role Role) bool { return HasRole(role, RoleAdmin, RoleManager) }

// IsB2BCustomer reports whether the role is B2B_CUSTOMER.
func IsB2BCustomer(role Role) bool { return HasRole(role, RoleB2BCustomer) }

// CanAccessAdmin is the front-door gate for the entire back office.
func CanAccessAdmin(role Role) bool { return IsAdminOrManager(role) }

// CanAccessB2B gates the wholesale portal.
func CanAccessB2B(role Role) bool { return IsB2BCustomer(role) }

// GetUserPermissions returns the PermissionSet for a role. Unknown or empty
// roles degrade to the customer entry rather than erroring.
func GetUserPermissions(role Role) PermissionSet {
	if perms, ok := rolePermissions[role]; ok {
		return perms
	}
	return rolePermissions[RoleCustomer]
}

// CanManageUsers reports whether the role may manage user accounts.
func CanManageUsers(role Role) bool { return GetUserPermissions(role).CanManageUsers }

// CanManageSettings reports whether the role may edit site settings and content.
func CanManageSettings(role Role) bool { return GetUserPermissions(role).CanManageSettings }

// CanRefundOrders reports whether the role may refund orders.
func CanRefundOrders(role Role) bool { return GetUserPermissions(role).CanRefundOrders }

// CanExportData reports whether the role may export order data.
func CanExportData(role Role) bool { return GetUserPermissions(role).CanExportData }

// CanDeleteProducts reports whether the role may delete products.
func CanDeleteProducts(role Role) bool { return GetUserPermissions(role).CanDeleteProducts }

// CanViewAllStats reports whether the role may see the unrestricted statistics
// (top products ranking). ADMIN only.
func CanViewAllStats(role Role) bool { return GetUserPermissions(role).CanViewAllStats }

// CanViewSalesStats reports whether the role may see sales figures at all.
// Deliberately broader than CanViewAllStats: a MANAGER sees revenue and
// order counts but not the unrestricted top-products ranking.
func CanViewSalesStats(role Role) bool { return HasRole(role, RoleAdmin, RoleManager) }
