package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ejsmarket/internal/domain"
)

func TestGetUserPermissions_AdminHasAllFlags(t *testing.T) {
	perms := domain.GetUserPermissions(domain.RoleAdmin)

	assert.True(t, perms.CanManageUsers)
	assert.True(t, perms.CanManageProducts)
	assert.True(t, perms.CanManageOrders)
	assert.True(t, perms.CanManageSettings)
	assert.True(t, perms.CanViewAllStats)
	assert.True(t, perms.CanManageStock)
	assert.True(t, perms.CanManageCategories)
	assert.True(t, perms.CanDeleteProducts)
	assert.True(t, perms.CanRefundOrders)
	assert.True(t, perms.CanExportData)
}

func TestGetUserPermissions_ManagerIsOperationalOnly(t *testing.T) {
	perms := domain.GetUserPermissions(domain.RoleManager)

	assert.True(t, perms.CanManageProducts)
	assert.True(t, perms.CanManageOrders)
	assert.True(t, perms.CanManageStock)
	assert.True(t, perms.CanManageCategories)

	assert.False(t, perms.CanManageUsers)
	assert.False(t, perms.CanManageSettings)
	assert.False(t, perms.CanViewAllStats)
	assert.False(t, perms.CanDeleteProducts)
	assert.False(t, perms.CanRefundOrders)
	assert.False(t, perms.CanExportData)
}

func TestGetUserPermissions_CustomersHaveNoFlags(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleB2BCustomer} {
		perms := domain.GetUserPermissions(role)
		assert.Equal(t, domain.PermissionSet{}, perms, "role %s", role)
	}
}

func TestGetUserPermissions_UnknownRoleFallsBackToCustomer(t *testing.T) {
	assert.Equal(t, domain.PermissionSet{}, domain.GetUserPermissions("SUPERUSER"))
	assert.Equal(t, domain.PermissionSet{}, domain.GetUserPermissions(""))
}

func TestGetUserPermissions_IsPure(t *testing.T) {
	first := domain.GetUserPermissions(domain.RoleManager)
	first.CanManageUsers = true

	second := domain.GetUserPermissions(domain.RoleManager)
	assert.False(t, second.CanManageUsers)
}

func TestHasRole_EmptyRoleAlwaysFalse(t *testing.T) {
	assert.False(t, domain.HasRole("", domain.RoleAdmin, domain.RoleManager, domain.RoleCustomer, domain.RoleB2BCustomer))
	assert.False(t, domain.HasRole(""))
}

func TestHasRole_Matches(t *testing.T) {
	assert.True(t, domain.HasRole(domain.RoleManager, domain.RoleAdmin, domain.RoleManager))
	assert.False(t, domain.HasRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleManager))
}

func TestCanAccessAdmin_OnlyAdminAndManager(t *testing.T) {
	assert.True(t, domain.CanAccessAdmin(domain.RoleAdmin))
	assert.True(t, domain.CanAccessAdmin(domain.RoleManager))
	assert.False(t, domain.CanAccessAdmin(domain.RoleCustomer))
	assert.False(t, domain.CanAccessAdmin(domain.RoleB2BCustomer))
	assert.False(t, domain.CanAccessAdmin(""))
}

func TestCanAccessB2B_OnlyB2BCustomer(t *testing.T) {
	assert.True(t, domain.CanAccessB2B(domain.RoleB2BCustomer))
	assert.False(t, domain.CanAccessB2B(domain.RoleCustomer))
	assert.False(t, domain.CanAccessB2B(domain.RoleAdmin))
}

// A MANAGER may read sales figures while being excluded from the full stats
// flag. The two predicates must not be collapsed into one.
func TestManagerStatsDivergence(t *testing.T) {
	assert.True(t, domain.CanViewSalesStats(domain.RoleManager))
	assert.False(t, domain.CanViewAllStats(domain.RoleManager))

	assert.True(t, domain.CanViewSalesStats(domain.RoleAdmin))
	assert.True(t, domain.CanViewAllStats(domain.RoleAdmin))

	assert.False(t, domain.CanViewSalesStats(domain.RoleCustomer))
	assert.False(t, domain.CanViewAllStats(domain.RoleCustomer))
}
