package rbac

import (
	"testing"

	"hr-inventory-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allActions = []Action{
	ActionCreate, ActionView, ActionViewOwn, ActionUpdate, ActionApprove,
	ActionReject, ActionDeactivate, ActionActivate,
}

var allResources = []Resource{
	ResourceEmployee, ResourceAttendance, ResourceShift, ResourceItem, ResourceVendor,
	ResourceStockIn, ResourceStockOut, ResourceStockRequest, ResourceStockReturn, ResourceUnit,
}

func TestAuthorizer_DefaultDenyIsTotal(t *testing.T) {
	table := Table{
		RoleEmployee: {
			ResourceAttendance:   {ActionView},
			ResourceStockRequest: {},
		},
	}
	a := NewAuthorizer(table)

	for _, role := range Roles {
		for _, res := range allResources {
			for _, act := range allActions {
				want := role == RoleEmployee && res == ResourceAttendance && act == ActionView
				assert.Equal(t, want, a.Allowed(role, res, act), "%s %s:%s", role, res, act)
			}
		}
	}
}

func TestAuthorizer_UnknownRoleDenied(t *testing.T) {
	a := NewAuthorizer(DefaultTable)

	err := a.Authorize(Role("janitor"), ResourceItem, ActionView)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
}

func TestAuthorizer_EmptyActionListDenied(t *testing.T) {
	a := NewAuthorizer(Table{RoleAdmin: {ResourceUnit: nil}})

	err := a.Authorize(RoleAdmin, ResourceUnit, ActionView)
	require.Error(t, err)
	assert.Equal(t, "Access denied to this module", apperror.From(err).Message)
}

func TestAuthorizer_WildcardAllowsEveryAction(t *testing.T) {
	a := NewAuthorizer(Table{RoleStoreManager: {ResourceVendor: {ActionAll}}})

	for _, act := range allActions {
		assert.NoError(t, a.Authorize(RoleStoreManager, ResourceVendor, act))
	}
	assert.False(t, a.Allowed(RoleStoreManager, ResourceItem, ActionView))
}

func TestAuthorizer_AnyOf(t *testing.T) {
	a := NewAuthorizer(DefaultTable)

	own := Permission{Resource: ResourceEmployee, Action: ActionViewOwn}
	all := Permission{Resource: ResourceEmployee, Action: ActionView}

	assert.NoError(t, a.AuthorizeAny(RoleEmployee, all, own))
	assert.NoError(t, a.AuthorizeAny(RoleAdmin, all, own))
	assert.Error(t, a.AuthorizeAny(RoleInventoryOperator, all, own))
	assert.Error(t, a.AuthorizeAny(RoleAdmin))
}

func TestAuthorizer_TableIsCopied(t *testing.T) {
	table := Table{RoleEmployee: {ResourceItem: {ActionView}}}
	a := NewAuthorizer(table)

	table[RoleEmployee][ResourceItem] = []Action{ActionAll}
	delete(table, RoleEmployee)

	assert.True(t, a.Allowed(RoleEmployee, ResourceItem, ActionView))
	assert.False(t, a.Allowed(RoleEmployee, ResourceItem, ActionCreate))
}

func TestDefaultTable_KnownGrants(t *testing.T) {
	a := NewAuthorizer(DefaultTable)

	assert.True(t, a.Allowed(RoleSuperAdmin, ResourceUnit, ActionDeactivate))
	assert.True(t, a.Allowed(RoleSubAdmin, ResourceAttendance, ActionCreate))
	assert.True(t, a.Allowed(RoleSupervisor, ResourceShift, ActionCreate))
	assert.True(t, a.Allowed(RoleInventoryOperator, ResourceStockRequest, ActionApprove))
	assert.False(t, a.Allowed(RoleEmployee, ResourceStockRequest, ActionApprove))
	assert.False(t, a.Allowed(RoleIMSAuditOfficer, ResourceItem, ActionCreate))

	for _, role := range Roles {
		_, ok := DefaultTable[role]
		assert.True(t, ok, "role %s has no table entry", role)
	}
}
