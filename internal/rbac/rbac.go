// Package rbac holds the static role permission table and the gate that evaluates it.
package rbac

import "hr-inventory-backend/internal/apperror"

type Role string

const (
	RoleSuperAdmin        Role = "super_admin"
	RoleAdmin             Role = "admin"
	RoleSubAdmin          Role = "sub_admin"
	RoleSDO               Role = "sdo"
	RoleSubEngineer       Role = "sub_engineer"
	RoleSupervisor        Role = "supervisor"
	RoleEmployee          Role = "employee"
	RoleStoreManager      Role = "store_manager"
	RoleInventoryOperator Role = "inventory_operator"
	RoleIMSAuditOfficer   Role = "ims_audit_officer"
)

// Roles lists every role a personnel record may carry.
var Roles = []Role{
	RoleSuperAdmin, RoleAdmin, RoleSubAdmin, RoleSDO, RoleSubEngineer,
	RoleSupervisor, RoleEmployee, RoleStoreManager, RoleInventoryOperator, RoleIMSAuditOfficer,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type Resource string

const (
	ResourceEmployee     Resource = "employee"
	ResourceAttendance   Resource = "attendance"
	ResourceShift        Resource = "shift"
	ResourceItem         Resource = "item"
	ResourceVendor       Resource = "vendor"
	ResourceStockIn      Resource = "stock_in"
	ResourceStockOut     Resource = "stock_out"
	ResourceStockRequest Resource = "stock_request"
	ResourceStockReturn  Resource = "stock_return"
	ResourceUnit         Resource = "unit"
)

type Action string

const (
	ActionCreate     Action = "create"
	ActionView       Action = "view"
	ActionViewOwn    Action = "view_own"
	ActionUpdate     Action = "update"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionDeactivate Action = "deactivate"
	ActionActivate   Action = "activate"
	ActionAll        Action = "*"
)

// Table maps a role to the actions it may perform per resource.
type Table map[Role]map[Resource][]Action

// Permission is one (resource, action) pair.
type Permission struct {
	Resource Resource
	Action   Action
}

// Authorizer evaluates a Table. It copies the table on construction so callers
// cannot mutate it afterwards.
type Authorizer struct {
	table Table
}

func NewAuthorizer(table Table) *Authorizer {
	cp := make(Table, len(table))
	for role, resources := range table {
		inner := make(map[Resource][]Action, len(resources))
		for res, actions := range resources {
			inner[res] = append([]Action(nil), actions...)
		}
		cp[role] = inner
	}
	return &Authorizer{table: cp}
}

// Allowed reports whether role may perform action on resource. Unknown roles,
// unknown resources and empty action lists all deny.
func (a *Authorizer) Allowed(role Role, resource Resource, action Action) bool {
	resources, ok := a.table[role]
	if !ok {
		return false
	}
	actions := resources[resource]
	for _, act := range actions {
		if act == ActionAll || act == action {
			return true
		}
	}
	return false
}

// Authorize is Allowed with the denial reason expressed as a Forbidden error.
func (a *Authorizer) Authorize(role Role, resource Resource, action Action) error {
	resources, ok := a.table[role]
	if !ok {
		return apperror.Forbidden("Role not found or no permissions assigned")
	}
	if len(resources[resource]) == 0 {
		return apperror.Forbidden("Access denied to this module")
	}
	if !a.Allowed(role, resource, action) {
		return apperror.Forbidden("You do not have permission to perform this action")
	}
	return nil
}

// AuthorizeAny passes when at least one of the pairs is allowed.
func (a *Authorizer) AuthorizeAny(role Role, perms ...Permission) error {
	for _, p := range perms {
		if a.Allowed(role, p.Resource, p.Action) {
			return nil
		}
	}
	return apperror.Forbidden("You do not have permission to perform this action")
}
