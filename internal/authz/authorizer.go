// Package authz provides role-based authorization checks.
package authz

// Authorizer decides whether a user role may perform a restricted action.
type Authorizer interface {
	// Allowed reports whether the role is in the allowed set for the action.
	Allowed(role string, allowedRoles ...string) bool
}

// RoleAuthorizer implements Authorizer with plain role membership.
type RoleAuthorizer struct{}

// NewRoleAuthorizer creates a new RoleAuthorizer.
func NewRoleAuthorizer() *RoleAuthorizer {
	return &RoleAuthorizer{}
}

// Allowed reports whether the role is in the allowed set.
func (a *RoleAuthorizer) Allowed(role string, allowedRoles ...string) bool {
	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// Ensure RoleAuthorizer implements Authorizer interface
var _ Authorizer = (*RoleAuthorizer)(nil)
