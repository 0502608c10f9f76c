// Package access decides, for a given authenticated user, whether a
// navigation target or UI affordance is permitted. It keeps the two gating
// axes separate: role membership (consulted by route guards) and authority
// possession (exposed as a primitive, not consulted by any guard today).
package access

import "go-nexus-crm/internal/model"

// CanAccessRoute reports whether the user may enter a route that requires
// one of the given role names. An empty requirement admits everyone; a user
// without a role never matches a non-empty requirement.
func CanAccessRoute(user *model.User, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	if user == nil || user.Role == nil {
		return false
	}
	for _, name := range requiredRoles {
		if user.Role.Name == name {
			return true
		}
	}
	return false
}

// DeriveDefaultAuthorities resolves a role's default authority names against
// the registry, returning {id, name} snapshots. Names that no longer resolve
// are dropped silently; a role naming a deleted authority is tolerated, not
// an error.
func DeriveDefaultAuthorities(role *model.Role, registry []model.Authority) []model.AuthorityRef {
	if role == nil {
		return nil
	}
	refs := make([]model.AuthorityRef, 0, len(role.Authorities))
	for _, name := range role.Authorities {
		for _, a := range registry {
			if a.Name == name {
				refs = append(refs, a.Ref())
				break
			}
		}
	}
	return refs
}

// UserHasAuthority reports whether the user holds the named authority. No
// route guard consults this today; it exists for action-level enforcement.
func UserHasAuthority(user *model.User, authorityName string) bool {
	if user == nil {
		return false
	}
	return user.HasAuthority(authorityName)
}
