package model

// Role represents a named bundle of default authorities.
//
// The Authorities slice holds authority names, not references. It is a
// default template snapshotted when users are assigned the role; it is not
// an enforced constraint, and a name may dangle if the registry no longer
// resolves it.
type Role struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Authorities []string `json:"authorities"`
}

// RoleRef is the {id, name} snapshot of a role carried by a user record.
type RoleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the snapshot form of the role.
func (r Role) Ref() RoleRef {
	return RoleRef{ID: r.ID, Name: r.Name}
}

// Well-known role names seeded by the local fixtures.
const (
	RoleSuperuser = "SUPERUSER"
	RoleAdmin     = "ADMIN"
	RoleEmployee  = "EMPLOYEE"
)
