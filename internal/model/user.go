package model

// User is an identity with one assigned role and an explicit set of
// authority snapshots. The authorities are seeded from the role's defaults
// at creation or role-change time but are independently editable afterwards:
// granting or revoking on a user never alters the role definition.
type User struct {
	ID            string         `json:"id" validate:"required"`
	Username      string         `json:"username" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Role          *RoleRef       `json:"role"`
	Authorities   []AuthorityRef `json:"authorities"`
	AccountActive bool           `json:"accountActive"`
}

// HasAuthority reports whether the user holds the named authority.
func (u *User) HasAuthority(name string) bool {
	for _, a := range u.Authorities {
		if a.Name == name {
			return true
		}
	}
	return false
}

// AuthorityNames returns the names of all authorities held by the user.
func (u *User) AuthorityNames() []string {
	names := make([]string, len(u.Authorities))
	for i, a := range u.Authorities {
		names[i] = a.Name
	}
	return names
}

// RoleName returns the user's role name, or "" when no role is assigned.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserUpdate carries a partial user mutation. Nil fields keep their prior
// values (merge semantics).
type UserUpdate struct {
	Username      *string         `json:"username,omitempty"`
	Email         *string         `json:"email,omitempty" validate:"omitempty,email"`
	Role          *RoleRef        `json:"role,omitempty"`
	Authorities   *[]AuthorityRef `json:"authorities,omitempty"`
	AccountActive *bool           `json:"accountActive,omitempty"`
}

// Apply merges the update into the user in place.
func (u *User) Apply(upd UserUpdate) {
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = upd.Role
	}
	if upd.Authorities != nil {
		u.Authorities = *upd.Authorities
	}
	if upd.AccountActive != nil {
		u.AccountActive = *upd.AccountActive
	}
}
