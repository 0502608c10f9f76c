package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type RoleRepository interface {
	FindAll() []model.Role
	FindByID(id string) (*model.Role, error)
	// FindByName returns the first role with the given name. Duplicate
	// normalized names are legal; the first match wins.
	FindByName(name string) (*model.Role, error)
	Create(role model.Role)
	SetAll(roles []model.Role)
}

type roleRepo struct {
	mu    sync.RWMutex
	roles []model.Role
}

func NewRoleRepo() RoleRepository {
	return &roleRepo{}
}

func (r *roleRepo) FindAll() []model.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Role, len(r.roles))
	copy(out, r.roles)
	return out
}

func (r *roleRepo) FindByID(id string) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.roles {
		if r.roles[i].ID == id {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, ErrNotFound
}

func (r *roleRepo) FindByName(name string) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.roles {
		if r.roles[i].Name == name {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, ErrNotFound
}

func (r *roleRepo) Create(role model.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles = append(r.roles, role)
}

func (r *roleRepo) SetAll(roles []model.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles = make([]model.Role, len(roles))
	copy(r.roles, roles)
}
