package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type AuthorityRepository interface {
	FindAll() []model.Authority
	FindByID(id string) (*model.Authority, error)
	// FindByName returns the first authority with the given name.
	FindByName(name string) (*model.Authority, error)
	Create(authority model.Authority)
	SetAll(authorities []model.Authority)
}

type authorityRepo struct {
	mu          sync.RWMutex
	authorities []model.Authority
}

func NewAuthorityRepo() AuthorityRepository {
	return &authorityRepo{}
}

func (r *authorityRepo) FindAll() []model.Authority {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Authority, len(r.authorities))
	copy(out, r.authorities)
	return out
}

func (r *authorityRepo) FindByID(id string) (*model.Authority, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.authorities {
		if r.authorities[i].ID == id {
			a := r.authorities[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *authorityRepo) FindByName(name string) (*model.Authority, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.authorities {
		if r.authorities[i].Name == name {
			a := r.authorities[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *authorityRepo) Create(authority model.Authority) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authorities = append(r.authorities, authority)
}

func (r *authorityRepo) SetAll(authorities []model.Authority) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authorities = make([]model.Authority, len(authorities))
	copy(r.authorities, authorities)
}
