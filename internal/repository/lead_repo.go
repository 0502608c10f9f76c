package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type LeadRepository interface {
	FindAll() []model.Lead
	FindByID(id string) (*model.Lead, error)
	Create(lead model.Lead)
	Update(id string, upd model.LeadUpdate) (*model.Lead, error)
	SetAll(leads []model.Lead)
}

type leadRepo struct {
	mu    sync.RWMutex
	leads []model.Lead
}

func NewLeadRepo() LeadRepository {
	return &leadRepo{}
}

func (r *leadRepo) FindAll() []model.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Lead, len(r.leads))
	copy(out, r.leads)
	return out
}

func (r *leadRepo) FindByID(id string) (*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			l := r.leads[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (r *leadRepo) Create(lead model.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
}

func (r *leadRepo) Update(id string, upd model.LeadUpdate) (*model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads[i].Apply(upd)
			l := r.leads[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (r *leadRepo) SetAll(leads []model.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = make([]model.Lead, len(leads))
	copy(r.leads, leads)
}
