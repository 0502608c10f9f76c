package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type CompanyRepository interface {
	FindAll() []model.Company
	FindByID(id string) (*model.Company, error)
	Create(company model.Company)
	SetAll(companies []model.Company)
}

type companyRepo struct {
	mu        sync.RWMutex
	companies []model.Company
}

func NewCompanyRepo() CompanyRepository {
	return &companyRepo{}
}

func (r *companyRepo) FindAll() []model.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Company, len(r.companies))
	copy(out, r.companies)
	return out
}

func (r *companyRepo) FindByID(id string) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.companies {
		if r.companies[i].ID == id {
			c := r.companies[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *companyRepo) Create(company model.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = append(r.companies, company)
}

func (r *companyRepo) SetAll(companies []model.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = make([]model.Company, len(companies))
	copy(r.companies, companies)
}
