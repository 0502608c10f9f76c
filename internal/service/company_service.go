package service

import (
	"fmt"
	"time"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/pkg/validator"
)

// UnassignedLabel is how dangling user references render. A company whose
// admin id no longer resolves is tolerated, not an error.
const UnassignedLabel = "Unassigned"

type CompanyService interface {
	ListCompanies() []CompanyResponse
	AddCompany(req *CreateCompanyRequest) (*model.Company, error)
}

// CompanyResponse decorates a company with its resolved admin contact.
type CompanyResponse struct {
	model.Company
	AdminName string `json:"adminName"`
}

type CreateCompanyRequest struct {
	Name          string  `json:"name" validate:"required"`
	Industry      string  `json:"industry"`
	AnnualRevenue float64 `json:"annualRevenue"`
	AdminID       string  `json:"adminId"`
}

type companyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) CompanyService {
	return &companyService{companyRepo: companyRepo, userRepo: userRepo}
}

func (s *companyService) ListCompanies() []CompanyResponse {
	companies := s.companyRepo.FindAll()
	out := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		adminName := UnassignedLabel
		if admin, err := s.userRepo.FindByID(c.AdminID); err == nil {
			adminName = admin.Username
		}
		out[i] = CompanyResponse{Company: c, AdminName: adminName}
	}
	return out
}

func (s *companyService) AddCompany(req *CreateCompanyRequest) (*model.Company, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	company := model.Company{
		ID:              model.NewID("c"),
		Name:            req.Name,
		Industry:        req.Industry,
		AnnualRevenue:   req.AnnualRevenue,
		AssociatedSince: time.Now().Format("2006-01-02"),
		AdminID:         req.AdminID,
	}
	s.companyRepo.Create(company)
	return &company, nil
}
