package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/pkg/validator"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type LeadService interface {
	// ListLeads filters by status and a company/contact query. An EMPLOYEE
	// viewer only sees leads assigned to themselves.
	ListLeads(viewer *model.User, statusFilter, query string) []model.Lead
	AddLead(req *CreateLeadRequest) (*model.Lead, error)
	UpdateLead(id string, upd model.LeadUpdate) (*model.Lead, error)
	ImportLead(req *CreateLeadRequest) (*model.Lead, error)
}

type CreateLeadRequest struct {
	CompanyName      string  `json:"companyName" validate:"required"`
	ContactName      string  `json:"contactName"`
	Email            string  `json:"email" validate:"omitempty,email"`
	Value            float64 `json:"value"`
	AssignedToUserID string  `json:"assignedToUserId"`
}

type leadService struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

func (s *leadService) ListLeads(viewer *model.User, statusFilter, query string) []model.Lead {
	leads := s.leadRepo.FindAll()
	query = strings.ToLower(query)

	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if statusFilter != "" && statusFilter != "ALL" && l.Status != statusFilter {
			continue
		}
		if viewer != nil && viewer.RoleName() == model.RoleEmployee && l.AssignedToUserID != viewer.ID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(l.CompanyName), query) &&
			!strings.Contains(strings.ToLower(l.ContactName), query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *leadService) AddLead(req *CreateLeadRequest) (*model.Lead, error) {
	return s.createLead(req, model.NewID("l"))
}

// ImportLead creates a lead through the bulk-import path; imported leads
// get an l-imp id prefix so they remain distinguishable.
func (s *leadService) ImportLead(req *CreateLeadRequest) (*model.Lead, error) {
	return s.createLead(req, model.NewID("l-imp"))
}

func (s *leadService) createLead(req *CreateLeadRequest, id string) (*model.Lead, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	lead := model.Lead{
		ID:               id,
		CompanyName:      req.CompanyName,
		ContactName:      req.ContactName,
		Email:            req.Email,
		Value:            req.Value,
		Status:           model.LeadStatusNew,
		AssignedToUserID: req.AssignedToUserID,
		CreatedAt:        time.Now().Format("2006-01-02"),
	}
	s.leadRepo.Create(lead)
	return &lead, nil
}

func (s *leadService) UpdateLead(id string, upd model.LeadUpdate) (*model.Lead, error) {
	if upd.Status != nil && !model.ValidLeadStatus(*upd.Status) {
		return nil, ErrInvalidLeadStatus
	}
	lead, err := s.leadRepo.Update(id, upd)
	if err != nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}
