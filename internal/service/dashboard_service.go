package service

import (
	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
)

type DashboardService interface {
	GetDashboardStats(viewer *model.User) *DashboardStats
}

// DashboardStats is the overview the landing page renders.
type DashboardStats struct {
	TotalLeads     int           `json:"totalLeads"`
	WonLeads       int           `json:"wonLeads"`
	PendingLeads   int           `json:"pendingLeads"`
	TotalRevenue   float64       `json:"totalRevenue"`
	TotalCompanies int           `json:"totalCompanies"`
	StatusData     []StatusCount `json:"statusData"`
	MyLeads        int           `json:"myLeads"`
	MyWins         int           `json:"myWins"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type dashboardService struct {
	leadRepo    repository.LeadRepository
	companyRepo repository.CompanyRepository
}

func NewDashboardService(leadRepo repository.LeadRepository, companyRepo repository.CompanyRepository) DashboardService {
	return &dashboardService{leadRepo: leadRepo, companyRepo: companyRepo}
}

func (s *dashboardService) GetDashboardStats(viewer *model.User) *DashboardStats {
	leads := s.leadRepo.FindAll()

	stats := &DashboardStats{
		TotalLeads:     len(leads),
		TotalCompanies: len(s.companyRepo.FindAll()),
	}

	counts := make(map[string]int)
	for _, l := range leads {
		counts[l.Status]++
		switch l.Status {
		case model.LeadStatusWon:
			stats.WonLeads++
			stats.TotalRevenue += l.Value
		case model.LeadStatusLost:
			// closed, not pending
		default:
			stats.PendingLeads++
		}
		if viewer != nil && l.AssignedToUserID == viewer.ID {
			stats.MyLeads++
			if l.Status == model.LeadStatusWon {
				stats.MyWins++
			}
		}
	}

	stats.StatusData = make([]StatusCount, len(model.LeadStatuses))
	for i, status := range model.LeadStatuses {
		stats.StatusData[i] = StatusCount{Status: status, Count: counts[status]}
	}
	return stats
}
