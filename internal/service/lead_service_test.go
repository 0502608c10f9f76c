package service

import (
	"errors"
	"strings"
	"testing"

	"go-nexus-crm/internal/fixture"
	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
)

func newLeadFixture(t *testing.T) (LeadService, repository.LeadRepository) {
	t.Helper()
	leadRepo := repository.NewLeadRepo()
	leadRepo.SetAll(fixture.Leads())
	return NewLeadService(leadRepo), leadRepo
}

func TestListLeadsEmployeeScoping(t *testing.T) {
	svc, _ := newLeadFixture(t)

	employee := &model.User{ID: "u4", Role: &model.RoleRef{ID: "r3", Name: "EMPLOYEE"}}
	leads := svc.ListLeads(employee, "ALL", "")
	if len(leads) != 1 {
		t.Fatalf("employee must only see own assignments, got %d", len(leads))
	}
	if leads[0].AssignedToUserID != "u4" {
		t.Fatalf("unexpected lead: %+v", leads[0])
	}

	admin := &model.User{ID: "u3", Role: &model.RoleRef{ID: "r2", Name: "ADMIN"}}
	if got := len(svc.ListLeads(admin, "ALL", "")); got != 5 {
		t.Fatalf("admin sees all leads, got %d", got)
	}
}

func TestListLeadsStatusFilter(t *testing.T) {
	svc, _ := newLeadFixture(t)

	won := svc.ListLeads(nil, model.LeadStatusWon, "")
	if len(won) != 1 || won[0].ID != "l3" {
		t.Fatalf("WON filter: %+v", won)
	}

	if got := len(svc.ListLeads(nil, "ALL", "corp")); got != 2 {
		t.Fatalf("query filter expected Acme+Soylent, got %d", got)
	}
}

func TestAddLeadStartsNew(t *testing.T) {
	svc, _ := newLeadFixture(t)

	lead, err := svc.AddLead(&CreateLeadRequest{CompanyName: "Initech", ContactName: "Peter", Value: 9000})
	if err != nil {
		t.Fatalf("AddLead() error: %v", err)
	}
	if lead.Status != model.LeadStatusNew {
		t.Fatalf("new leads start in NEW, got %s", lead.Status)
	}
	if lead.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestImportLeadIDPrefix(t *testing.T) {
	svc, _ := newLeadFixture(t)

	lead, err := svc.ImportLead(&CreateLeadRequest{CompanyName: "Imported Co"})
	if err != nil {
		t.Fatalf("ImportLead() error: %v", err)
	}
	if !strings.HasPrefix(lead.ID, "l-imp-") {
		t.Fatalf("imported lead id = %q, want l-imp- prefix", lead.ID)
	}
}

func TestUpdateLeadRejectsUnknownStatus(t *testing.T) {
	svc, _ := newLeadFixture(t)

	bogus := "DELETED"
	if _, err := svc.UpdateLead("l1", model.LeadUpdate{Status: &bogus}); !errors.Is(err, ErrInvalidLeadStatus) {
		t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
	}

	won := model.LeadStatusWon
	lead, err := svc.UpdateLead("l1", model.LeadUpdate{Status: &won})
	if err != nil {
		t.Fatalf("UpdateLead() error: %v", err)
	}
	if lead.Status != model.LeadStatusWon {
		t.Fatalf("status not applied: %s", lead.Status)
	}
}

func TestUpdateLeadReassignment(t *testing.T) {
	svc, _ := newLeadFixture(t)

	assignee := "u5"
	lead, err := svc.UpdateLead("l1", model.LeadUpdate{AssignedToUserID: &assignee})
	if err != nil {
		t.Fatalf("UpdateLead() error: %v", err)
	}
	if lead.AssignedToUserID != "u5" {
		t.Fatalf("reassignment not applied: %+v", lead)
	}
}
