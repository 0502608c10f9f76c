package repository

import (
	"errors"
	"testing"
	"time"

	"go-nexus-crm/internal/model"
)

func TestUserRepoUpdateMerges(t *testing.T) {
	repo := NewUserRepo()
	repo.Create(model.User{ID: "u1", Username: "super", Email: "super@gmail.com", AccountActive: true})

	inactive := false
	updated, err := repo.Update("u1", model.UserUpdate{AccountActive: &inactive})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.AccountActive {
		t.Fatalf("expected inactive")
	}
	if updated.Username != "super" {
		t.Fatalf("username must survive partial update, got %q", updated.Username)
	}

	if _, err := repo.Update("missing", model.UserUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepoFindByUsername(t *testing.T) {
	repo := NewUserRepo()
	repo.SetAll([]model.User{
		{ID: "u1", Username: "super"},
		{ID: "u5", Username: "emp2"},
	})

	u, err := repo.FindByUsername("emp2")
	if err != nil {
		t.Fatalf("FindByUsername() error: %v", err)
	}
	if u.ID != "u5" {
		t.Fatalf("got %s, want u5", u.ID)
	}

	if _, err := repo.FindByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoleRepoDuplicateNames(t *testing.T) {
	repo := NewRoleRepo()
	repo.Create(model.Role{ID: "r-1", Name: "SALES_MANAGER", Description: "first"})
	repo.Create(model.Role{ID: "r-2", Name: "SALES_MANAGER", Description: "second"})

	// Both entries coexist and stay addressable by id.
	first, err := repo.FindByID("r-1")
	if err != nil || first.Description != "first" {
		t.Fatalf("first entry: %+v, err %v", first, err)
	}
	second, err := repo.FindByID("r-2")
	if err != nil || second.Description != "second" {
		t.Fatalf("second entry: %+v, err %v", second, err)
	}

	// Lookup by name prefers the first match.
	byName, err := repo.FindByName("SALES_MANAGER")
	if err != nil {
		t.Fatalf("FindByName() error: %v", err)
	}
	if byName.ID != "r-1" {
		t.Fatalf("FindByName returned %s, want first match r-1", byName.ID)
	}
}

func TestNotificationRepoPrependAndMarkRead(t *testing.T) {
	repo := NewNotificationRepo()
	repo.Prepend(model.Notification{ID: "n1", UserID: "u2", CreatedAt: time.Now().Add(-time.Hour)})
	repo.Prepend(model.Notification{ID: "n2", UserID: "u2", CreatedAt: time.Now()})
	repo.Prepend(model.Notification{ID: "n3", UserID: "u9", CreatedAt: time.Now()})

	list := repo.FindByUser("u2")
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications for u2, got %d", len(list))
	}
	if list[0].ID != "n2" {
		t.Fatalf("expected newest first, got %s", list[0].ID)
	}

	n, err := repo.MarkRead("n1")
	if err != nil {
		t.Fatalf("MarkRead() error: %v", err)
	}
	if !n.IsRead {
		t.Fatalf("expected read flag set")
	}

	if _, err := repo.MarkRead("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeadRepoUpdateMerges(t *testing.T) {
	repo := NewLeadRepo()
	repo.Create(model.Lead{ID: "l1", CompanyName: "Acme Corp", Status: model.LeadStatusNew, Value: 50000})

	won := model.LeadStatusWon
	lead, err := repo.Update("l1", model.LeadUpdate{Status: &won})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if lead.Status != model.LeadStatusWon {
		t.Fatalf("status not updated: %s", lead.Status)
	}
	if lead.CompanyName != "Acme Corp" || lead.Value != 50000 {
		t.Fatalf("unspecified fields must survive: %+v", lead)
	}
}
