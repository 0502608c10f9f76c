// Package fixture holds the static demo datasets used in the local profile.
// Some records deliberately carry dangling user references (the u2 admin
// contact) to exercise the "Unassigned" leniency path.
package fixture

import (
	"time"

	"go-nexus-crm/internal/access"
	"go-nexus-crm/internal/model"
)

func Authorities() []model.Authority {
	return []model.Authority{
		{ID: "1", Name: "READ_ALL", Description: "Can read all data"},
		{ID: "2", Name: "WRITE_LEADS", Description: "Can edit leads"},
		{ID: "3", Name: "MANAGE_USERS", Description: "Can manage users"},
		{ID: "4", Name: "VIEW_FINANCE", Description: "Can view financial data"},
		{ID: "5", Name: "EXPORT_DATA", Description: "Can export data to Excel/CSV"},
		{ID: "6", Name: "IMPORT_DATA", Description: "Can import data"},
		{ID: "7", Name: "DELETE_LEADS", Description: "Can permanently delete leads"},
		{ID: "8", Name: "ASSIGN_ROLES", Description: "Can assign roles to users"},
		{ID: "9", Name: "VIEW_AUDIT_LOGS", Description: "Can view system audit logs"},
		{ID: "10", Name: "MANAGE_API_KEYS", Description: "Can manage system API keys"},
		{ID: "11", Name: "VIEW_COMPANIES", Description: "Can view partner companies"},
		{ID: "12", Name: "EDIT_COMPANIES", Description: "Can edit company details"},
		{ID: "13", Name: "ARCHIVE_DATA", Description: "Can archive old records"},
		{ID: "14", Name: "MANAGE_NOTIFICATIONS", Description: "Can send system broadcasts"},
		{ID: "15", Name: "VIEW_DASHBOARD_STATS", Description: "Can view high-level dashboard stats"},
		{ID: "16", Name: "GENERATE_REPORTS", Description: "Can generate PDF reports"},
		{ID: "17", Name: "SEND_EMAILS", Description: "Can send emails via CRM"},
		{ID: "18", Name: "MANAGE_BILLING", Description: "Can access billing information"},
		{ID: "19", Name: "VIEW_SYSTEM_HEALTH", Description: "Can view server status"},
		{ID: "20", Name: "CONFIGURE_SETTINGS", Description: "Can configure global settings"},
	}
}

func Roles() []model.Role {
	authorities := Authorities()
	allNames := make([]string, len(authorities))
	for i, a := range authorities {
		allNames[i] = a.Name
	}

	return []model.Role{
		{
			ID:          "r1",
			Name:        model.RoleSuperuser,
			Description: "Full system access",
			Authorities: allNames,
		},
		{
			ID:          "r2",
			Name:        model.RoleAdmin,
			Description: "Administrator access",
			Authorities: []string{"READ_ALL", "WRITE_LEADS", "MANAGE_USERS", "EXPORT_DATA", "VIEW_COMPANIES", "VIEW_DASHBOARD_STATS", "SEND_EMAILS"},
		},
		{
			ID:          "r3",
			Name:        model.RoleEmployee,
			Description: "Standard employee access",
			Authorities: []string{"WRITE_LEADS", "VIEW_DASHBOARD_STATS"},
		},
	}
}

func Users() []model.User {
	roles := Roles()
	authorities := Authorities()

	byName := func(name string) *model.Role {
		for i := range roles {
			if roles[i].Name == name {
				return &roles[i]
			}
		}
		return nil
	}
	build := func(id, username, email, roleName string, active bool) model.User {
		role := byName(roleName)
		var ref *model.RoleRef
		if role != nil {
			r := role.Ref()
			ref = &r
		}
		return model.User{
			ID:            id,
			Username:      username,
			Email:         email,
			Role:          ref,
			Authorities:   access.DeriveDefaultAuthorities(role, authorities),
			AccountActive: active,
		}
	}

	return []model.User{
		build("u1", "super", "super@gmail.com", model.RoleSuperuser, true),
		build("u3", "admin", "admin@gmail.com", model.RoleAdmin, true),
		build("u4", "emp1", "emp1@gmail.com", model.RoleEmployee, false),
		build("u5", "emp2", "emp2@gmail.com", model.RoleEmployee, true),
	}
}

func Leads() []model.Lead {
	return []model.Lead{
		{ID: "l1", CompanyName: "Acme Corp", ContactName: "Alice", Email: "alice@acme.com", Value: 50000, Status: model.LeadStatusNew, CreatedAt: "2023-10-01"},
		{ID: "l2", CompanyName: "Globex", ContactName: "Bob", Email: "bob@globex.com", Value: 120000, Status: model.LeadStatusNegotiation, AssignedToUserID: "u3", CreatedAt: "2023-10-05"},
		{ID: "l3", CompanyName: "Soylent Corp", ContactName: "Charlie", Email: "charlie@soylent.com", Value: 75000, Status: model.LeadStatusWon, AssignedToUserID: "u3", CreatedAt: "2023-10-10"},
		{ID: "l4", CompanyName: "Umbrella Inc", ContactName: "Dave", Email: "dave@umbrella.com", Value: 200000, Status: model.LeadStatusContacted, AssignedToUserID: "u4", CreatedAt: "2023-10-12"},
		{ID: "l5", CompanyName: "Stark Ind", ContactName: "Tony", Email: "tony@stark.com", Value: 1000000, Status: model.LeadStatusQualified, AssignedToUserID: "u2", CreatedAt: "2023-10-15"},
	}
}

func Companies() []model.Company {
	return []model.Company{
		{ID: "c1", Name: "TechSoft", Industry: "Software", AnnualRevenue: 5000000, AssociatedSince: "2020-01-01", AdminID: "u2"},
		{ID: "c2", Name: "BuildIt", Industry: "Construction", AnnualRevenue: 12000000, AssociatedSince: "2019-05-15", AdminID: "u2"},
		{ID: "c3", Name: "MediCare", Industry: "Healthcare", AnnualRevenue: 8500000, AssociatedSince: "2021-08-20", AdminID: "u2"},
	}
}

func Notifications() []model.Notification {
	now := time.Now()
	return []model.Notification{
		{
			ID:        "n1",
			UserID:    "u2",
			From:      "Super Admin",
			Message:   "Welcome to the new CRM system. Please review the new leads assigned to your team.",
			IsRead:    false,
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        "n2",
			UserID:    "u2",
			From:      "System",
			Message:   "Monthly revenue reports are ready for download.",
			IsRead:    false,
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}
}
