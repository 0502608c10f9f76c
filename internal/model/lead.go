package model

// Lead statuses, in pipeline order.
const (
	LeadStatusNew         = "NEW"
	LeadStatusContacted   = "CONTACTED"
	LeadStatusQualified   = "QUALIFIED"
	LeadStatusNegotiation = "NEGOTIATION"
	LeadStatusWon         = "WON"
	LeadStatusLost        = "LOST"
)

// LeadStatuses lists every valid lead status.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusLost,
}

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Lead is a sales opportunity. AssignedToUserID references a User by id
// without referential integrity; a dangling id renders as "Unassigned".
type Lead struct {
	ID               string  `json:"id" validate:"required"`
	CompanyName      string  `json:"companyName" validate:"required"`
	ContactName      string  `json:"contactName"`
	Email            string  `json:"email" validate:"omitempty,email"`
	Value            float64 `json:"value"`
	Status           string  `json:"status" validate:"required"`
	AssignedToUserID string  `json:"assignedToUserId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// LeadUpdate carries a partial lead mutation with merge semantics.
type LeadUpdate struct {
	CompanyName      *string  `json:"companyName,omitempty"`
	ContactName      *string  `json:"contactName,omitempty"`
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`
	Value            *float64 `json:"value,omitempty"`
	Status           *string  `json:"status,omitempty"`
	AssignedToUserID *string  `json:"assignedToUserId,omitempty"`
}

// Apply merges the update into the lead in place.
func (l *Lead) Apply(upd LeadUpdate) {
	if upd.CompanyName != nil {
		l.CompanyName = *upd.CompanyName
	}
	if upd.ContactName != nil {
		l.ContactName = *upd.ContactName
	}
	if upd.Email != nil {
		l.Email = *upd.Email
	}
	if upd.Value != nil {
		l.Value = *upd.Value
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}
	if upd.AssignedToUserID != nil {
		l.AssignedToUserID = *upd.AssignedToUserID
	}
}
