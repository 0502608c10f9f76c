package model

// Company is a partner company. AdminID references a User by id without
// referential integrity; a dangling id renders as "Unassigned".
type Company struct {
	ID              string  `json:"id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Industry        string  `json:"industry"`
	AnnualRevenue   float64 `json:"annualRevenue"`
	AssociatedSince string  `json:"associatedSince"`
	AdminID         string  `json:"adminId,omitempty"`
}
