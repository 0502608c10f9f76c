package model

import "strings"

// Authority represents an atomic named permission, e.g. WRITE_LEADS.
// Authorities are immutable once created and are never deleted.
type Authority struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// AuthorityRef is the {id, name} snapshot of an authority held by a user.
// It is copied by value at grant time; later edits to the authority record
// do not propagate into existing snapshots.
type AuthorityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the snapshot form of the authority.
func (a Authority) Ref() AuthorityRef {
	return AuthorityRef{ID: a.ID, Name: a.Name}
}

// NormalizeName converts free-form input into the canonical UPPER_SNAKE
// token used for role and authority names: uppercase, with runs of
// whitespace collapsed to single underscores.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), "_"))
}
