// Package repository holds the in-memory collection stores. Every store is
// a mutex-guarded slice behind an interface, so a real backend can be
// substituted later without touching the evaluator or guard logic.
//
// The stores deliberately enforce no referential integrity and no name
// uniqueness: snapshots are copied by value, dangling ids are tolerated by
// consumers, and lookups by name prefer the first match.
package repository

import "errors"

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")
