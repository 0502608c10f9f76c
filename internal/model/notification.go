package model

import "time"

// Notification is a message addressed to a single recipient user. It is
// created by the send-message action, mutated only by the read-flag toggle,
// and never deleted.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	From      string    `json:"from"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
