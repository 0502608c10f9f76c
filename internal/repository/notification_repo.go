package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type NotificationRepository interface {
	// FindByUser returns the recipient's notifications, newest first.
	FindByUser(userID string) []model.Notification
	// Prepend inserts a notification at the head of the list.
	Prepend(n model.Notification)
	// MarkRead flips the read flag on; notifications are never deleted.
	MarkRead(id string) (*model.Notification, error)
	SetAll(notifications []model.Notification)
}

type notificationRepo struct {
	mu            sync.RWMutex
	notifications []model.Notification
}

func NewNotificationRepo() NotificationRepository {
	return &notificationRepo{}
}

func (r *notificationRepo) FindByUser(userID string) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (r *notificationRepo) Prepend(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]model.Notification{n}, r.notifications...)
}

func (r *notificationRepo) MarkRead(id string) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, ErrNotFound
}

func (r *notificationRepo) SetAll(notifications []model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = make([]model.Notification, len(notifications))
	copy(r.notifications, notifications)
}
