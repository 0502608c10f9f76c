package service

import (
	"errors"
	"time"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/internal/session"
	"go-nexus-crm/internal/ws"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	// Send delivers a message to the recipient. Without an authenticated
	// sender the call is a silent no-op: there is nobody to attribute it to.
	Send(toUserID, message string) error
	MarkRead(id string) (*model.Notification, error)
	ListForUser(userID string) []model.Notification
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	sessions  *session.Store
	hub       *ws.Hub
}

func NewNotificationService(notifRepo repository.NotificationRepository, sessions *session.Store, hub *ws.Hub) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		sessions:  sessions,
		hub:       hub,
	}
}

func (s *notificationService) Send(toUserID, message string) error {
	sender, _ := s.sessions.Current()
	if sender == nil {
		return nil
	}

	from := sender.Username
	if from == "" {
		from = sender.Email
	}
	if from == "" {
		from = "User"
	}

	n := model.Notification{
		ID:        model.NewID("n"),
		UserID:    toUserID,
		From:      from,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	s.notifRepo.Prepend(n)

	if s.hub != nil {
		go s.hub.Publish("notification", n)
	}
	return nil
}

func (s *notificationService) MarkRead(id string) (*model.Notification, error) {
	n, err := s.notifRepo.MarkRead(id)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

func (s *notificationService) ListForUser(userID string) []model.Notification {
	return s.notifRepo.FindByUser(userID)
}
