package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	const op = "service.Notification.List"

	if recipientID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error) {
	const op = "service.Notification.MarkRead"

	if recipientID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}
	return s.repo.MarkRead(ctx, id, recipientID)
}
