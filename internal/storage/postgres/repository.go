package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
)

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int, status domain.IncidentStatus) ([]*domain.Incident, int64, error)
	UpdateFields(ctx context.Context, incident *domain.Incident) error
	// TransitionStatus performs "read current status, write new status,
	// append log entry" as one transaction. A nil returned log entry
	// means the status already had the requested value (no-op).
	TransitionStatus(ctx context.Context, id uuid.UUID, newStatus domain.IncidentStatus, actor uuid.UUID) (*domain.Incident, *domain.StatusLogEntry, error)
	ListStatusLog(ctx context.Context, incidentID uuid.UUID) ([]domain.StatusLogEntry, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context) (map[domain.StatusCategory]int64, error)
	CountCreatedSince(ctx context.Context, minutes int) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error)
}
