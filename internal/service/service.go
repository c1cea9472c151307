package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type PublicIncidentService interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest, reporterID *uuid.UUID) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Edit(ctx context.Context, id uuid.UUID, req domain.EditIncidentRequest, actor uuid.UUID, asAdmin bool) (*domain.Incident, error)
	AddComment(ctx context.Context, id, author uuid.UUID, req domain.AddCommentRequest) (*domain.Comment, error)
	ListStatusLog(ctx context.Context, id uuid.UUID) ([]domain.StatusLogEntry, error)
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type AdminIncidentService interface {
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor uuid.UUID) (*domain.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationService interface {
	List(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.IncidentStats, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int, status domain.IncidentStatus) ([]*domain.Incident, int64, error)
	UpdateFields(ctx context.Context, incident *domain.Incident) error
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

type GeofenceValidator interface {
	Contains(lat, lng float64) bool
	Validate(lat, lng float64) error
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.StatusWebhookPayload) error
}

// StatusChangeDispatcher fires after a committed status change. It must
// never fail the transition: implementations log and swallow errors.
type StatusChangeDispatcher interface {
	Dispatch(ctx context.Context, incident *domain.Incident, entry *domain.StatusLogEntry)
}

type Service struct {
	AdminIncidentService  AdminIncidentService
	PublicIncidentService PublicIncidentService
	NotificationService   NotificationService
	StatsService          StatsService
}

func NewService(
	adminIncidentService AdminIncidentService,
	publicIncidentService PublicIncidentService,
	notificationService NotificationService,
	statsService StatsService,
) *Service {
	return &Service{
		AdminIncidentService:  adminIncidentService,
		PublicIncidentService: publicIncidentService,
		NotificationService:   notificationService,
		StatsService:          statsService,
	}
}
