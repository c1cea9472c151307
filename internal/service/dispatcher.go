package service

import (
	"context"
	"log/slog"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
)

// dispatcher delivers the side effects of a committed status change:
// one in-app notification for the reporter (anonymous incidents get
// none) and one payload on the webhook queue. All failures here are
// logged and swallowed; the transition is already committed and is
// never rolled back for a missed notification.
type dispatcher struct {
	notifications NotificationRepository
	webhookQueue  WebhookQueue
	logger        *slog.Logger
}

func NewDispatcher(notifications NotificationRepository, webhookQueue WebhookQueue, logger *slog.Logger) StatusChangeDispatcher {
	return &dispatcher{
		notifications: notifications,
		webhookQueue:  webhookQueue,
		logger:        logger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, incident *domain.Incident, entry *domain.StatusLogEntry) {
	if incident.ReporterID != nil {
		n := &domain.Notification{
			RecipientID: *incident.ReporterID,
			IncidentID:  incident.ID,
			Message:     domain.StatusChangeMessage(incident.Category, entry.NewStatus),
		}
		if err := d.notifications.Create(ctx, n); err != nil {
			d.logger.Error("notification create failed",
				slog.String("incident_id", incident.ID.String()),
				slog.String("recipient_id", incident.ReporterID.String()),
				slog.Any("error", err),
			)
		} else {
			d.logger.Info("notification created",
				slog.String("incident_id", incident.ID.String()),
				slog.String("recipient_id", incident.ReporterID.String()),
			)
		}
	} else {
		d.logger.Debug("anonymous incident, no notification",
			slog.String("incident_id", incident.ID.String()))
	}

	if d.webhookQueue == nil {
		return
	}
	payload := domain.StatusWebhookPayload{
		IncidentID:     incident.ID,
		Category:       incident.Category,
		PreviousStatus: entry.PreviousStatus,
		NewStatus:      entry.NewStatus,
		ChangedBy:      entry.ChangedBy,
		ChangedAt:      entry.ChangedAt,
	}
	if err := d.webhookQueue.Enqueue(ctx, payload); err != nil {
		d.logger.Error("enqueue webhook failed",
			slog.String("incident_id", incident.ID.String()),
			slog.Any("error", err),
		)
	}
}
