package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (p *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	const op = "postgres.Notification.Create"

	if n.RecipientID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO notifications (id, recipient_id, incident_id, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		n.ID, n.RecipientID, n.IncidentID, n.Message, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err),
			slog.String("recipient_id", n.RecipientID.String()))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *NotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	const op = "postgres.Notification.ListByRecipient"

	const query = `
		SELECT id, recipient_id, incident_id, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, recipientID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0, 8)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.IncidentID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return notifications, nil
}

// MarkRead flips is_read only when the caller is the recipient. A row
// that exists but belongs to someone else comes back as ErrUnauthorized,
// not ErrNotFound, so the handler can answer 403.
func (p *NotificationRepo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error) {
	const op = "postgres.Notification.MarkRead"

	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2
		RETURNING id, recipient_id, incident_id, message, is_read, created_at
	`

	var n domain.Notification
	err := p.pool.QueryRow(ctx, query, id, recipientID).
		Scan(&n.ID, &n.RecipientID, &n.IncidentID, &n.Message, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := p.pool.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM notifications WHERE id = $1)`, id).Scan(&exists); checkErr == nil && exists {
				return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
			}
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &n, nil
}
