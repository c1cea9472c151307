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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `
	id, category, description, lat, lng, address, images,
	status, resolved_at, reporter_id,
	event_date, days_of_week, time_of_day,
	created_at, updated_at`

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var inc domain.Incident
	if err := row.Scan(
		&inc.ID,
		&inc.Category,
		&inc.Description,
		&inc.Lat,
		&inc.Lng,
		&inc.Address,
		&inc.Images,
		&inc.Status,
		&inc.ResolvedAt,
		&inc.ReporterID,
		&inc.EventDate,
		&inc.DaysOfWeek,
		&inc.TimeOfDay,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// status_category is a view over status, recomputed on every read
	inc.StatusCategory = inc.Status.Category()
	return &inc, nil
}

func (p *IncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Create"

	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}
	incident.UpdatedAt = incident.CreatedAt
	if incident.Status == "" {
		incident.Status = domain.StatusNew
	}
	incident.StatusCategory = incident.Status.Category()
	if incident.Images == nil {
		incident.Images = []string{}
	}
	if incident.DaysOfWeek == nil {
		incident.DaysOfWeek = []string{}
	}

	const query = `
		INSERT INTO incidents (id, category, description, lat, lng, address, images,
			status, reporter_id, event_date, days_of_week, time_of_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.Category,
		incident.Description,
		incident.Lat,
		incident.Lng,
		incident.Address,
		incident.Images,
		incident.Status,
		incident.ReporterID,
		incident.EventDate,
		incident.DaysOfWeek,
		incident.TimeOfDay,
		incident.CreatedAt,
		incident.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	logs, err := p.ListStatusLog(ctx, id)
	if err != nil {
		return nil, err
	}
	inc.StatusLogs = logs

	comments, err := p.listComments(ctx, id)
	if err != nil {
		return nil, err
	}
	inc.Comments = comments

	return inc, nil
}

func (p *IncidentRepo) List(ctx context.Context, page, limit int, status domain.IncidentStatus) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM incidents`
	listQuery := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	countArgs := []any{}
	listArgs := []any{limit, offset}
	if status != "" {
		countQuery = `SELECT COUNT(*) FROM incidents WHERE status = $1`
		listQuery = `SELECT ` + incidentColumns + ` FROM incidents WHERE status = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		countArgs = append(countArgs, status)
		listArgs = append(listArgs, status)
	}

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return incidents, total, nil
}

func (p *IncidentRepo) UpdateFields(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.UpdateFields"

	// status and resolved_at deliberately excluded: they only move
	// through TransitionStatus
	const query = `
		UPDATE incidents
		SET description  = $2,
			lat          = $3,
			lng          = $4,
			address      = $5,
			images       = $6,
			event_date   = $7,
			days_of_week = $8,
			time_of_day  = $9,
			updated_at   = $10
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.Description,
		incident.Lat,
		incident.Lng,
		incident.Address,
		incident.Images,
		incident.EventDate,
		incident.DaysOfWeek,
		incident.TimeOfDay,
		time.Now().UTC(),
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", incident.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// TransitionStatus locks the incident row, short-circuits the same-status
// no-op, then writes the new status plus exactly one status_logs row in
// the same transaction. Concurrent transitions on one incident serialize
// on the row lock, so no update or log entry can be lost.
func (p *IncidentRepo) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus domain.IncidentStatus, actor uuid.UUID) (*domain.Incident, *domain.StatusLogEntry, error) {
	const op = "postgres.Incident.TransitionStatus"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var current domain.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	if current == newStatus {
		// idempotent no-op: no mutation, no audit entry
		inc, err := p.Get(ctx, id)
		return inc, nil, err
	}

	now := time.Now().UTC()
	resolvedAt := domain.NextResolvedAt(newStatus, now)

	_, err = tx.Exec(ctx,
		`UPDATE incidents SET status = $2, resolved_at = $3, updated_at = $4 WHERE id = $1`,
		id, newStatus, resolvedAt, now,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	entry := domain.StatusLogEntry{
		ID:             uuid.New(),
		IncidentID:     id,
		PreviousStatus: current,
		NewStatus:      newStatus,
		ChangedAt:      now,
		ChangedBy:      actor,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO status_logs (id, incident_id, previous_status, new_status, changed_at, changed_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.IncidentID, entry.PreviousStatus, entry.NewStatus, entry.ChangedAt, entry.ChangedBy,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, nil, e.WrapError(ctx, op, err)
	}

	inc, err := p.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return inc, &entry, nil
}

func (p *IncidentRepo) ListStatusLog(ctx context.Context, incidentID uuid.UUID) ([]domain.StatusLogEntry, error) {
	const op = "postgres.Incident.ListStatusLog"

	const query = `
		SELECT id, incident_id, previous_status, new_status, changed_at, changed_by
		FROM status_logs
		WHERE incident_id = $1
		ORDER BY changed_at ASC, id ASC
	`

	rows, err := p.pool.Query(ctx, query, incidentID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	logs := make([]domain.StatusLogEntry, 0, 8)
	for rows.Next() {
		var l domain.StatusLogEntry
		if err := rows.Scan(&l.ID, &l.IncidentID, &l.PreviousStatus, &l.NewStatus, &l.ChangedAt, &l.ChangedBy); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return logs, nil
}

func (p *IncidentRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	const op = "postgres.Incident.AddComment"

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO comments (id, incident_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		comment.ID, comment.IncidentID, comment.AuthorID, comment.Body, comment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *IncidentRepo) listComments(ctx context.Context, incidentID uuid.UUID) ([]domain.Comment, error) {
	const op = "postgres.Incident.listComments"

	const query = `
		SELECT id, incident_id, author_id, body, created_at
		FROM comments
		WHERE incident_id = $1
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, incidentID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0, 4)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.IncidentID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return comments, nil
}

func (p *IncidentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Incident.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *IncidentRepo) CountByCategory(ctx context.Context) (map[domain.StatusCategory]int64, error) {
	const op = "postgres.Incident.CountByCategory"

	rows, err := p.pool.Query(ctx, `SELECT status, COUNT(*) FROM incidents GROUP BY status`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.StatusCategory]int64, 3)
	for rows.Next() {
		var status domain.IncidentStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts[status.Category()] += n
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (p *IncidentRepo) CountCreatedSince(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Incident.CountCreatedSince"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(*)
		FROM incidents
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int("minutes", minutes))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
