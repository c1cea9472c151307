package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

type AdminService struct {
	repo       IncidentRepository
	dispatcher StatusChangeDispatcher
	logger     *slog.Logger
}

func NewAdminIncidentService(repo IncidentRepository, dispatcher StatusChangeDispatcher, logger *slog.Logger) *AdminService {
	return &AdminService{repo: repo, dispatcher: dispatcher, logger: logger}
}

func (s *AdminService) List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error) {
	return s.repo.List(ctx, req.Page, req.Limit, domain.IncidentStatus(req.Status))
}

func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.repo.Get(ctx, id)
}

// TransitionStatus is the lifecycle entry point: it validates the target
// status and the actor, runs the atomic status+audit write, and fires
// the dispatcher for committed changes. Same-status calls are silent
// no-ops with no audit entry and no dispatch.
func (s *AdminService) TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor uuid.UUID) (*domain.Incident, error) {
	const op = "service.AdminIncident.TransitionStatus"

	if actor == uuid.Nil {
		// a transition without a known actor must not be recorded at
		// all; failing here keeps the audit trail fully attributed
		return nil, fmt.Errorf("%s: %w", op, e.ErrMissingActor)
	}

	target, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	inc, entry, err := s.repo.TransitionStatus(ctx, id, target, actor)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		s.logger.Debug("status unchanged, transition is a no-op",
			slog.String("id", id.String()),
			slog.String("status", string(target)),
		)
		return inc, nil
	}

	s.logger.Info("incident status changed",
		slog.String("id", id.String()),
		slog.String("previous", string(entry.PreviousStatus)),
		slog.String("new", string(entry.NewStatus)),
		slog.String("actor", actor.String()),
	)

	s.dispatcher.Dispatch(ctx, inc, entry)

	return inc, nil
}

func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
