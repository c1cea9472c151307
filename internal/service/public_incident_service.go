package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

type publicIncidentService struct {
	repo     IncidentRepository
	geofence GeofenceValidator
	logger   *slog.Logger
}

func NewPublicIncidentService(
	repo IncidentRepository,
	geofence GeofenceValidator,
	logger *slog.Logger,
) PublicIncidentService {
	return &publicIncidentService{
		repo:     repo,
		geofence: geofence,
		logger:   logger,
	}
}

// Create persists a citizen report. The geofence guard runs here, on
// the authoritative write path, not only in the interactive check: a
// client that skipped CheckLocation still cannot store an out-of-area
// point.
func (s *publicIncidentService) Create(ctx context.Context, req domain.CreateIncidentRequest, reporterID *uuid.UUID) (*domain.Incident, error) {
	if err := s.geofence.Validate(req.Lat, req.Lng); err != nil {
		s.logger.Info("incident rejected by geofence",
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return nil, err
	}

	inc := &domain.Incident{
		ID:          uuid.New(),
		Category:    req.Category,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Address:     req.Address,
		Images:      req.Images,
		Status:      domain.StatusNew,
		ReporterID:  reporterID,
		EventDate:   req.EventDate,
		DaysOfWeek:  req.DaysOfWeek,
		TimeOfDay:   req.TimeOfDay,
	}

	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	s.logger.Info("incident created",
		slog.String("id", inc.ID.String()),
		slog.String("category", string(inc.Category)),
		slog.Bool("anonymous", inc.Anonymous()),
	)
	return inc, nil
}

func (s *publicIncidentService) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.repo.Get(ctx, id)
}

// Edit applies a partial update. Only the reporter or an administrator
// may edit; moved coordinates go through the geofence again.
func (s *publicIncidentService) Edit(ctx context.Context, id uuid.UUID, req domain.EditIncidentRequest, actor uuid.UUID, asAdmin bool) (*domain.Incident, error) {
	const op = "service.PublicIncident.Edit"

	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !asAdmin {
		if actor == uuid.Nil || inc.ReporterID == nil || *inc.ReporterID != actor {
			return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
		}
	}

	if req.Description != nil {
		inc.Description = *req.Description
	}
	if req.Lat != nil {
		inc.Lat = *req.Lat
	}
	if req.Lng != nil {
		inc.Lng = *req.Lng
	}
	if req.Address != nil {
		inc.Address = *req.Address
	}
	if req.Images != nil {
		inc.Images = *req.Images
	}
	if req.EventDate != nil {
		inc.EventDate = req.EventDate
	}
	if req.DaysOfWeek != nil {
		inc.DaysOfWeek = *req.DaysOfWeek
	}
	if req.TimeOfDay != nil {
		inc.TimeOfDay = *req.TimeOfDay
	}

	if req.Lat != nil || req.Lng != nil {
		if err := s.geofence.Validate(inc.Lat, inc.Lng); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateFields(ctx, inc); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

func (s *publicIncidentService) AddComment(ctx context.Context, id, author uuid.UUID, req domain.AddCommentRequest) (*domain.Comment, error) {
	const op = "service.PublicIncident.AddComment"

	if author == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}

	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inc.ReporterID == nil || *inc.ReporterID != author {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}

	comment := &domain.Comment{
		ID:         uuid.New(),
		IncidentID: id,
		AuthorID:   author,
		Body:       req.Body,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *publicIncidentService) ListStatusLog(ctx context.Context, id uuid.UUID) ([]domain.StatusLogEntry, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListStatusLog(ctx, id)
}

// CheckLocation is the interactive pre-submission check. It uses the
// same validator instance as Create/Edit, so both call sites agree on
// boundary behavior.
func (s *publicIncidentService) CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return domain.LocationCheckResponse{}, e.ErrInvalidCoordinates
	}

	if !s.geofence.Contains(req.Lat, req.Lng) {
		return domain.LocationCheckResponse{
			Inside: false,
			Reason: "point outside service area",
		}, nil
	}
	return domain.LocationCheckResponse{Inside: true}, nil
}
