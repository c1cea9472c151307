package service

import (
	"context"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
)

type statsService struct {
	repo IncidentRepository
}

func NewStatsService(repo IncidentRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.IncidentStats, error) {
	byCategory, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.CountCreatedSince(ctx, req.Minutes)
	if err != nil {
		return nil, err
	}

	return &domain.IncidentStats{
		ByCategory:    byCategory,
		CreatedRecent: recent,
		WindowMinutes: req.Minutes,
	}, nil
}
