package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/internal/service"
	mock_service "github.com/elpatrico11/incident-app-sub000/internal/service/mocks"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

func TestStatsService_GetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	repo.EXPECT().
		CountByCategory(gomock.Any()).
		Return(map[domain.StatusCategory]int64{
			domain.CategoryInitial: 3,
			domain.CategoryActive:  2,
			domain.CategoryFinal:   7,
		}, nil).
		Times(1)
	repo.EXPECT().
		CountCreatedSince(gomock.Any(), 60).
		Return(int64(4), nil).
		Times(1)

	svc := service.NewStatsService(repo)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.ByCategory[domain.CategoryFinal] != 7 {
		t.Fatalf("final=%d", stats.ByCategory[domain.CategoryFinal])
	}
	if stats.CreatedRecent != 4 || stats.WindowMinutes != 60 {
		t.Fatalf("stats=%+v", stats)
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	repo := mock_service.NewMockIncidentRepository(ctrl)
	repo.EXPECT().
		CountByCategory(gomock.Any()).
		Return(nil, wantErr).
		Times(1)

	svc := service.NewStatsService(repo)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60}); !errors.Is(err, wantErr) {
		t.Fatalf("err=%v", err)
	}
}

func TestNotificationService_RequiresRecipient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockNotificationRepository(ctrl)
	repo.EXPECT().ListByRecipient(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewNotificationService(repo)

	if _, err := svc.List(context.Background(), uuid.Nil); !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
	if _, err := svc.MarkRead(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	recipient := uuid.New()
	want := &domain.Notification{ID: id, RecipientID: recipient, IsRead: true}

	repo := mock_service.NewMockNotificationRepository(ctrl)
	repo.EXPECT().
		MarkRead(gomock.Any(), id, recipient).
		Return(want, nil).
		Times(1)

	svc := service.NewNotificationService(repo)

	got, err := svc.MarkRead(context.Background(), id, recipient)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsRead {
		t.Fatal("notification should be read")
	}
}
