package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/internal/service"
	mock_service "github.com/elpatrico11/incident-app-sub000/internal/service/mocks"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }

func timePtr(ts time.Time) *time.Time { return &ts }

func TestAdminService_TransitionStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	id := uuid.New()
	actor := uuid.New()
	now := time.Now().UTC()

	entry := &domain.StatusLogEntry{
		ID:             uuid.New(),
		IncidentID:     id,
		PreviousStatus: domain.StatusNew,
		NewStatus:      domain.StatusResolved,
		ChangedAt:      now,
		ChangedBy:      actor,
	}
	inc := &domain.Incident{
		ID:             id,
		Category:       domain.CategoryPothole,
		Status:         domain.StatusResolved,
		StatusCategory: domain.CategoryFinal,
		ResolvedAt:     timePtr(now),
	}

	repo.EXPECT().
		TransitionStatus(gomock.Any(), id, domain.StatusResolved, actor).
		Return(inc, entry, nil).
		Times(1)
	disp.EXPECT().
		Dispatch(gomock.Any(), inc, entry).
		Times(1)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	got, err := svc.TransitionStatus(context.Background(), id, "resolved", actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.StatusResolved {
		t.Fatalf("status=%q", got.Status)
	}
	if got.ResolvedAt == nil {
		t.Fatal("entering a final status must stamp resolvedAt")
	}
}

func TestAdminService_TransitionStatus_SameStatusNoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	id := uuid.New()
	actor := uuid.New()
	inc := &domain.Incident{ID: id, Status: domain.StatusConfirmed}

	// repo reports the no-op with a nil entry; no dispatch may happen
	repo.EXPECT().
		TransitionStatus(gomock.Any(), id, domain.StatusConfirmed, actor).
		Return(inc, nil, nil).
		Times(1)
	disp.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	got, err := svc.TransitionStatus(context.Background(), id, "confirmed", actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status=%q", got.Status)
	}
}

func TestAdminService_TransitionStatus_MissingActor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	// no repo call at all: the transition must not reach storage
	repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	_, err := svc.TransitionStatus(context.Background(), uuid.New(), "resolved", uuid.Nil)
	if !errors.Is(err, e.ErrMissingActor) {
		t.Fatalf("err=%v, want ErrMissingActor", err)
	}
}

func TestAdminService_TransitionStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	_, err := svc.TransitionStatus(context.Background(), uuid.New(), "shipped", uuid.New())
	if !errors.Is(err, e.ErrInvalidStatus) {
		t.Fatalf("err=%v, want ErrInvalidStatus", err)
	}
}

func TestAdminService_TransitionStatus_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	id := uuid.New()
	actor := uuid.New()

	repo.EXPECT().
		TransitionStatus(gomock.Any(), id, domain.StatusClosed, actor).
		Return(nil, nil, e.ErrNotFound).
		Times(1)
	disp.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	_, err := svc.TransitionStatus(context.Background(), id, "closed", actor)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestAdminService_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	disp := mock_service.NewMockStatusChangeDispatcher(ctrl)

	want := []*domain.Incident{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.EXPECT().
		List(gomock.Any(), 2, 10, domain.StatusEscalated).
		Return(want, int64(42), nil).
		Times(1)

	svc := service.NewAdminIncidentService(repo, disp, newTestLogger())

	got, total, err := svc.List(context.Background(), domain.ListIncidentsRequest{
		Page: 2, Limit: 10, Status: "escalated",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 42 || len(got) != 2 {
		t.Fatalf("total=%d len=%d", total, len(got))
	}
}

func TestDispatcher_NotifiesReporterAndEnqueuesWebhook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifications := mock_service.NewMockNotificationRepository(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	reporter := uuid.New()
	actor := uuid.New()
	inc := &domain.Incident{
		ID:         uuid.New(),
		Category:   domain.CategoryStreetLighting,
		Status:     domain.StatusConfirmed,
		ReporterID: uuidPtr(reporter),
	}
	entry := &domain.StatusLogEntry{
		IncidentID:     inc.ID,
		PreviousStatus: domain.StatusUnderReview,
		NewStatus:      domain.StatusConfirmed,
		ChangedBy:      actor,
		ChangedAt:      time.Now().UTC(),
	}

	notifications.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.RecipientID != reporter {
				t.Errorf("recipient=%s, want reporter %s", n.RecipientID, reporter)
			}
			if n.IncidentID != inc.ID {
				t.Errorf("incident=%s, want %s", n.IncidentID, inc.ID)
			}
			want := domain.StatusChangeMessage(domain.CategoryStreetLighting, domain.StatusConfirmed)
			if n.Message != want {
				t.Errorf("message=%q, want %q", n.Message, want)
			}
			return nil
		}).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.StatusWebhookPayload) error {
			if p.IncidentID != inc.ID || p.NewStatus != domain.StatusConfirmed {
				t.Errorf("payload mismatch: %+v", p)
			}
			return nil
		}).
		Times(1)

	d := service.NewDispatcher(notifications, queue, newTestLogger())
	d.Dispatch(context.Background(), inc, entry)
}

func TestDispatcher_AnonymousIncidentSkipsNotification(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifications := mock_service.NewMockNotificationRepository(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	inc := &domain.Incident{
		ID:       uuid.New(),
		Category: domain.CategoryGraffiti,
		Status:   domain.StatusRejected,
	}
	entry := &domain.StatusLogEntry{
		IncidentID:     inc.ID,
		PreviousStatus: domain.StatusNew,
		NewStatus:      domain.StatusRejected,
		ChangedBy:      uuid.New(),
	}

	notifications.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Times(0)
	// the webhook still fires for anonymous incidents
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	d := service.NewDispatcher(notifications, queue, newTestLogger())
	d.Dispatch(context.Background(), inc, entry)
}

func TestDispatcher_SwallowsSideEffectErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifications := mock_service.NewMockNotificationRepository(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	reporter := uuid.New()
	inc := &domain.Incident{
		ID:         uuid.New(),
		Category:   domain.CategoryNoise,
		ReporterID: uuidPtr(reporter),
	}
	entry := &domain.StatusLogEntry{
		IncidentID: inc.ID,
		NewStatus:  domain.StatusClosed,
		ChangedBy:  uuid.New(),
	}

	notifications.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	// Dispatch has no error return; it must not panic either
	d := service.NewDispatcher(notifications, queue, newTestLogger())
	d.Dispatch(context.Background(), inc, entry)
}
