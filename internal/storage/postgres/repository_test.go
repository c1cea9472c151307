//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(testPool, testLogger); err != nil {
		fmt.Println("migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE comments, notifications, status_logs, incidents`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func createIncident(t *testing.T, repo *IncidentRepo, reporter *uuid.UUID) *domain.Incident {
	t.Helper()
	inc := &domain.Incident{
		Category:    domain.CategoryPothole,
		Description: "test pothole",
		Lat:         49.8126,
		Lng:         19.0459,
		ReporterID:  reporter,
	}
	if err := repo.Create(context.Background(), inc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return inc
}

func TestIncidentRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)

	if inc.ID == uuid.Nil {
		t.Fatal("ID not set")
	}
	if inc.Status != domain.StatusNew {
		t.Fatalf("status=%q", inc.Status)
	}
	if inc.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}

	got, err := repo.Get(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StatusCategory != domain.CategoryInitial {
		t.Fatalf("status_category=%q", got.StatusCategory)
	}
	if got.ResolvedAt != nil {
		t.Fatal("new incident must not have resolvedAt")
	}
}

func TestIncidentRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestIncidentRepo_TransitionStatus_WritesAuditEntry(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)
	actor := uuid.New()

	got, entry, err := repo.TransitionStatus(context.Background(), inc.ID, domain.StatusUnderReview, actor)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if entry == nil {
		t.Fatal("expected an audit entry")
	}
	if entry.PreviousStatus != domain.StatusNew || entry.NewStatus != domain.StatusUnderReview {
		t.Fatalf("entry=%+v", entry)
	}
	if entry.ChangedBy != actor {
		t.Fatalf("changed_by=%s", entry.ChangedBy)
	}
	if got.Status != domain.StatusUnderReview {
		t.Fatalf("status=%q", got.Status)
	}

	logs, err := repo.ListStatusLog(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("ListStatusLog: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("len(logs)=%d", len(logs))
	}
}

func TestIncidentRepo_TransitionStatus_FinalStampsResolvedAt(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)
	actor := uuid.New()

	got, _, err := repo.TransitionStatus(context.Background(), inc.ID, domain.StatusResolved, actor)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if got.ResolvedAt == nil {
		t.Fatal("resolvedAt not stamped for final status")
	}
	if got.StatusCategory != domain.CategoryFinal {
		t.Fatalf("status_category=%q", got.StatusCategory)
	}

	// leaving the final group clears the stamp again
	got, _, err = repo.TransitionStatus(context.Background(), inc.ID, domain.StatusConfirmed, actor)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if got.ResolvedAt != nil {
		t.Fatal("resolvedAt must be cleared when leaving the final group")
	}
}

func TestIncidentRepo_TransitionStatus_SameStatusNoAuditEntry(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)
	actor := uuid.New()

	got, entry, err := repo.TransitionStatus(context.Background(), inc.ID, domain.StatusNew, actor)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if entry != nil {
		t.Fatalf("no-op transition must not write an entry, got %+v", entry)
	}
	if got.Status != domain.StatusNew {
		t.Fatalf("status=%q", got.Status)
	}

	logs, err := repo.ListStatusLog(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("ListStatusLog: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("len(logs)=%d", len(logs))
	}
}

// Two concurrent transitions on the same incident serialize on the row
// lock: both commit, the audit trail holds exactly two entries, and the
// second entry's previous status is the first entry's new status.
func TestIncidentRepo_TransitionStatus_ConcurrentSerializes(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)
	actor := uuid.New()

	targets := []domain.IncidentStatus{domain.StatusUnderReview, domain.StatusConfirmed}

	var wg sync.WaitGroup
	errs := make([]error, len(targets))
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target domain.IncidentStatus) {
			defer wg.Done()
			_, _, errs[i] = repo.TransitionStatus(context.Background(), inc.ID, target, actor)
		}(i, target)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("transition %d: %v", i, err)
		}
	}

	logs, err := repo.ListStatusLog(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("ListStatusLog: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("len(logs)=%d, want 2", len(logs))
	}
	if logs[0].PreviousStatus != domain.StatusNew {
		t.Fatalf("first entry previous=%q", logs[0].PreviousStatus)
	}
	if logs[1].PreviousStatus != logs[0].NewStatus {
		t.Fatalf("audit chain broken: %q then previous=%q", logs[0].NewStatus, logs[1].PreviousStatus)
	}
}

func TestIncidentRepo_UpdateFields_DoesNotTouchStatus(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)

	if _, _, err := repo.TransitionStatus(context.Background(), inc.ID, domain.StatusConfirmed, uuid.New()); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	inc.Description = "edited"
	inc.Status = domain.StatusClosed // must be ignored by UpdateFields
	if err := repo.UpdateFields(context.Background(), inc); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	got, err := repo.Get(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "edited" {
		t.Fatalf("description=%q", got.Description)
	}
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status=%q, edits must not move status", got.Status)
	}
}

func TestIncidentRepo_List_FilterByStatus(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	a := createIncident(t, repo, nil)
	createIncident(t, repo, nil)

	if _, _, err := repo.TransitionStatus(context.Background(), a.ID, domain.StatusEscalated, uuid.New()); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	incidents, total, err := repo.List(context.Background(), 1, 20, domain.StatusEscalated)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(incidents) != 1 {
		t.Fatalf("total=%d len=%d", total, len(incidents))
	}
	if incidents[0].ID != a.ID {
		t.Fatalf("id=%s", incidents[0].ID)
	}

	_, total, err = repo.List(context.Background(), 1, 20, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Fatalf("total=%d", total)
	}
}

func TestIncidentRepo_Delete(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	inc := createIncident(t, repo, nil)

	if err := repo.Delete(context.Background(), inc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), inc.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(context.Background(), inc.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("second delete err=%v, want ErrNotFound", err)
	}
}

func TestIncidentRepo_Comments(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	reporter := uuid.New()
	inc := createIncident(t, repo, &reporter)

	c := &domain.Comment{
		ID:         uuid.New(),
		IncidentID: inc.ID,
		AuthorID:   reporter,
		Body:       "still not fixed",
	}
	if err := repo.AddComment(context.Background(), c); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	got, err := repo.Get(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0].Body != "still not fixed" {
		t.Fatalf("comments=%+v", got.Comments)
	}
}

func TestIncidentRepo_Stats(t *testing.T) {
	truncateAll(t)

	repo := NewIncidentRepo(testPool, testLogger)
	a := createIncident(t, repo, nil)
	createIncident(t, repo, nil)
	c := createIncident(t, repo, nil)

	actor := uuid.New()
	if _, _, err := repo.TransitionStatus(context.Background(), a.ID, domain.StatusConfirmed, actor); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if _, _, err := repo.TransitionStatus(context.Background(), c.ID, domain.StatusRejected, actor); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	byCategory, err := repo.CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("CountByCategory: %v", err)
	}
	if byCategory[domain.CategoryInitial] != 1 || byCategory[domain.CategoryActive] != 1 || byCategory[domain.CategoryFinal] != 1 {
		t.Fatalf("byCategory=%v", byCategory)
	}

	recent, err := repo.CountCreatedSince(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if recent != 3 {
		t.Fatalf("recent=%d", recent)
	}
}

func TestNotificationRepo_MarkRead_Ownership(t *testing.T) {
	truncateAll(t)

	incRepo := NewIncidentRepo(testPool, testLogger)
	repo := NewNotificationRepo(testPool, testLogger)

	reporter := uuid.New()
	inc := createIncident(t, incRepo, &reporter)

	n := &domain.Notification{
		RecipientID: reporter,
		IncidentID:  inc.ID,
		Message:     "test",
	}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := repo.ListByRecipient(context.Background(), reporter)
	if err != nil {
		t.Fatalf("ListByRecipient: %v", err)
	}
	if len(list) != 1 || list[0].IsRead {
		t.Fatalf("list=%+v", list)
	}

	// someone else cannot mark it read
	if _, err := repo.MarkRead(context.Background(), list[0].ID, uuid.New()); !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}

	got, err := repo.MarkRead(context.Background(), list[0].ID, reporter)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !got.IsRead {
		t.Fatal("notification should be read")
	}

	// missing notification is NotFound, not Unauthorized
	if _, err := repo.MarkRead(context.Background(), uuid.New(), reporter); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
