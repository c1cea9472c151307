package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicIncidents interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest, reporterID *uuid.UUID) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Edit(ctx context.Context, id uuid.UUID, req domain.EditIncidentRequest, actor uuid.UUID, asAdmin bool) (*domain.Incident, error)
	AddComment(ctx context.Context, id, author uuid.UUID, req domain.AddCommentRequest) (*domain.Comment, error)
	ListStatusLog(ctx context.Context, id uuid.UUID) ([]domain.StatusLogEntry, error)
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type Notifications interface {
	List(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Notification, error)
}

type Handler struct {
	logger        *slog.Logger
	Incidents     PublicIncidents
	Notifications Notifications
}

func NewHandler(logger *slog.Logger, incidents PublicIncidents, notifications Notifications) *Handler {
	return &Handler{
		logger:        logger,
		Incidents:     incidents,
		Notifications: notifications,
	}
}

func (h *Handler) PublicIncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// the X-User-ID header is optional here: reports may be anonymous
	var reporterID *uuid.UUID
	if id, ok := userFromHeader(r); ok {
		reporterID = &id
	}

	l.Info("creating incident",
		slog.String("category", string(req.Category)),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Bool("anonymous", reporterID == nil),
	)

	incident, err := h.Incidents.Create(r.Context(), req, reporterID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, incident)
}

func (h *Handler) PublicIncidentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	incident, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) PublicIncidentEdit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	actor, ok := userFromHeader(r)
	if !ok {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	var req domain.EditIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	incident, err := h.Incidents.Edit(r.Context(), id, req, actor, false)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) PublicIncidentAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	author, ok := userFromHeader(r)
	if !ok {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	var req domain.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	comment, err := h.Incidents.AddComment(r.Context(), id, author, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) PublicIncidentStatusLog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	logs, err := h.Incidents.ListStatusLog(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"status_logs": logs})
}

// PublicLocationCheck is the interactive geofence probe used before
// the submission form is completed.
func (h *Handler) PublicLocationCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationCheckRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	resp, err := h.Incidents.CheckLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) NotificationList(w http.ResponseWriter, r *http.Request) {
	recipient, ok := userFromHeader(r)
	if !ok {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	notifications, err := h.Notifications.List(r.Context(), recipient)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (h *Handler) NotificationMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	recipient, ok := userFromHeader(r)
	if !ok {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	notification, err := h.Notifications.MarkRead(r.Context(), id, recipient)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, notification)
}

func (h *Handler) urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
