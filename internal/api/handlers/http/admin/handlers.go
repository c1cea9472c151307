package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
	"github.com/elpatrico11/incident-app-sub000/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminIncidents interface {
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, newStatus string, actor uuid.UUID) (*domain.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type IncidentEditor interface {
	Edit(ctx context.Context, id uuid.UUID, req domain.EditIncidentRequest, actor uuid.UUID, asAdmin bool) (*domain.Incident, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.IncidentStats, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminIncidents
	Editor IncidentEditor
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, admin AdminIncidents, editor IncidentEditor, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Editor: editor,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminIncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminIncidentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	req := domain.ListIncidentsRequest{
		Page:   parseInt(r.URL.Query().Get("page"), 1),
		Limit:  parseInt(r.URL.Query().Get("limit"), 20),
		Status: r.URL.Query().Get("status"),
	}
	if req.Limit > 100 {
		req.Limit = 100
		l.Warn("limit capped", slog.Int("limit", req.Limit))
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid query"})
		return
	}

	incidents, total, err := h.Admin.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed", slog.Int("count", len(incidents)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"total":     total,
		"page":      req.Page,
		"limit":     req.Limit,
	})
}

func (h *Handler) AdminIncidentGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	incident, err := h.Admin.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) AdminIncidentTransition(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	// actor comes from the identity layer; the lifecycle refuses to
	// record unattributed transitions
	actor, ok := actorFromHeader(r)
	if !ok {
		l.Warn("missing or invalid actor header")
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing actor"})
		return
	}

	var req domain.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	l.Info("transitioning incident",
		slog.String("id", id.String()),
		slog.String("new_status", req.NewStatus),
		slog.String("actor", actor.String()),
	)

	incident, err := h.Admin.TransitionStatus(r.Context(), id, req.NewStatus, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) AdminIncidentEdit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	actor, ok := actorFromHeader(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing actor"})
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

	incident, err := h.Editor.Edit(r.Context(), id, req, actor, true)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) AdminIncidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
