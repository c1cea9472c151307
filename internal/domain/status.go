package domain

import (
	"fmt"
	"time"

	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

type IncidentStatus string

const (
	StatusNew         IncidentStatus = "new"
	StatusUnderReview IncidentStatus = "under_review"
	StatusConfirmed   IncidentStatus = "confirmed"
	StatusOnHold      IncidentStatus = "on_hold"
	StatusEscalated   IncidentStatus = "escalated"
	StatusResolved    IncidentStatus = "resolved"
	StatusUnresolved  IncidentStatus = "unresolved"
	StatusClosed      IncidentStatus = "closed"
	StatusRejected    IncidentStatus = "rejected"
)

type StatusCategory string

const (
	CategoryInitial StatusCategory = "initial"
	CategoryActive  StatusCategory = "active"
	CategoryFinal   StatusCategory = "final"
)

var statusCategories = map[IncidentStatus]StatusCategory{
	StatusNew:         CategoryInitial,
	StatusUnderReview: CategoryInitial,
	StatusConfirmed:   CategoryActive,
	StatusOnHold:      CategoryActive,
	StatusEscalated:   CategoryActive,
	StatusResolved:    CategoryFinal,
	StatusUnresolved:  CategoryFinal,
	StatusClosed:      CategoryFinal,
	StatusRejected:    CategoryFinal,
}

func AllStatuses() []IncidentStatus {
	return []IncidentStatus{
		StatusNew, StatusUnderReview,
		StatusConfirmed, StatusOnHold, StatusEscalated,
		StatusResolved, StatusUnresolved, StatusClosed, StatusRejected,
	}
}

// ParseStatus rejects unknown values at the boundary so raw strings
// never reach the transition logic.
func ParseStatus(s string) (IncidentStatus, error) {
	st := IncidentStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("parse status %q: %w", s, e.ErrInvalidStatus)
	}
	return st, nil
}

func (s IncidentStatus) Valid() bool {
	_, ok := statusCategories[s]
	return ok
}

// Category is the only way to obtain a status category. It is derived,
// never stored or set by callers.
func (s IncidentStatus) Category() StatusCategory {
	return statusCategories[s]
}

func (s IncidentStatus) IsFinal() bool {
	return statusCategories[s] == CategoryFinal
}

// NextResolvedAt is the canonical resolution-time rule: resolved_at is
// set whenever the incident enters any final-group status and cleared
// whenever it leaves the final group.
func NextResolvedAt(newStatus IncidentStatus, now time.Time) *time.Time {
	if newStatus.IsFinal() {
		return &now
	}
	return nil
}
