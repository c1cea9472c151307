package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentCategory string

const (
	CategoryPothole        IncidentCategory = "pothole"
	CategoryStreetLighting IncidentCategory = "street_lighting"
	CategoryVandalism      IncidentCategory = "vandalism"
	CategoryIllegalDumping IncidentCategory = "illegal_dumping"
	CategoryGraffiti       IncidentCategory = "graffiti"
	CategoryRoadDamage     IncidentCategory = "road_damage"
	CategoryNoise          IncidentCategory = "noise"
	CategoryOther          IncidentCategory = "other"
)

var incidentCategories = map[IncidentCategory]struct{}{
	CategoryPothole:        {},
	CategoryStreetLighting: {},
	CategoryVandalism:      {},
	CategoryIllegalDumping: {},
	CategoryGraffiti:       {},
	CategoryRoadDamage:     {},
	CategoryNoise:          {},
	CategoryOther:          {},
}

func (c IncidentCategory) Valid() bool {
	_, ok := incidentCategories[c]
	return ok
}

type Incident struct {
	ID          uuid.UUID        `json:"id"`
	Category    IncidentCategory `json:"category"`
	Description string           `json:"description"`
	Lat         float64          `json:"lat"` // -90..90
	Lng         float64          `json:"lng"` // -180..180
	Address     string           `json:"address,omitempty"`
	Images      []string         `json:"images"`
	Status      IncidentStatus   `json:"status"`
	// StatusCategory is serialized for clients but always recomputed
	// from Status; it has no column of its own.
	StatusCategory StatusCategory   `json:"status_category"`
	ResolvedAt     *time.Time       `json:"resolved_at,omitempty"`
	StatusLogs     []StatusLogEntry `json:"status_logs,omitempty"`
	Comments       []Comment        `json:"comments,omitempty"`
	ReporterID     *uuid.UUID       `json:"reporter_id,omitempty"`

	// Descriptive metadata, stored verbatim, no lifecycle effect.
	EventDate  *time.Time `json:"event_date,omitempty"`
	DaysOfWeek []string   `json:"days_of_week,omitempty"`
	TimeOfDay  string     `json:"time_of_day,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Anonymous reports have no reporter and receive no notifications.
func (i *Incident) Anonymous() bool {
	return i.ReporterID == nil
}

type StatusLogEntry struct {
	ID             uuid.UUID      `json:"id"`
	IncidentID     uuid.UUID      `json:"incident_id"`
	PreviousStatus IncidentStatus `json:"previous_status"`
	NewStatus      IncidentStatus `json:"new_status"`
	ChangedAt      time.Time      `json:"changed_at"`
	ChangedBy      uuid.UUID      `json:"changed_by"`
}

type Comment struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
