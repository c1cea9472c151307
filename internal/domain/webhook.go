package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusWebhookPayload is pushed onto the redis queue after every
// committed status change and delivered by the webhook sender.
type StatusWebhookPayload struct {
	IncidentID     uuid.UUID        `json:"incident_id"`
	Category       IncidentCategory `json:"category"`
	PreviousStatus IncidentStatus   `json:"previous_status"`
	NewStatus      IncidentStatus   `json:"new_status"`
	ChangedBy      uuid.UUID        `json:"changed_by"`
	ChangedAt      time.Time        `json:"changed_at"`
}
