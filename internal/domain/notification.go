package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID `json:"id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	IncidentID  uuid.UUID `json:"incident_id"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func StatusChangeMessage(category IncidentCategory, newStatus IncidentStatus) string {
	return fmt.Sprintf("Your incident of category %s was updated to status %s", category, newStatus)
}
