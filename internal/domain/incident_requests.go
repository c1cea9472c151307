package domain

import "time"

type CreateIncidentRequest struct {
	Category    IncidentCategory `json:"category" validate:"required,inc_category"`
	Description string           `json:"description" validate:"required,min=1,max=2000"`
	Lat         float64          `json:"lat" validate:"lat"`
	Lng         float64          `json:"lng" validate:"lng"`
	Address     string           `json:"address" validate:"omitempty,max=500"`
	Images      []string         `json:"images" validate:"omitempty,dive,url"`
	EventDate   *time.Time       `json:"event_date"`
	DaysOfWeek  []string         `json:"days_of_week"`
	TimeOfDay   string           `json:"time_of_day" validate:"omitempty,max=50"`
}

// EditIncidentRequest is a partial update; nil fields are left untouched.
// Status is deliberately absent: status only moves through transitions.
type EditIncidentRequest struct {
	Description *string    `json:"description" validate:"omitempty,min=1,max=2000"`
	Lat         *float64   `json:"lat" validate:"omitempty,lat"`
	Lng         *float64   `json:"lng" validate:"omitempty,lng"`
	Address     *string    `json:"address" validate:"omitempty,max=500"`
	Images      *[]string  `json:"images" validate:"omitempty,dive,url"`
	EventDate   *time.Time `json:"event_date"`
	DaysOfWeek  *[]string  `json:"days_of_week"`
	TimeOfDay   *string    `json:"time_of_day" validate:"omitempty,max=50"`
}

type TransitionStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required,inc_status"`
}

type AddCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=1000"`
}

type LocationCheckRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type LocationCheckResponse struct {
	Inside bool   `json:"inside"`
	Reason string `json:"reason,omitempty"`
}

type ListIncidentsRequest struct {
	Page   int    `query:"page" validate:"min=1"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
	Status string `query:"status" validate:"omitempty,inc_status"`
}

type ListIncidentsResponse struct {
	Incidents []Incident `json:"incidents"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
	Total     int64      `json:"total"`
}
