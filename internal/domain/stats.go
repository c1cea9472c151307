package domain

type IncidentStats struct {
	ByCategory    map[StatusCategory]int64 `json:"by_category"`
	CreatedRecent int64                    `json:"created_recent"`
	WindowMinutes int                      `json:"window_minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}
