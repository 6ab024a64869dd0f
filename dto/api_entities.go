package dto

import "time"

type LoginRequest struct {
	Instance string `json:"instance"`
}

type LoginResponse struct {
	AuthorizeUrl string `json:"authorize_url"`
}

type SessionResponse struct {
	Authenticated   bool     `json:"authenticated"`
	Instance        string   `json:"instance,omitempty"`
	Account         *Account `json:"account,omitempty"`
	TimeoutState    string   `json:"timeout_state"`
	RedirectToLogin bool     `json:"redirect_to_login"`
}

type TootsResponse struct {
	Toots      []*ScheduledStatus `json:"toots"`
	Count      int                `json:"count"`
	CountToday int                `json:"count_today"`
	IsLoading  bool               `json:"is_loading"`
	Error      string             `json:"error"`
	Editing    *ScheduledStatus   `json:"editing"`
}

type MediaUpdateRequest struct {
	Description *string `json:"description"`
	Focus       *Focus  `json:"focus"`
}

type FeaturesResponse struct {
	LatestVersion string          `json:"latest_version"`
	Unseen        []*FeatureGroup `json:"unseen"`
	NewFeatureIds []string        `json:"new_feature_ids"`
}

type ActivityRequest struct {
	Kind string `json:"kind"`
}

type Notice struct {
	Id        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	HasAction bool      `json:"has_action"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryEntry struct {
	LoggedAt    time.Time `json:"logged_at"`
	Action      string    `json:"action"`
	StatusId    string    `json:"status_id"`
	ScheduledAt string    `json:"scheduled_at"`
	Text        string    `json:"text"`
}
