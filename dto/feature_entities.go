package dto

type Feature struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ElementId   string `json:"elementId"`
}

type FeatureGroup struct {
	Version  string     `json:"version"`
	Date     string     `json:"date"`
	Features []*Feature `json:"features"`
}

// UserFeatureState is the persisted record of which announcements the user has seen.
type UserFeatureState struct {
	LastSeenVersion string   `json:"lastSeenVersion"`
	SeenFeatures    []string `json:"seenFeatures"`
}
