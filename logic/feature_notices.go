package logic

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"toot_scheduler/dal"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

const (
	slotFeatureState   = "masto-publish-later-features"
	maxUnseenGroups    = 3
	fallbackVersion    = "1.0.0"
	featureCatalogFile = "catalog/features.jsonc"
)

//go:embed catalog
var catalogFS embed.FS

// IFeatureNotices tracks which "what's new" announcements the user has seen.
type IFeatureNotices interface {
	Catalog() []*dto.FeatureGroup
	LatestVersion() string
	Unseen() []*dto.FeatureGroup
	MarkAllSeen() error
	IsFeatureNew(featureId string) bool
}

type featureNotices struct {
	logger  shared.ILogger
	repo    dal.IRepo
	catalog []*dto.FeatureGroup
	mu      sync.RWMutex
	state   dto.UserFeatureState
}

// NewFeatureNotices loads the built-in catalog and the user's stored state.
// Stored state that is not valid JSON is an error.
func NewFeatureNotices(logger shared.ILogger, repo dal.IRepo) (IFeatureNotices, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return newFeatureNotices(logger, repo, catalog)
}

// Catalog groups are ordered newest first.
func newFeatureNotices(logger shared.ILogger, repo dal.IRepo, catalog []*dto.FeatureGroup) (IFeatureNotices, error) {
	fn := featureNotices{
		logger:  logger,
		repo:    repo,
		catalog: catalog,
		state:   dto.UserFeatureState{SeenFeatures: []string{}},
	}
	stateJson, found, err := repo.GetSlot(slotFeatureState)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature state: %w", err)
	}
	if found {
		if err = json.Unmarshal([]byte(stateJson), &fn.state); err != nil {
			return nil, fmt.Errorf("stored feature state is malformed: %w", err)
		}
	}
	return &fn, nil
}

func loadCatalog() ([]*dto.FeatureGroup, error) {
	raw, err := catalogFS.ReadFile(featureCatalogFile)
	if err != nil {
		return nil, err
	}
	if raw, err = shared.StandardizeJSON(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", featureCatalogFile, err)
	}
	var res []*dto.FeatureGroup
	if err = json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", featureCatalogFile, err)
	}
	return res, nil
}

func (fn *featureNotices) Catalog() []*dto.FeatureGroup {
	return fn.catalog
}

func (fn *featureNotices) LatestVersion() string {
	if len(fn.catalog) == 0 {
		return fallbackVersion
	}
	return fn.catalog[0].Version
}

func (fn *featureNotices) isSeen(version string) bool {
	for _, seen := range fn.state.SeenFeatures {
		if seen == version {
			return true
		}
	}
	return false
}

// Unseen returns the most recent unseen groups, newest first.
func (fn *featureNotices) Unseen() []*dto.FeatureGroup {
	fn.mu.RLock()
	defer fn.mu.RUnlock()
	res := []*dto.FeatureGroup{}
	for _, group := range fn.catalog {
		if len(res) == maxUnseenGroups {
			break
		}
		if !fn.isSeen(group.Version) {
			res = append(res, group)
		}
	}
	return res
}

func (fn *featureNotices) MarkAllSeen() error {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	state := dto.UserFeatureState{
		LastSeenVersion: fn.LatestVersion(),
		SeenFeatures:    make([]string, 0, len(fn.catalog)),
	}
	for _, group := range fn.catalog {
		state.SeenFeatures = append(state.SeenFeatures, group.Version)
	}
	stateJson, err := json.Marshal(&state)
	if err != nil {
		return err
	}
	if err = fn.repo.SetSlot(slotFeatureState, string(stateJson)); err != nil {
		fn.logger.Errorf("Failed to save feature state: %v", err)
		return err
	}
	fn.state = state
	return nil
}

// IsFeatureNew is true when the announcement group containing the feature is unseen.
func (fn *featureNotices) IsFeatureNew(featureId string) bool {
	fn.mu.RLock()
	defer fn.mu.RUnlock()
	for _, group := range fn.catalog {
		for _, f := range group.Features {
			if f.Id == featureId {
				return !fn.isSeen(group.Version)
			}
		}
	}
	return false
}
