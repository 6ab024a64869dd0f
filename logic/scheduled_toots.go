package logic

import (
	"context"
	"sort"
	"sync"
	"time"
	"toot_scheduler/dal"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_scheduled_toots.go -package mocks toot_scheduler/logic IScheduledToots

// IScheduledToots caches the user's scheduled posts and implements edits on top of them.
// Overlapping calls are not deduplicated: the response that arrives last wins.
type IScheduledToots interface {
	FetchAll(ctx context.Context) error
	Toots() []*dto.ScheduledStatus
	SortedByScheduledTime() []*dto.ScheduledStatus
	CountScheduledToday() int
	Count() int
	IsLoading() bool
	Error() string
	Schedule(ctx context.Context, params *dto.TootParams) (*dto.StatusResult, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, params *dto.TootParams) (*dto.StatusResult, error)
	SetEditingTarget(post *dto.ScheduledStatus)
	EditingTarget() *dto.ScheduledStatus
	History(limit int) ([]*dal.TootLogEntry, error)
	Reset()
}

type scheduledToots struct {
	logger   shared.ILogger
	api      IMastodonApi
	sessions ISessionStore
	repo     dal.IRepo
	notifier INotifier
	metrics  IMetrics
	clock    shared.IClock
	mu       sync.RWMutex
	toots    []*dto.ScheduledStatus
	loading  int
	errMsg   string
	editing  *dto.ScheduledStatus
}

func NewScheduledToots(
	logger shared.ILogger,
	api IMastodonApi,
	sessions ISessionStore,
	repo dal.IRepo,
	notifier INotifier,
	metrics IMetrics,
	clock shared.IClock,
) IScheduledToots {
	st := &scheduledToots{
		logger:   logger,
		api:      api,
		sessions: sessions,
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		toots:    []*dto.ScheduledStatus{},
	}
	sessions.AddLogoutListener(st.Reset)
	return st
}

// scheduledTime parses a post's publication time. Missing or malformed values count as the epoch.
func scheduledTime(post *dto.ScheduledStatus) (time.Time, bool) {
	str := post.ScheduledAt
	if str == "" && post.Params.ScheduledAt != nil {
		str = *post.Params.ScheduledAt
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Unix(0, 0).UTC(), false
	}
	return t, true
}

func (st *scheduledToots) FetchAll(ctx context.Context) error {

	st.mu.Lock()
	st.loading++
	st.errMsg = ""
	st.mu.Unlock()

	toots, err := st.api.ListScheduledToots(ctx)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading--
	if err != nil {
		st.errMsg = UserMessage(err, msgFetchFailed)
		st.logger.Warnf("Error fetching scheduled toots: %v", err)
		return err
	}
	st.toots = toots
	st.metrics.ScheduledTootCount(len(toots))
	return nil
}

func (st *scheduledToots) Toots() []*dto.ScheduledStatus {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return append([]*dto.ScheduledStatus{}, st.toots...)
}

func (st *scheduledToots) SortedByScheduledTime() []*dto.ScheduledStatus {
	res := st.Toots()
	sort.SliceStable(res, func(i, j int) bool {
		ti, _ := scheduledTime(res[i])
		tj, _ := scheduledTime(res[j])
		return ti.Before(tj)
	})
	return res
}

// CountScheduledToday counts posts due on the current calendar date in the clock's time zone.
func (st *scheduledToots) CountScheduledToday() int {
	now := st.clock.Now()
	y, m, d := now.Date()
	count := 0
	for _, post := range st.Toots() {
		t, ok := scheduledTime(post)
		if !ok {
			continue
		}
		py, pm, pd := t.In(now.Location()).Date()
		if py == y && pm == m && pd == d {
			count++
		}
	}
	return count
}

func (st *scheduledToots) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.toots)
}

func (st *scheduledToots) IsLoading() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.loading > 0
}

func (st *scheduledToots) Error() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.errMsg
}

func (st *scheduledToots) setError(msg string) {
	st.mu.Lock()
	st.errMsg = msg
	st.mu.Unlock()
}

func (st *scheduledToots) find(id string) *dto.ScheduledStatus {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, post := range st.toots {
		if post.Id == id {
			return post
		}
	}
	return nil
}

func (st *scheduledToots) removeLocal(id string, clearEditing bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	kept := make([]*dto.ScheduledStatus, 0, len(st.toots))
	for _, post := range st.toots {
		if post.Id != id {
			kept = append(kept, post)
		}
	}
	st.toots = kept
	if clearEditing && st.editing != nil && st.editing.Id == id {
		st.editing = nil
	}
}

func (st *scheduledToots) logAction(action dal.TootAction, id, scheduledAt, text string) {
	entry := dal.TootLogEntry{
		LoggedAt:    st.clock.Now().UTC(),
		Instance:    st.sessions.Session().InstanceUrl,
		Action:      action,
		StatusId:    id,
		ScheduledAt: scheduledAt,
		Text:        text,
	}
	if err := st.repo.AddTootLogEntry(&entry); err != nil {
		st.logger.Errorf("Failed to record %s toot %s: %v", action, id, err)
	}
}

func (st *scheduledToots) Schedule(ctx context.Context, params *dto.TootParams) (*dto.StatusResult, error) {

	res, err := st.api.ScheduleToot(ctx, params)
	if err != nil {
		st.setError(UserMessage(err, msgScheduleFailed))
		return nil, err
	}
	st.logAction(dal.TootScheduled, res.Id, res.ScheduledAt, res.Text())
	st.metrics.TootScheduled()
	st.notifier.TootScheduled(st.sessions.Session().Account, res)

	// Failure here is recorded in the store's error message; the post itself is scheduled
	_ = st.FetchAll(ctx)
	return res, nil
}

func (st *scheduledToots) Delete(ctx context.Context, id string) error {

	post := st.find(id)
	if err := st.api.DeleteScheduledToot(ctx, id); err != nil {
		st.setError(UserMessage(err, msgDeleteFailed))
		return err
	}
	if post == nil {
		post = &dto.ScheduledStatus{Id: id}
	}
	st.removeLocal(id, true)
	st.logAction(dal.TootDeleted, id, post.ScheduledAt, post.Params.Text)
	st.metrics.TootDeleted()
	st.notifier.TootDeleted(st.sessions.Session().Account, post)
	return nil
}

// Update replaces a scheduled post by deleting it and scheduling params anew.
// Params are validated before anything is deleted. The two steps are still not atomic:
// if the second one fails the old post is gone, its text survives only in the history,
// and the editing target is left in place.
func (st *scheduledToots) Update(ctx context.Context, id string, params *dto.TootParams) (*dto.StatusResult, error) {

	if err := ValidateTootParams(params); err != nil {
		st.setError(UserMessage(err, msgScheduleFailed))
		return nil, err
	}
	old := st.find(id)
	if err := st.api.DeleteScheduledToot(ctx, id); err != nil {
		st.setError(UserMessage(err, msgDeleteFailed))
		return nil, err
	}
	st.removeLocal(id, false)
	if old != nil {
		st.logAction(dal.TootDeleted, id, old.ScheduledAt, old.Params.Text)
	} else {
		st.logAction(dal.TootDeleted, id, "", "")
	}

	res, err := st.api.ScheduleToot(ctx, params)
	if err != nil {
		st.logger.Errorf("Scheduled toot %s was deleted but its replacement failed: %v", id, err)
		st.setError(UserMessage(err, msgScheduleFailed))
		return nil, err
	}
	st.logAction(dal.TootReplaced, res.Id, res.ScheduledAt, res.Text())
	st.metrics.TootReplaced()
	st.notifier.TootReplaced(st.sessions.Session().Account, res)

	_ = st.FetchAll(ctx)
	st.SetEditingTarget(nil)
	return res, nil
}

func (st *scheduledToots) SetEditingTarget(post *dto.ScheduledStatus) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.editing = post
}

func (st *scheduledToots) EditingTarget() *dto.ScheduledStatus {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.editing
}

func (st *scheduledToots) History(limit int) ([]*dal.TootLogEntry, error) {
	return st.repo.GetTootLog(st.sessions.Session().InstanceUrl, limit)
}

func (st *scheduledToots) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.toots = []*dto.ScheduledStatus{}
	st.errMsg = ""
	st.editing = nil
}
