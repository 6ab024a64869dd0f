package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
	"toot_scheduler/dal"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
	"toot_scheduler/test"
	"toot_scheduler/test/mocks"
)

type tootsHarness struct {
	cfg          *shared.Config
	repo         dal.IRepo
	sessions     logic.ISessionStore
	clock        *test.FakeClock
	mockApi      *mocks.MockIMastodonApi
	mockNotifier *mocks.MockINotifier
	store        logic.IScheduledToots
}

func setupTootsTest(t *testing.T, now time.Time) *tootsHarness {
	ctrl := gomock.NewController(t)
	h := &tootsHarness{
		cfg:          test.NewConfig(t),
		clock:        test.NewFakeClock(now),
		mockApi:      mocks.NewMockIMastodonApi(ctrl),
		mockNotifier: mocks.NewMockINotifier(ctrl),
	}
	logger := test.NewLogger()
	h.repo = test.NewRepo(t, h.cfg)
	h.sessions = logic.NewSessionStore(logger, h.repo, logic.NewNavigator())
	assert.NoError(t, h.sessions.SetInstance(test.TestInstance))
	assert.NoError(t, h.sessions.SetToken("tok"))
	assert.NoError(t, h.sessions.SetAccount(&dto.Account{Id: "1", Acct: "alice"}))
	h.store = logic.NewScheduledToots(logger, h.mockApi, h.sessions, h.repo, h.mockNotifier,
		logic.NewMetrics(h.cfg), h.clock)
	return h
}

func post(id, scheduledAt, text string) *dto.ScheduledStatus {
	return &dto.ScheduledStatus{
		Id:          id,
		ScheduledAt: scheduledAt,
		Params:      dto.ScheduledParams{Text: text},
	}
}

func ids(posts []*dto.ScheduledStatus) []string {
	res := []string{}
	for _, p := range posts {
		res = append(res, p.Id)
	}
	return res
}

func TestFetchAllReplacesList(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()

	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("1", "", "a"), post("2", "", "b")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	assert.Equal(t, 2, h.store.Count())
	assert.False(t, h.store.IsLoading())

	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("3", "", "c")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	assert.Equal(t, []string{"3"}, ids(h.store.Toots()))
}

func TestFetchAllFailureKeepsListAndRecordsMessage(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()

	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("1", "", "a")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))

	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return(nil, &logic.ApiError{Kind: logic.ErrRequest, Message: "The access token is invalid", Status: 401})
	assert.Error(t, h.store.FetchAll(ctx))
	assert.Equal(t, "The access token is invalid", h.store.Error())
	assert.Equal(t, 1, h.store.Count())
	assert.False(t, h.store.IsLoading())

	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return(nil, errors.New("boom"))
	assert.Error(t, h.store.FetchAll(ctx))
	assert.Equal(t, "Failed to fetch scheduled toots", h.store.Error())

	// Message is cleared when the next fetch starts
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return([]*dto.ScheduledStatus{}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	assert.Equal(t, "", h.store.Error())
}

func TestLoadingFlagDuringFetch(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]*dto.ScheduledStatus, error) {
			assert.True(t, h.store.IsLoading())
			return []*dto.ScheduledStatus{}, nil
		})
	assert.NoError(t, h.store.FetchAll(context.Background()))
	assert.False(t, h.store.IsLoading())
}

func TestSortedByScheduledTime(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return([]*dto.ScheduledStatus{
		post("late", "2024-03-21T08:00:00.000Z", ""),
		post("bad", "not a date", ""),
		post("early", "2024-03-19T08:00:00.000Z", ""),
		post("missing", "", ""),
		post("mid", "2024-03-20T08:00:00+01:00", ""),
	}, nil)
	assert.NoError(t, h.store.FetchAll(context.Background()))

	sorted := h.store.SortedByScheduledTime()
	assert.Equal(t, []string{"bad", "missing", "early", "mid", "late"}, ids(sorted))
	assert.Len(t, sorted, h.store.Count())
	// Cache order is untouched
	assert.Equal(t, "late", h.store.Toots()[0].Id)
}

func TestCountScheduledTodayUsesLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 3, 18, 12, 0, 0, 0, loc)
	h := setupTootsTest(t, now)
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return([]*dto.ScheduledStatus{
		// 2024-03-18 08:00 local
		post("a", "2024-03-17T23:00:00Z", ""),
		// 2024-03-18 23:30 local
		post("b", "2024-03-18T14:30:00Z", ""),
		// 2024-03-19 00:30 local
		post("c", "2024-03-18T15:30:00Z", ""),
		post("d", "garbage", ""),
	}, nil)
	assert.NoError(t, h.store.FetchAll(context.Background()))
	assert.Equal(t, 2, h.store.CountScheduledToday())
}

func TestScheduleRefreshesAndNotifies(t *testing.T) {
	h := setupTootsTest(t, time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC))
	params := &dto.TootParams{Status: "hello", ScheduledAt: "2024-03-20T10:00:00Z"}
	res := &dto.StatusResult{Id: "7", ScheduledAt: "2024-03-20T10:00:00.000Z",
		Params: &dto.ScheduledParams{Text: "hello"}}

	gomock.InOrder(
		h.mockApi.EXPECT().ScheduleToot(gomock.Any(), params).Return(res, nil),
		h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
			Return([]*dto.ScheduledStatus{post("7", "2024-03-20T10:00:00.000Z", "hello")}, nil),
	)
	h.mockNotifier.EXPECT().TootScheduled(&dto.Account{Id: "1", Acct: "alice"}, res)

	got, err := h.store.Schedule(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, "7", got.Id)
	assert.Equal(t, 1, h.store.Count())

	history, err := h.store.History(10)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, dal.TootScheduled, history[0].Action)
	assert.Equal(t, "hello", history[0].Text)
}

func TestScheduleFailureIsReturned(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	failure := &logic.ApiError{Kind: logic.ErrValidation, Message: "Status content is required"}
	h.mockApi.EXPECT().ScheduleToot(gomock.Any(), gomock.Any()).Return(nil, failure)
	_, err := h.store.Schedule(context.Background(), &dto.TootParams{})
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, "Status content is required", h.store.Error())

	h.mockApi.EXPECT().ScheduleToot(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	_, err = h.store.Schedule(context.Background(), &dto.TootParams{Status: "hi"})
	assert.Error(t, err)
	assert.Equal(t, "Failed to schedule toot", h.store.Error())
}

func TestDeleteRemovesFromCache(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return([]*dto.ScheduledStatus{
		post("1", "2024-03-20T10:00:00Z", "one"), post("2", "2024-03-21T10:00:00Z", "two")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	h.store.SetEditingTarget(h.store.Toots()[0])

	h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "1").Return(nil)
	h.mockNotifier.EXPECT().TootDeleted(gomock.Any(), gomock.Any()).
		Do(func(account *dto.Account, p *dto.ScheduledStatus) {
			assert.Equal(t, "one", p.Params.Text)
		})
	assert.NoError(t, h.store.Delete(ctx, "1"))
	assert.Equal(t, []string{"2"}, ids(h.store.Toots()))
	assert.Nil(t, h.store.EditingTarget())

	h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "2").
		Return(&logic.ApiError{Kind: logic.ErrDeletion, Message: "Record not found", Status: 404})
	err := h.store.Delete(ctx, "2")
	assert.True(t, logic.IsKind(err, logic.ErrDeletion))
	assert.Equal(t, 1, h.store.Count())
	assert.Equal(t, "Record not found", h.store.Error())

	h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "2").Return(errors.New("network down"))
	assert.Error(t, h.store.Delete(ctx, "2"))
	assert.Equal(t, "Failed to delete scheduled toot", h.store.Error())
}

func TestUpdateDeletesThenRecreates(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("42", "2024-03-20T10:00:00Z", "old text")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	h.store.SetEditingTarget(h.store.Toots()[0])

	params := &dto.TootParams{Status: "new text", ScheduledAt: "2024-03-20T11:00:00Z"}
	res := &dto.StatusResult{Id: "43", ScheduledAt: "2024-03-20T11:00:00Z", Params: &dto.ScheduledParams{Text: "new text"}}
	gomock.InOrder(
		h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "42").Return(nil),
		h.mockApi.EXPECT().ScheduleToot(gomock.Any(), params).Return(res, nil),
		h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
			Return([]*dto.ScheduledStatus{post("43", "2024-03-20T11:00:00Z", "new text")}, nil),
	)
	h.mockNotifier.EXPECT().TootReplaced(gomock.Any(), res)

	got, err := h.store.Update(ctx, "42", params)
	assert.NoError(t, err)
	assert.Equal(t, "43", got.Id)
	assert.Equal(t, []string{"43"}, ids(h.store.Toots()))
	assert.Nil(t, h.store.EditingTarget())
}

func TestUpdateWithFailingRecreateLosesPost(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).Return([]*dto.ScheduledStatus{
		post("41", "2024-03-19T10:00:00Z", "keep"), post("42", "2024-03-20T10:00:00Z", "old text")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))
	editing := h.store.Toots()[1]
	h.store.SetEditingTarget(editing)

	h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "42").Return(nil)
	h.mockApi.EXPECT().ScheduleToot(gomock.Any(), gomock.Any()).
		Return(nil, &logic.ApiError{Kind: logic.ErrRequest, Message: "Failed to schedule toot", Status: 500})

	_, err := h.store.Update(ctx, "42", &dto.TootParams{Status: "new text"})
	assert.True(t, logic.IsKind(err, logic.ErrRequest))
	assert.Equal(t, []string{"41"}, ids(h.store.Toots()))
	assert.Equal(t, "Failed to schedule toot", h.store.Error())
	assert.Equal(t, editing, h.store.EditingTarget())

	// The deleted text can still be recovered from the history
	history, err := h.store.History(10)
	assert.NoError(t, err)
	assert.Equal(t, dal.TootDeleted, history[0].Action)
	assert.Equal(t, "old text", history[0].Text)
}

func TestUpdateRejectsInvalidParamsBeforeDeleting(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("42", "2024-03-20T10:00:00Z", "old text")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))

	// No DeleteScheduledToot or ScheduleToot expectations: any gateway call fails the test
	_, err := h.store.Update(ctx, "42", &dto.TootParams{Status: "  "})
	assert.True(t, logic.IsKind(err, logic.ErrValidation))
	assert.Equal(t, "Status content is required", h.store.Error())

	_, err = h.store.Update(ctx, "42", &dto.TootParams{Status: "new text", Visibility: "friends"})
	assert.True(t, logic.IsKind(err, logic.ErrValidation))

	_, err = h.store.Update(ctx, "42", nil)
	assert.True(t, logic.IsKind(err, logic.ErrValidation))

	assert.Equal(t, []string{"42"}, ids(h.store.Toots()))
	history, err := h.store.History(10)
	assert.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateWithFailingDeleteChangesNothing(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	ctx := context.Background()
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("42", "2024-03-20T10:00:00Z", "old text")}, nil)
	assert.NoError(t, h.store.FetchAll(ctx))

	h.mockApi.EXPECT().DeleteScheduledToot(gomock.Any(), "42").Return(errors.New("network down"))
	_, err := h.store.Update(ctx, "42", &dto.TootParams{Status: "new text"})
	assert.Error(t, err)
	assert.Equal(t, "Failed to delete scheduled toot", h.store.Error())
	assert.Equal(t, []string{"42"}, ids(h.store.Toots()))
}

func TestLogoutResetsStore(t *testing.T) {
	h := setupTootsTest(t, time.Now())
	h.mockApi.EXPECT().ListScheduledToots(gomock.Any()).
		Return([]*dto.ScheduledStatus{post("1", "", "a")}, nil)
	assert.NoError(t, h.store.FetchAll(context.Background()))
	h.store.SetEditingTarget(h.store.Toots()[0])

	assert.NoError(t, h.sessions.Logout())
	assert.Equal(t, 0, h.store.Count())
	assert.Nil(t, h.store.EditingTarget())
}
