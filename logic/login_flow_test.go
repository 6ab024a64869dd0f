package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/test"
	"toot_scheduler/test/mocks"
	"toot_scheduler/texts"
)

type loginHarness struct {
	mockApi      *mocks.MockIMastodonApi
	mockNotifier *mocks.MockINotifier
	sessions     logic.ISessionStore
	timeout      logic.ISessionTimeout
	flow         logic.ILoginFlow
}

func setupLoginTest(t *testing.T) *loginHarness {
	ctrl := gomock.NewController(t)
	cfg := test.NewConfig(t)
	cfg.BlockedInstancesFile = filepath.Join(t.TempDir(), "blocked.txt")
	assert.NoError(t, os.WriteFile(cfg.BlockedInstancesFile, []byte("# spam\nspam.example\n"), 0644))
	logger := test.NewLogger()
	clock := test.NewFakeClock(time.Now())
	metrics := logic.NewMetrics(cfg)
	h := &loginHarness{
		mockApi:      mocks.NewMockIMastodonApi(ctrl),
		mockNotifier: mocks.NewMockINotifier(ctrl),
	}
	h.sessions = logic.NewSessionStore(logger, test.NewRepo(t, cfg), logic.NewNavigator())
	h.timeout = logic.NewSessionTimeout(cfg, logger, h.sessions, logic.NewPrompter(clock),
		texts.NewTexts(), metrics, clock)
	h.flow = logic.NewLoginFlow(logger, h.mockApi, logic.NewBlockedInstances(cfg), h.sessions, h.timeout,
		h.mockNotifier, metrics)
	return h
}

func stateOf(t *testing.T, authUrl string) string {
	u, err := url.Parse(authUrl)
	assert.NoError(t, err)
	return u.Query().Get("state")
}

func (h *loginHarness) expectBegin(raw string) {
	h.mockApi.EXPECT().NormalizeInstanceUrl(raw).Return(test.TestInstance, nil)
	h.mockApi.EXPECT().RegisterApplication(gomock.Any(), test.TestInstance).
		Return(&dto.AppRegistration{ClientId: "cid", ClientSecret: "csecret"}, nil)
	h.mockApi.EXPECT().AuthorizeUrl("cid", gomock.Any()).
		DoAndReturn(func(clientId, state string) (string, error) {
			return test.TestInstance + "/oauth/authorize?state=" + state, nil
		})
}

func TestLoginFlowHappyPath(t *testing.T) {
	h := setupLoginTest(t)
	ctx := context.Background()
	h.expectBegin("mastodon.example")

	authUrl, err := h.flow.Begin(ctx, "mastodon.example")
	assert.NoError(t, err)
	sess := h.sessions.Session()
	assert.Equal(t, test.TestInstance, sess.InstanceUrl)
	assert.Equal(t, "cid", sess.ClientId)
	assert.False(t, h.sessions.IsAuthenticated())

	account := &dto.Account{Id: "1", Acct: "alice", Url: test.TestInstance + "/@alice"}
	h.mockApi.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "the-code", "cid", "csecret").
		Return(&dto.TokenPayload{AccessToken: "tok"}, nil)
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any()).Return(account, nil)
	h.mockNotifier.EXPECT().LoggedIn(account)

	got, err := h.flow.Complete(ctx, "the-code", stateOf(t, authUrl))
	assert.NoError(t, err)
	assert.Equal(t, account, got)
	assert.True(t, h.sessions.IsAuthenticated())
	assert.Equal(t, "alice", h.sessions.Session().Account.Acct)
	assert.Equal(t, logic.TimeoutActive, h.timeout.State())
}

func TestLoginFlowRejectsWrongState(t *testing.T) {
	h := setupLoginTest(t)
	ctx := context.Background()
	h.expectBegin("mastodon.example")

	_, err := h.flow.Begin(ctx, "mastodon.example")
	assert.NoError(t, err)
	_, err = h.flow.Complete(ctx, "the-code", "forged")
	assert.True(t, logic.IsKind(err, logic.ErrValidation))
	assert.False(t, h.sessions.IsAuthenticated())

	// Without a pending login every callback is rejected
	_, err = h.flow.Complete(ctx, "the-code", "")
	assert.True(t, logic.IsKind(err, logic.ErrValidation))
}

func TestLoginFlowInvalidInstance(t *testing.T) {
	h := setupLoginTest(t)
	h.mockApi.EXPECT().NormalizeInstanceUrl("ftp://x").
		Return("", &logic.ApiError{Kind: logic.ErrInvalidUrl, Message: "Invalid URL format"})

	_, err := h.flow.Begin(context.Background(), "ftp://x")
	assert.True(t, logic.IsKind(err, logic.ErrInvalidUrl))
	assert.Equal(t, "", h.sessions.Session().InstanceUrl)
}

func TestLoginFlowBlockedInstance(t *testing.T) {
	h := setupLoginTest(t)
	h.mockApi.EXPECT().NormalizeInstanceUrl("social.spam.example").Return("https://social.spam.example", nil)

	_, err := h.flow.Begin(context.Background(), "social.spam.example")
	assert.True(t, logic.IsKind(err, logic.ErrValidation))
	assert.Equal(t, "", h.sessions.Session().InstanceUrl)
}

func TestLoginFlowReplacesExistingSession(t *testing.T) {
	h := setupLoginTest(t)
	assert.NoError(t, h.sessions.SetInstance("https://old.example"))
	assert.NoError(t, h.sessions.SetToken("old-token"))
	h.expectBegin("mastodon.example")

	_, err := h.flow.Begin(context.Background(), "mastodon.example")
	assert.NoError(t, err)
	sess := h.sessions.Session()
	assert.Equal(t, "", sess.AccessToken)
	assert.Equal(t, test.TestInstance, sess.InstanceUrl)
}

func TestLoginFlowProfileFailureIsNotFatal(t *testing.T) {
	h := setupLoginTest(t)
	ctx := context.Background()
	h.expectBegin("mastodon.example")
	authUrl, err := h.flow.Begin(ctx, "mastodon.example")
	assert.NoError(t, err)

	h.mockApi.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "c", "cid", "csecret").
		Return(&dto.TokenPayload{AccessToken: "tok"}, nil)
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any()).Return(nil, errors.New("timeout"))

	account, err := h.flow.Complete(ctx, "c", stateOf(t, authUrl))
	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.True(t, h.sessions.IsAuthenticated())
}

func TestLoginFlowTokenFailure(t *testing.T) {
	h := setupLoginTest(t)
	ctx := context.Background()
	h.expectBegin("mastodon.example")
	authUrl, err := h.flow.Begin(ctx, "mastodon.example")
	assert.NoError(t, err)

	h.mockApi.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "c", "cid", "csecret").
		Return(nil, &logic.ApiError{Kind: logic.ErrTokenExchange, Message: "Failed to get access token"})

	_, err = h.flow.Complete(ctx, "c", stateOf(t, authUrl))
	assert.True(t, logic.IsKind(err, logic.ErrTokenExchange))
	assert.False(t, h.sessions.IsAuthenticated())
	assert.Equal(t, logic.TimeoutIdle, h.timeout.State())
}
