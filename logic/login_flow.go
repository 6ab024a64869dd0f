package logic

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

// ILoginFlow runs the OAuth authorization-code login against the user's instance.
type ILoginFlow interface {
	// Begin registers this app with the instance and returns the URL to send the user to.
	Begin(ctx context.Context, rawInstance string) (string, error)
	// Complete exchanges the code from the OAuth callback for a token and loads the profile.
	Complete(ctx context.Context, code, state string) (*dto.Account, error)
}

type loginFlow struct {
	logger   shared.ILogger
	api      IMastodonApi
	blocked  IBlockedInstances
	sessions ISessionStore
	timeout  ISessionTimeout
	notifier INotifier
	metrics  IMetrics
	mu       sync.Mutex
	state    string
}

func NewLoginFlow(
	logger shared.ILogger,
	api IMastodonApi,
	blocked IBlockedInstances,
	sessions ISessionStore,
	timeout ISessionTimeout,
	notifier INotifier,
	metrics IMetrics,
) ILoginFlow {
	return &loginFlow{
		logger:   logger,
		api:      api,
		blocked:  blocked,
		sessions: sessions,
		timeout:  timeout,
		notifier: notifier,
		metrics:  metrics,
	}
}

func (lf *loginFlow) Begin(ctx context.Context, rawInstance string) (string, error) {

	instance, err := lf.api.NormalizeInstanceUrl(rawInstance)
	if err != nil {
		return "", err
	}
	blocked, err := lf.blocked.IsBlocked(instance)
	if err != nil {
		lf.logger.Errorf("Failed to check block list for %s: %v", instance, err)
	}
	if blocked {
		lf.logger.Infof("Refused login with blocked instance %s", instance)
		return "", newApiError(ErrValidation, msgBlockedInstance)
	}
	if lf.sessions.IsAuthenticated() {
		if err = lf.sessions.Logout(); err != nil {
			return "", err
		}
	}
	if err = lf.sessions.SetInstance(instance); err != nil {
		return "", err
	}
	reg, err := lf.api.RegisterApplication(ctx, instance)
	if err != nil {
		return "", err
	}
	if err = lf.sessions.SetClientCredentials(reg.ClientId, reg.ClientSecret); err != nil {
		return "", err
	}

	state := uuid.NewString()
	authUrl, err := lf.api.AuthorizeUrl(reg.ClientId, state)
	if err != nil {
		return "", err
	}
	lf.mu.Lock()
	lf.state = state
	lf.mu.Unlock()
	lf.logger.Infof("Login started with %s", instance)
	return authUrl, nil
}

func (lf *loginFlow) Complete(ctx context.Context, code, state string) (*dto.Account, error) {

	lf.mu.Lock()
	expected := lf.state
	lf.state = ""
	lf.mu.Unlock()
	if expected == "" || state != expected {
		return nil, newApiError(ErrValidation, "Login request has expired or is invalid; please start again")
	}
	if code == "" {
		return nil, newApiError(ErrValidation, "Authorization code is missing")
	}

	sess := lf.sessions.Session()
	token, err := lf.api.ExchangeAuthorizationCode(ctx, code, sess.ClientId, sess.ClientSecret)
	if err != nil {
		return nil, err
	}
	if err = lf.sessions.SetToken(token.AccessToken); err != nil {
		return nil, err
	}
	lf.metrics.LoggedIn()
	lf.timeout.Start()

	// The session is usable without a profile, so a failure here is not fatal
	account, err := lf.api.VerifyCredentials(ctx)
	if err != nil {
		lf.logger.Warnf("Logged in but failed to load profile: %v", err)
		return nil, nil
	}
	if err = lf.sessions.SetAccount(account); err != nil {
		return nil, err
	}
	lf.logger.Infof("Logged in as %s at %s", account.Acct, sess.InstanceUrl)
	lf.notifier.LoggedIn(account)
	return account, nil
}
