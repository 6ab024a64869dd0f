package logic

import (
	"encoding/json"
	"fmt"
	"sync"
	"toot_scheduler/dal"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

const (
	slotToken        = "mastodon_token"
	slotInstance     = "mastodon_instance"
	slotClientId     = "mastodon_client_id"
	slotClientSecret = "mastodon_client_secret"
	slotAccount      = "mastodon_account"
)

var sessionSlots = []string{slotToken, slotInstance, slotClientId, slotClientSecret, slotAccount}

// Session is a snapshot of the single active session. Empty strings mean "not set".
type Session struct {
	AccessToken  string
	InstanceUrl  string
	ClientId     string
	ClientSecret string
	Account      *dto.Account
}

type ISessionStore interface {
	Session() Session
	IsAuthenticated() bool
	SetToken(token string) error
	SetInstance(instanceUrl string) error
	SetClientCredentials(clientId, clientSecret string) error
	SetAccount(account *dto.Account) error
	Logout() error
	Restore() error
	AddLogoutListener(f func())
}

type sessionStore struct {
	logger    shared.ILogger
	repo      dal.IRepo
	nav       INavigator
	mu        sync.RWMutex
	session   Session
	listeners []func()
}

func NewSessionStore(logger shared.ILogger, repo dal.IRepo, nav INavigator) ISessionStore {
	return &sessionStore{
		logger: logger,
		repo:   repo,
		nav:    nav,
	}
}

func (ss *sessionStore) Session() Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	res := ss.session
	if res.Account != nil {
		acct := *res.Account
		res.Account = &acct
	}
	return res
}

func (ss *sessionStore) IsAuthenticated() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.session.AccessToken != ""
}

// persist writes one slot; an empty value removes it.
func (ss *sessionStore) persist(slot, val string) error {
	var err error
	if val == "" {
		err = ss.repo.DeleteSlot(slot)
	} else {
		err = ss.repo.SetSlot(slot, val)
	}
	if err != nil {
		ss.logger.Errorf("Failed to persist session slot %s: %v", slot, err)
		return fmt.Errorf("failed to persist %s: %w", slot, err)
	}
	return nil
}

func (ss *sessionStore) SetToken(token string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if token != "" && ss.session.InstanceUrl == "" {
		return newApiError(ErrConfiguration, msgNoInstance)
	}
	ss.session.AccessToken = token
	return ss.persist(slotToken, token)
}

func (ss *sessionStore) SetInstance(instanceUrl string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if instanceUrl == "" && ss.session.AccessToken != "" {
		return newApiError(ErrConfiguration, "Cannot clear the instance of an authenticated session")
	}
	ss.session.InstanceUrl = instanceUrl
	return ss.persist(slotInstance, instanceUrl)
}

func (ss *sessionStore) SetClientCredentials(clientId, clientSecret string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.session.ClientId = clientId
	ss.session.ClientSecret = clientSecret
	if err := ss.persist(slotClientId, clientId); err != nil {
		return err
	}
	return ss.persist(slotClientSecret, clientSecret)
}

func (ss *sessionStore) SetAccount(account *dto.Account) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if account == nil {
		ss.session.Account = nil
		return ss.persist(slotAccount, "")
	}
	acctJson, err := json.Marshal(account)
	if err != nil {
		return err
	}
	acct := *account
	ss.session.Account = &acct
	return ss.persist(slotAccount, string(acctJson))
}

func (ss *sessionStore) AddLogoutListener(f func()) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.listeners = append(ss.listeners, f)
}

// Logout forgets the session in memory and in storage, then navigates to login.
// Every slot is deleted even if an earlier deletion fails; the first error is returned.
func (ss *sessionStore) Logout() error {
	ss.mu.Lock()
	ss.session = Session{}
	var firstErr error
	for _, slot := range sessionSlots {
		if err := ss.persist(slot, ""); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	listeners := append([]func(){}, ss.listeners...)
	ss.mu.Unlock()

	ss.logger.Info("Session cleared")
	for _, f := range listeners {
		f()
	}
	ss.nav.ToLogin()
	return firstErr
}

// Restore loads the persisted session. Token freshness is not checked.
func (ss *sessionStore) Restore() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	var restored Session
	targets := []struct {
		slot string
		dest *string
	}{
		{slotToken, &restored.AccessToken},
		{slotInstance, &restored.InstanceUrl},
		{slotClientId, &restored.ClientId},
		{slotClientSecret, &restored.ClientSecret},
	}
	for _, t := range targets {
		val, _, err := ss.repo.GetSlot(t.slot)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", t.slot, err)
		}
		*t.dest = val
	}

	acctJson, found, err := ss.repo.GetSlot(slotAccount)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", slotAccount, err)
	}
	if found {
		var acct dto.Account
		if err := json.Unmarshal([]byte(acctJson), &acct); err != nil {
			ss.logger.Warnf("Ignoring unreadable stored account: %v", err)
		} else {
			restored.Account = &acct
		}
	}

	if restored.AccessToken != "" && restored.InstanceUrl == "" {
		ss.logger.Warn("Stored token has no instance; discarding it")
		restored.AccessToken = ""
		if err := ss.persist(slotToken, ""); err != nil {
			return err
		}
	}

	ss.session = restored
	if restored.AccessToken != "" {
		ss.logger.Infof("Restored session for %s", restored.InstanceUrl)
	}
	return nil
}
