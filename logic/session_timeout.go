package logic

import (
	"strconv"
	"sync"
	"toot_scheduler/shared"
	"toot_scheduler/texts"
)

type TimeoutState int

const (
	TimeoutIdle TimeoutState = iota
	TimeoutActive
	TimeoutWarning
	TimeoutExpired
)

func (s TimeoutState) String() string {
	switch s {
	case TimeoutActive:
		return "active"
	case TimeoutWarning:
		return "warning"
	case TimeoutExpired:
		return "expired"
	default:
		return "idle"
	}
}

type ActivityKind string

const (
	ActivityPointerMove ActivityKind = "pointer_move"
	ActivityKeyPress    ActivityKind = "key_press"
	ActivityClick       ActivityKind = "click"
)

func ParseActivityKind(str string) (ActivityKind, bool) {
	switch kind := ActivityKind(str); kind {
	case ActivityPointerMove, ActivityKeyPress, ActivityClick:
		return kind, true
	}
	return "", false
}

// ISessionTimeout logs the user out after a period without activity,
// with a warning some minutes before that.
type ISessionTimeout interface {
	Start()
	OnActivity(kind ActivityKind)
	Extend()
	Teardown()
	State() TimeoutState
}

type sessionTimeout struct {
	cfg      *shared.Config
	logger   shared.ILogger
	sessions ISessionStore
	prompter IPrompter
	txt      texts.ITexts
	metrics  IMetrics
	clock    shared.IClock
	mu       sync.Mutex
	state    TimeoutState
	gen      int
	warnTmr  shared.ITimer
	expTmr   shared.ITimer
	promptId string
}

func NewSessionTimeout(
	cfg *shared.Config,
	logger shared.ILogger,
	sessions ISessionStore,
	prompter IPrompter,
	txt texts.ITexts,
	metrics IMetrics,
	clock shared.IClock,
) ISessionTimeout {
	st := &sessionTimeout{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		prompter: prompter,
		txt:      txt,
		metrics:  metrics,
		clock:    clock,
	}
	sessions.AddLogoutListener(st.onLogout)
	return st
}

func (st *sessionTimeout) State() TimeoutState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Start arms the timers if there is an authenticated session.
func (st *sessionTimeout) Start() {
	if !st.sessions.IsAuthenticated() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.restart()
}

func (st *sessionTimeout) OnActivity(kind ActivityKind) {
	if !st.sessions.IsAuthenticated() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.restart()
}

func (st *sessionTimeout) Extend() {
	if !st.sessions.IsAuthenticated() {
		return
	}
	st.mu.Lock()
	if st.state == TimeoutIdle || st.state == TimeoutExpired {
		st.mu.Unlock()
		return
	}
	st.restart()
	st.mu.Unlock()

	st.prompter.Success(st.message("session-extended.txt", map[string]string{
		"minutes": strconv.Itoa(st.cfg.Session.DurationMinutes),
	}, "Session extended"))
}

func (st *sessionTimeout) Teardown() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.stop()
	st.state = TimeoutIdle
}

// stop cancels timers and the warning. Callers hold mu.
func (st *sessionTimeout) stop() {
	st.gen++
	if st.warnTmr != nil {
		st.warnTmr.Stop()
		st.warnTmr = nil
	}
	if st.expTmr != nil {
		st.expTmr.Stop()
		st.expTmr = nil
	}
	if st.promptId != "" {
		st.prompter.Dismiss(st.promptId)
		st.promptId = ""
	}
}

// restart re-arms both timers from now. Callers hold mu.
func (st *sessionTimeout) restart() {
	st.stop()
	st.state = TimeoutActive
	gen := st.gen
	duration := st.cfg.Session.Duration()
	st.warnTmr = st.clock.AfterFunc(duration-st.cfg.Session.WarningLead(), func() { st.onWarning(gen) })
	st.expTmr = st.clock.AfterFunc(duration, func() { st.onExpired(gen) })
}

func (st *sessionTimeout) onWarning(gen int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if gen != st.gen {
		return
	}
	st.state = TimeoutWarning
	st.warnTmr = nil
	msg := st.message("session-warning.txt", map[string]string{
		"minutes": strconv.Itoa(st.cfg.Session.WarningMinutes),
	}, "Your session is about to expire")
	st.promptId = st.prompter.Warn(msg, st.Extend)
}

func (st *sessionTimeout) onExpired(gen int) {
	st.mu.Lock()
	if gen != st.gen {
		st.mu.Unlock()
		return
	}
	st.expTmr = nil
	st.stop()
	st.state = TimeoutExpired
	st.mu.Unlock()

	st.logger.Info("Session expired after inactivity")
	st.metrics.SessionExpired()
	if err := st.sessions.Logout(); err != nil {
		st.logger.Errorf("Logout after inactivity failed: %v", err)
	}
	st.prompter.Info(st.message("session-expired.txt", nil, "Session expired"))
}

func (st *sessionTimeout) message(id string, vals map[string]string, fallback string) string {
	msg, err := st.txt.WithVals(id, vals)
	if err != nil {
		st.logger.Errorf("Cannot compose session message: %v", err)
		return fallback
	}
	return msg
}

func (st *sessionTimeout) onLogout() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.state == TimeoutExpired {
		return
	}
	st.stop()
	st.state = TimeoutIdle
}
