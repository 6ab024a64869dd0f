package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"net/url"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
)

// Login, logout, the OAuth callback and notices. None of these require a session.
type sessionHandlerGroup struct {
	logger   shared.ILogger
	metrics  logic.IMetrics
	nav      logic.INavigator
	sessions logic.ISessionStore
	timeout  logic.ISessionTimeout
	login    logic.ILoginFlow
	prompter logic.IPrompter
}

func NewSessionHandlerGroup(
	logger shared.ILogger,
	metrics logic.IMetrics,
	nav logic.INavigator,
	sessions logic.ISessionStore,
	timeout logic.ISessionTimeout,
	login logic.ILoginFlow,
	prompter logic.IPrompter,
) IHandlerGroup {
	res := sessionHandlerGroup{
		logger:   logger,
		metrics:  metrics,
		nav:      nav,
		sessions: sessions,
		timeout:  timeout,
		login:    login,
		prompter: prompter,
	}
	return &res
}

func (hg *sessionHandlerGroup) Prefix() string {
	return ""
}

func (hg *sessionHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/api/login", func(w http.ResponseWriter, r *http.Request) { hg.postLogin(w, r) }},
		{"GET", "/api/session", func(w http.ResponseWriter, r *http.Request) { hg.getSession(w, r) }},
		{"POST", "/api/logout", func(w http.ResponseWriter, r *http.Request) { hg.postLogout(w, r) }},
		{"GET", "/api/notices", func(w http.ResponseWriter, r *http.Request) { hg.getNotices(w, r) }},
		{"POST", "/api/notices/{id}/act", func(w http.ResponseWriter, r *http.Request) { hg.postNoticeAct(w, r) }},
		{"DELETE", "/api/notices/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteNotice(w, r) }},
		{"GET", shared.OAuthCallbackPath, func(w http.ResponseWriter, r *http.Request) { hg.getCallback(w, r) }},
	}
}

func (hg *sessionHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *sessionHandlerGroup) postLogin(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("login")
	defer obs.Finish()

	var req dto.LoginRequest
	if !readJson(hg.logger, w, r, &req) {
		return
	}
	authUrl, err := hg.login.Begin(r.Context(), req.Instance)
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to start login")
		return
	}
	writeJsonResponse(hg.logger, w, &dto.LoginResponse{AuthorizeUrl: authUrl})
}

func (hg *sessionHandlerGroup) sessionResponse() *dto.SessionResponse {
	sess := hg.sessions.Session()
	return &dto.SessionResponse{
		Authenticated:   hg.sessions.IsAuthenticated(),
		Instance:        sess.InstanceUrl,
		Account:         sess.Account,
		TimeoutState:    hg.timeout.State().String(),
		RedirectToLogin: hg.nav.TakeRedirect(),
	}
}

func (hg *sessionHandlerGroup) getSession(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("session")
	defer obs.Finish()
	writeJsonResponse(hg.logger, w, hg.sessionResponse())
}

func (hg *sessionHandlerGroup) postLogout(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("logout")
	defer obs.Finish()

	if err := hg.sessions.Logout(); err != nil {
		hg.logger.Errorf("Logout failed to clear stored session: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, hg.sessionResponse())
}

func loginPageWithError(msg string) string {
	return "/web/login?error=" + url.QueryEscape(msg)
}

func (hg *sessionHandlerGroup) getCallback(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling OAuth callback: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("oauth_callback")
	defer obs.Finish()

	query := r.URL.Query()
	if errStr := query.Get("error"); errStr != "" {
		msg := query.Get("error_description")
		if msg == "" {
			msg = errStr
		}
		hg.logger.Infof("Authorization was not granted: %s", msg)
		http.Redirect(w, r, loginPageWithError(msg), http.StatusFound)
		return
	}
	if _, err := hg.login.Complete(r.Context(), query.Get("code"), query.Get("state")); err != nil {
		hg.logger.Warnf("Failed to complete login: %v", err)
		http.Redirect(w, r, loginPageWithError(logic.UserMessage(err, "Login failed")), http.StatusFound)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (hg *sessionHandlerGroup) getNotices(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, hg.prompter.Pending())
}

func (hg *sessionHandlerGroup) postNoticeAct(w http.ResponseWriter, r *http.Request) {
	if !hg.prompter.Act(mux.Vars(r)["id"]) {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, hg.prompter.Pending())
}

func (hg *sessionHandlerGroup) deleteNotice(w http.ResponseWriter, r *http.Request) {
	hg.prompter.Dismiss(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
