package server

import (
	"net/http"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
)

// Feature announcements and the inactivity timeout.
type uiHandlerGroup struct {
	logger   shared.ILogger
	metrics  logic.IMetrics
	sessions logic.ISessionStore
	features logic.IFeatureNotices
	timeout  logic.ISessionTimeout
}

func NewUiHandlerGroup(
	logger shared.ILogger,
	metrics logic.IMetrics,
	sessions logic.ISessionStore,
	features logic.IFeatureNotices,
	timeout logic.ISessionTimeout,
) IHandlerGroup {
	res := uiHandlerGroup{
		logger:   logger,
		metrics:  metrics,
		sessions: sessions,
		features: features,
		timeout:  timeout,
	}
	return &res
}

func (hg *uiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *uiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/features", func(w http.ResponseWriter, r *http.Request) { hg.getFeatures(w, r) }},
		{"POST", "/features/seen", func(w http.ResponseWriter, r *http.Request) { hg.postFeaturesSeen(w, r) }},
		{"POST", "/activity", func(w http.ResponseWriter, r *http.Request) { hg.postActivity(w, r) }},
		{"POST", "/session/extend", func(w http.ResponseWriter, r *http.Request) { hg.postExtend(w, r) }},
	}
}

func (hg *uiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return sessionAuthMW(hg.logger, hg.sessions, next)
	}
}

func (hg *uiHandlerGroup) getFeatures(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("features")
	defer obs.Finish()

	res := dto.FeaturesResponse{
		LatestVersion: hg.features.LatestVersion(),
		Unseen:        hg.features.Unseen(),
		NewFeatureIds: []string{},
	}
	for _, group := range hg.features.Catalog() {
		for _, f := range group.Features {
			if hg.features.IsFeatureNew(f.Id) {
				res.NewFeatureIds = append(res.NewFeatureIds, f.Id)
			}
		}
	}
	writeJsonResponse(hg.logger, w, &res)
}

func (hg *uiHandlerGroup) postFeaturesSeen(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("features/seen")
	defer obs.Finish()

	if err := hg.features.MarkAllSeen(); err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *uiHandlerGroup) postActivity(w http.ResponseWriter, r *http.Request) {
	var req dto.ActivityRequest
	if !readJson(hg.logger, w, r, &req) {
		return
	}
	kind, ok := logic.ParseActivityKind(req.Kind)
	if !ok {
		writeErrorResponse(w, "Unknown activity kind", http.StatusBadRequest)
		return
	}
	hg.timeout.OnActivity(kind)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *uiHandlerGroup) postExtend(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("session/extend")
	defer obs.Finish()

	hg.timeout.Extend()
	writeJsonResponse(hg.logger, w, map[string]string{"timeout_state": hg.timeout.State().String()})
}
