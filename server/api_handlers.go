package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
)

const (
	maxUploadSize      = 40 << 20
	defaultHistorySize = 50
	maxHistorySize     = 200
)

// Scheduled posts, media and tags of the logged-in user.
type apiHandlerGroup struct {
	logger   shared.ILogger
	metrics  logic.IMetrics
	sessions logic.ISessionStore
	api      logic.IMastodonApi
	toots    logic.IScheduledToots
}

func NewApiHandlerGroup(
	logger shared.ILogger,
	metrics logic.IMetrics,
	sessions logic.ISessionStore,
	api logic.IMastodonApi,
	toots logic.IScheduledToots,
) IHandlerGroup {
	res := apiHandlerGroup{
		logger:   logger,
		metrics:  metrics,
		sessions: sessions,
		api:      api,
		toots:    toots,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/toots", func(w http.ResponseWriter, r *http.Request) { hg.getToots(w, r) }},
		{"POST", "/toots", func(w http.ResponseWriter, r *http.Request) { hg.postToot(w, r) }},
		{"PUT", "/toots/{id}", func(w http.ResponseWriter, r *http.Request) { hg.putToot(w, r) }},
		{"DELETE", "/toots/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteToot(w, r) }},
		{"POST", "/toots/{id}/edit", func(w http.ResponseWriter, r *http.Request) { hg.postEdit(w, r) }},
		{"DELETE", "/edit", func(w http.ResponseWriter, r *http.Request) { hg.deleteEdit(w, r) }},
		{"POST", "/media", func(w http.ResponseWriter, r *http.Request) { hg.postMedia(w, r) }},
		{"PUT", "/media/{id}", func(w http.ResponseWriter, r *http.Request) { hg.putMedia(w, r) }},
		{"GET", "/tags/followed", func(w http.ResponseWriter, r *http.Request) { hg.getFollowedTags(w, r) }},
		{"GET", "/history", func(w http.ResponseWriter, r *http.Request) { hg.getHistory(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return sessionAuthMW(hg.logger, hg.sessions, next)
	}
}

// Rejects requests when there is no authenticated session.
func sessionAuthMW(logger shared.ILogger, sessions logic.ISessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessions.IsAuthenticated() {
			logger.Infof("Unauthenticated API request: %s %s", r.Method, r.URL.Path)
			writeErrorResponse(w, notLoggedInStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) tootsResponse() *dto.TootsResponse {
	return &dto.TootsResponse{
		Toots:      hg.toots.SortedByScheduledTime(),
		Count:      hg.toots.Count(),
		CountToday: hg.toots.CountScheduledToday(),
		IsLoading:  hg.toots.IsLoading(),
		Error:      hg.toots.Error(),
		Editing:    hg.toots.EditingTarget(),
	}
}

func (hg *apiHandlerGroup) getToots(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("toots")
	defer obs.Finish()

	// Fetch failures end up in the response's error field
	if r.URL.Query().Get("refresh") != "false" {
		_ = hg.toots.FetchAll(r.Context())
	}
	writeJsonResponse(hg.logger, w, hg.tootsResponse())
}

func (hg *apiHandlerGroup) postToot(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("toots/schedule")
	defer obs.Finish()

	var params dto.TootParams
	if !readJson(hg.logger, w, r, &params) {
		return
	}
	res, err := hg.toots.Schedule(r.Context(), &params)
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to schedule toot")
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) putToot(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("toots/update")
	defer obs.Finish()

	id := mux.Vars(r)["id"]
	var params dto.TootParams
	if !readJson(hg.logger, w, r, &params) {
		return
	}
	res, err := hg.toots.Update(r.Context(), id, &params)
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to update scheduled toot")
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) deleteToot(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("toots/delete")
	defer obs.Finish()

	id := mux.Vars(r)["id"]
	if err := hg.toots.Delete(r.Context(), id); err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to delete scheduled toot")
		return
	}
	writeJsonResponse(hg.logger, w, hg.tootsResponse())
}

func (hg *apiHandlerGroup) postEdit(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("toots/edit")
	defer obs.Finish()

	id := mux.Vars(r)["id"]
	for _, post := range hg.toots.Toots() {
		if post.Id == id {
			hg.toots.SetEditingTarget(post)
			writeJsonResponse(hg.logger, w, post)
			return
		}
	}
	writeErrorResponse(w, notFoundStr, http.StatusNotFound)
}

func (hg *apiHandlerGroup) deleteEdit(w http.ResponseWriter, r *http.Request) {
	hg.toots.SetEditingTarget(nil)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postMedia(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("media/upload")
	defer obs.Finish()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		hg.logger.Infof("Invalid media upload: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, "Missing 'file' field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	lastReported := 0
	onProgress := func(fraction float64) {
		percent := int(fraction * 100)
		if percent/25 > lastReported/25 {
			hg.logger.Debugf("Uploading %s: %d%%", header.Filename, percent)
		}
		lastReported = percent
	}
	res, err := hg.api.UploadMedia(r.Context(), header.Filename, file, onProgress)
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to upload media")
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) putMedia(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("media/update")
	defer obs.Finish()

	id := mux.Vars(r)["id"]
	var req dto.MediaUpdateRequest
	if !readJson(hg.logger, w, r, &req) {
		return
	}
	res, err := hg.api.UpdateMediaMetadata(r.Context(), id, req.Description, req.Focus)
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to update media")
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getFollowedTags(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("tags/followed")
	defer obs.Finish()

	tags, err := hg.api.GetFollowedTags(r.Context())
	if err != nil {
		writeApiError(hg.logger, w, r, err, "Failed to fetch followed tags")
		return
	}
	writeJsonResponse(hg.logger, w, tags)
}

func (hg *apiHandlerGroup) getHistory(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("history")
	defer obs.Finish()

	limit := defaultHistorySize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		if limit, err = strconv.Atoi(limitStr); err != nil || limit <= 0 {
			writeErrorResponse(w, "Invalid 'limit' param", http.StatusBadRequest)
			return
		}
		limit = min(limit, maxHistorySize)
	}
	entries, err := hg.toots.History(limit)
	if err != nil {
		hg.logger.Errorf("Failed to read toot history: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, &dto.HistoryEntry{
			LoggedAt:    e.LoggedAt,
			Action:      string(e.Action),
			StatusId:    e.StatusId,
			ScheduledAt: e.ScheduledAt,
			Text:        e.Text,
		})
	}
	writeJsonResponse(hg.logger, w, res)
}
