package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
)

const (
	metricsAuthHeader = "Authorization"
	rootPlacholder    = "*root*"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	notFoundStr       = "404 Not Found"
	dirListNotAllowed = "403 Directory Listing Not Allowed"
	badAuthorization  = "401 Missing or Invalid Authorization"
	notLoggedInStr    = "401 Not Logged In"
)

const maxJsonBodySize = 64 * 1024

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

func emptyMW(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	})
}

// Returns the JSON serialized object as the response body; handles errors.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if _, err = fmt.Fprintln(w, string(respJson)); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	resp := errorResp{msg, code}
	respJson, _ := json.Marshal(resp)
	http.Error(w, string(respJson), code)
}

func statusForError(err error) int {
	switch {
	case logic.IsKind(err, logic.ErrValidation), logic.IsKind(err, logic.ErrInvalidUrl):
		return http.StatusBadRequest
	case logic.IsKind(err, logic.ErrConfiguration):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// Writes a failed logic operation as an error response with a user-facing message.
func writeApiError(logger shared.ILogger, w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code := statusForError(err)
	logger.Infof("%s %s failed with %d: %v", r.Method, r.URL.Path, code, err)
	writeErrorResponse(w, logic.UserMessage(err, fallback), code)
}

func readBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request) []byte {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJsonBodySize))
	if err != nil {
		logger.Warnf("Failed to read request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	return body
}

// Parses the JSON request body into v. On failure writes the error response and returns false.
func readJson(logger shared.ILogger, w http.ResponseWriter, r *http.Request, v any) bool {
	body := readBody(logger, w, r)
	if body == nil {
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		logger.Infof("Invalid JSON in %s %s: %v", r.Method, r.URL.Path, err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return false
	}
	return true
}
