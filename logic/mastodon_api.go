package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/doyensec/safeurl"
	"github.com/spaolacci/murmur3"
	"golang.org/x/oauth2"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mastodon_api.go -package mocks toot_scheduler/logic IMastodonApi

const (
	appClientName   = "Toots Scheduler"
	appScopes       = "read:accounts read:statuses write:media write:statuses"
	maxResponseSize = 4 * 1024 * 1024
)

// IMastodonApi is the gateway to the user's Mastodon instance.
// All methods fail with an *ApiError.
type IMastodonApi interface {
	NormalizeInstanceUrl(raw string) (string, error)
	RegisterApplication(ctx context.Context, instanceUrl string) (*dto.AppRegistration, error)
	AuthorizeUrl(clientId, state string) (string, error)
	ExchangeAuthorizationCode(ctx context.Context, code, clientId, clientSecret string) (*dto.TokenPayload, error)
	VerifyCredentials(ctx context.Context) (*dto.Account, error)
	ScheduleToot(ctx context.Context, params *dto.TootParams) (*dto.StatusResult, error)
	UploadMedia(ctx context.Context, fileName string, file io.Reader, onProgress func(fraction float64)) (*dto.MediaAttachment, error)
	UpdateMediaMetadata(ctx context.Context, id string, description *string, focus *dto.Focus) (*dto.MediaAttachment, error)
	ListScheduledToots(ctx context.Context) ([]*dto.ScheduledStatus, error)
	DeleteScheduledToot(ctx context.Context, id string) error
	GetFollowedTags(ctx context.Context) ([]*dto.Tag, error)
}

type mastodonApi struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  IMetrics
	sessions ISessionStore
	clock    shared.IClock
	urls     *shared.UrlBuilder
	client   *http.Client
}

func NewMastodonApi(
	cfg *shared.Config,
	logger shared.ILogger,
	ua shared.IUserAgent,
	metrics IMetrics,
	sessions ISessionStore,
	clock shared.IClock,
) IMastodonApi {
	return &mastodonApi{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		sessions: sessions,
		clock:    clock,
		urls:     shared.NewUrlBuilder(cfg),
		client:   newHttpClient(cfg, ua),
	}
}

// Instances are user-supplied, so outside of development the client refuses
// private, loopback and link-local targets.
func newHttpClient(cfg *shared.Config, ua shared.IUserAgent) *http.Client {
	var client *http.Client
	if cfg.AllowPrivateInstances {
		client = &http.Client{Timeout: cfg.RequestTimeout()}
	} else {
		config := safeurl.GetConfigBuilder().
			SetTimeout(cfg.RequestTimeout()).
			SetAllowedSchemes("https").
			SetAllowedPorts(443).
			Build()
		client = safeurl.Client(config).Client
	}
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport = &userAgentTransport{next: next, ua: ua}
	return client
}

type userAgentTransport struct {
	next http.RoundTripper
	ua   shared.IUserAgent
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	t.ua.AddUserAgent(req)
	return t.next.RoundTrip(req)
}

func (api *mastodonApi) NormalizeInstanceUrl(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", &ApiError{Kind: ErrInvalidUrl, Message: msgInvalidUrl, Err: err}
	}
	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Hostname() == "" {
		return "", newApiError(ErrInvalidUrl, msgInvalidUrl)
	}
	host := strings.ToLower(parsed.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	port := parsed.Port()
	// The outbound client only dials https on 443 unless private instances are allowed
	if !api.cfg.AllowPrivateInstances && (scheme != "https" || (port != "" && port != "443")) {
		return "", newApiError(ErrInvalidUrl, msgHttpsOnly)
	}
	if port != "" && !(scheme == "https" && port == "443") && !(scheme == "http" && port == "80") {
		host += ":" + port
	}
	return scheme + "://" + host, nil
}

func (api *mastodonApi) requireInstance() (Session, error) {
	sess := api.sessions.Session()
	if sess.InstanceUrl == "" {
		return sess, newApiError(ErrConfiguration, msgNoInstance)
	}
	return sess, nil
}

func (api *mastodonApi) RegisterApplication(ctx context.Context, instanceUrl string) (*dto.AppRegistration, error) {

	instance, err := api.NormalizeInstanceUrl(instanceUrl)
	if err != nil {
		return nil, err
	}
	body := dto.AppRegistrationRequest{
		ClientName:   appClientName,
		RedirectUris: api.urls.RedirectUri(),
		Scopes:       appScopes,
		Website:      api.urls.SiteUrl(),
	}
	var reg dto.AppRegistration
	err = api.doJson(ctx, "apps", http.MethodPost, api.urls.Apps(instance), "", body, nil,
		&reg, ErrRegistration, msgRegistrationFailed)
	if err != nil {
		return nil, err
	}
	if reg.ClientId == "" || reg.ClientSecret == "" {
		api.logger.Warnf("Registration response from %s lacks client credentials", instance)
		return nil, newApiError(ErrRegistration, msgInvalidRegistration)
	}
	api.logger.Infof("Registered application at %s", instance)
	return &reg, nil
}

func (api *mastodonApi) oauthConfig(instance, clientId, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		Scopes:       strings.Split(appScopes, " "),
		Endpoint: oauth2.Endpoint{
			AuthURL:   api.urls.OAuthAuthorize(instance),
			TokenURL:  api.urls.OAuthToken(instance),
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: api.urls.RedirectUri(),
	}
}

func (api *mastodonApi) AuthorizeUrl(clientId, state string) (string, error) {
	sess, err := api.requireInstance()
	if err != nil {
		return "", err
	}
	return api.oauthConfig(sess.InstanceUrl, clientId, "").AuthCodeURL(state), nil
}

func (api *mastodonApi) ExchangeAuthorizationCode(
	ctx context.Context, code, clientId, clientSecret string,
) (*dto.TokenPayload, error) {

	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}

	obs := api.metrics.StartMastodonRequestOut("oauth_token")
	defer obs.Finish()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, api.client)
	token, err := api.oauthConfig(sess.InstanceUrl, clientId, clientSecret).Exchange(ctx, code)
	if err != nil {
		api.metrics.MastodonRequestFailed("oauth_token")
		api.logger.Warnf("Token exchange with %s failed: %v", sess.InstanceUrl, err)
		res := &ApiError{Kind: ErrTokenExchange, Message: msgTokenFailed, Err: err}
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			if re.Response != nil {
				res.Status = re.Response.StatusCode
			}
			if re.ErrorDescription != "" {
				res.Message = re.ErrorDescription
			}
		}
		return nil, res
	}

	res := &dto.TokenPayload{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		res.Scope = scope
	}
	if createdAt, ok := token.Extra("created_at").(float64); ok {
		res.CreatedAt = int64(createdAt)
	}
	return res, nil
}

func (api *mastodonApi) VerifyCredentials(ctx context.Context) (*dto.Account, error) {
	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}
	var acct dto.Account
	err = api.doJson(ctx, "verify_credentials", http.MethodGet, api.urls.VerifyCredentials(sess.InstanceUrl),
		sess.AccessToken, nil, nil, &acct, ErrRequest, msgVerifyFailed)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func isValidVisibility(v string) bool {
	switch v {
	case dto.VisibilityPublic, dto.VisibilityUnlisted, dto.VisibilityPrivate, dto.VisibilityDirect:
		return true
	}
	return false
}

// withDefaults returns a copy of params with unset optional fields filled in.
func withDefaults(params *dto.TootParams) *dto.TootParams {
	res := *params
	if res.Visibility == "" {
		res.Visibility = dto.VisibilityPublic
	}
	if res.MediaIds == nil {
		res.MediaIds = []string{}
	}
	return &res
}

// ValidateTootParams rejects posts the server would refuse, without a network call.
func ValidateTootParams(params *dto.TootParams) error {
	if params == nil || strings.TrimSpace(params.Status) == "" {
		return newApiError(ErrValidation, msgStatusRequired)
	}
	if params.Visibility != "" && !isValidVisibility(params.Visibility) {
		return newApiError(ErrValidation, fmt.Sprintf("Invalid visibility: %s", params.Visibility))
	}
	return nil
}

func (api *mastodonApi) idempotencyKey(text string) string {
	return fmt.Sprintf("%d-%08x", api.clock.Now().UnixMilli(), murmur3.Sum32([]byte(text)))
}

func (api *mastodonApi) ScheduleToot(ctx context.Context, params *dto.TootParams) (*dto.StatusResult, error) {

	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}
	if err = ValidateTootParams(params); err != nil {
		return nil, err
	}
	payload := withDefaults(params)

	headers := map[string]string{"Idempotency-Key": api.idempotencyKey(payload.Status)}
	var res dto.StatusResult
	err = api.doJson(ctx, "statuses", http.MethodPost, api.urls.Statuses(sess.InstanceUrl),
		sess.AccessToken, payload, headers, &res, ErrRequest, msgScheduleFailed)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	onProgress func(float64)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += int64(n)
		if pr.onProgress != nil && pr.total > 0 {
			pr.onProgress(float64(pr.read) / float64(pr.total))
		}
	}
	return n, err
}

func (api *mastodonApi) UploadMedia(
	ctx context.Context, fileName string, file io.Reader, onProgress func(fraction float64),
) (*dto.MediaAttachment, error) {

	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err == nil {
		_, err = io.Copy(part, file)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return nil, &ApiError{Kind: ErrUpload, Message: msgUploadFailed, Err: err}
	}

	body := &progressReader{
		r:          bytes.NewReader(buf.Bytes()),
		total:      int64(buf.Len()),
		onProgress: onProgress,
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, api.urls.MediaUpload(sess.InstanceUrl), body)
	if err != nil {
		return nil, &ApiError{Kind: ErrUpload, Message: msgUploadFailed, Err: err}
	}
	req.ContentLength = body.total
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res dto.MediaAttachment
	if err = api.do(req, "media_upload", sess.AccessToken, &res, ErrUpload, msgUploadFailed); err != nil {
		return nil, err
	}
	if res.Id == "" {
		return nil, newApiError(ErrUpload, msgUploadFailed)
	}
	api.metrics.MediaUploaded()
	return &res, nil
}

func formatFocus(focus *dto.Focus) string {
	return strconv.FormatFloat(focus.X, 'f', -1, 64) + "," + strconv.FormatFloat(focus.Y, 'f', -1, 64)
}

func (api *mastodonApi) UpdateMediaMetadata(
	ctx context.Context, id string, description *string, focus *dto.Focus,
) (*dto.MediaAttachment, error) {

	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newApiError(ErrValidation, "Media id is required")
	}
	body := map[string]string{}
	if description != nil {
		body["description"] = *description
	}
	if focus != nil {
		if focus.X < -1 || focus.X > 1 || focus.Y < -1 || focus.Y > 1 {
			return nil, newApiError(ErrValidation, "Focus must be between -1.0 and 1.0")
		}
		body["focus"] = formatFocus(focus)
	}
	var res dto.MediaAttachment
	err = api.doJson(ctx, "media_update", http.MethodPut, api.urls.Media(sess.InstanceUrl, id),
		sess.AccessToken, body, nil, &res, ErrRequest, msgMediaUpdateFailed)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (api *mastodonApi) ListScheduledToots(ctx context.Context) ([]*dto.ScheduledStatus, error) {
	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}
	res := []*dto.ScheduledStatus{}
	err = api.doJson(ctx, "scheduled_statuses", http.MethodGet, api.urls.ScheduledStatuses(sess.InstanceUrl),
		sess.AccessToken, nil, nil, &res, ErrRequest, msgFetchFailed)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (api *mastodonApi) DeleteScheduledToot(ctx context.Context, id string) error {
	sess, err := api.requireInstance()
	if err != nil {
		return err
	}
	if id == "" {
		return newApiError(ErrValidation, "Scheduled toot id is required")
	}
	return api.doJson(ctx, "scheduled_status_delete", http.MethodDelete,
		api.urls.ScheduledStatus(sess.InstanceUrl, id),
		sess.AccessToken, nil, nil, nil, ErrDeletion, msgDeleteFailed)
}

func (api *mastodonApi) GetFollowedTags(ctx context.Context) ([]*dto.Tag, error) {
	sess, err := api.requireInstance()
	if err != nil {
		return nil, err
	}
	res := []*dto.Tag{}
	err = api.doJson(ctx, "followed_tags", http.MethodGet, api.urls.FollowedTags(sess.InstanceUrl),
		sess.AccessToken, nil, nil, &res, ErrRequest, msgTagsFailed)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// doJson sends body (if any) as JSON and decodes the response into out (if any).
func (api *mastodonApi) doJson(
	ctx context.Context, label, method, reqUrl, token string,
	body any, headers map[string]string, out any,
	kind ErrorKind, fallback string,
) error {

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return &ApiError{Kind: kind, Message: fallback, Err: err}
		}
		reqBody = bytes.NewReader(bodyJson)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reqBody)
	if err != nil {
		return &ApiError{Kind: kind, Message: fallback, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return api.do(req, label, token, out, kind, fallback)
}

func (api *mastodonApi) do(req *http.Request, label, token string, out any, kind ErrorKind, fallback string) error {

	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	obs := api.metrics.StartMastodonRequestOut(label)
	defer obs.Finish()

	api.logger.Debugf("%s %s", req.Method, req.URL.String())
	resp, err := api.client.Do(req)
	if err != nil {
		api.metrics.MastodonRequestFailed(label)
		api.logger.Warnf("%s %s failed: %v", req.Method, req.URL.String(), err)
		return &ApiError{Kind: kind, Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		api.metrics.MastodonRequestFailed(label)
		return &ApiError{Kind: kind, Message: fallback, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		api.metrics.MastodonRequestFailed(label)
		msg := serverMessage(respBody, fallback)
		api.logger.Warnf("%s %s returned %d: %s", req.Method, req.URL.String(), resp.StatusCode, msg)
		return &ApiError{Kind: kind, Message: msg, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(respBody, out); err != nil {
		api.metrics.MastodonRequestFailed(label)
		api.logger.Warnf("%s %s returned unreadable body: %v", req.Method, req.URL.String(), err)
		return &ApiError{Kind: kind, Message: fallback, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// serverMessage extracts the instance's own error text from a failed response.
func serverMessage(body []byte, fallback string) string {
	var se dto.ServerError
	if err := json.Unmarshal(body, &se); err != nil {
		return fallback
	}
	if se.Error != "" {
		return se.Error
	}
	if se.ErrorDescription != "" {
		return se.ErrorDescription
	}
	return fallback
}
