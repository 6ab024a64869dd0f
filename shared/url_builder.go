package shared

import (
	"fmt"
	"net/url"
)

const OAuthCallbackPath = "/oauth/callback"

// UrlBuilder creates URLs of this site and of the user's Mastodon instance.
type UrlBuilder struct {
	Scheme string
	Host   string
}

func NewUrlBuilder(cfg *Config) *UrlBuilder {
	return &UrlBuilder{Scheme: cfg.SiteScheme, Host: cfg.Host}
}

func (ub *UrlBuilder) SiteUrl() string {
	return fmt.Sprintf("%s://%s/", ub.Scheme, ub.Host)
}

func (ub *UrlBuilder) RedirectUri() string {
	return fmt.Sprintf("%s://%s%s", ub.Scheme, ub.Host, OAuthCallbackPath)
}

func (ub *UrlBuilder) LoginPage() string {
	return "/web/login"
}

func (ub *UrlBuilder) Apps(instance string) string {
	return instance + "/api/v1/apps"
}

func (ub *UrlBuilder) OAuthAuthorize(instance string) string {
	return instance + "/oauth/authorize"
}

func (ub *UrlBuilder) OAuthToken(instance string) string {
	return instance + "/oauth/token"
}

func (ub *UrlBuilder) VerifyCredentials(instance string) string {
	return instance + "/api/v1/accounts/verify_credentials"
}

func (ub *UrlBuilder) Statuses(instance string) string {
	return instance + "/api/v1/statuses"
}

func (ub *UrlBuilder) MediaUpload(instance string) string {
	return instance + "/api/v2/media"
}

func (ub *UrlBuilder) Media(instance, id string) string {
	return instance + "/api/v1/media/" + url.PathEscape(id)
}

func (ub *UrlBuilder) ScheduledStatuses(instance string) string {
	return instance + "/api/v1/scheduled_statuses"
}

func (ub *UrlBuilder) ScheduledStatus(instance, id string) string {
	return instance + "/api/v1/scheduled_statuses/" + url.PathEscape(id)
}

func (ub *UrlBuilder) FollowedTags(instance string) string {
	return instance + "/api/v1/followed_tags"
}
