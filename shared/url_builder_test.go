package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUrlBuilderSiteUrls(t *testing.T) {
	ub := NewUrlBuilder(&Config{SiteScheme: "https", Host: "toots.example.org"})
	assert.Equal(t, "https://toots.example.org/", ub.SiteUrl())
	assert.Equal(t, "https://toots.example.org/oauth/callback", ub.RedirectUri())
}

func TestUrlBuilderInstanceUrls(t *testing.T) {
	ub := UrlBuilder{Scheme: "https", Host: "toots.example.org"}
	inst := "https://mastodon.social"
	assert.Equal(t, "https://mastodon.social/api/v1/apps", ub.Apps(inst))
	assert.Equal(t, "https://mastodon.social/api/v2/media", ub.MediaUpload(inst))
	assert.Equal(t, "https://mastodon.social/api/v1/media/12", ub.Media(inst, "12"))
	assert.Equal(t, "https://mastodon.social/api/v1/scheduled_statuses/a%2Fb", ub.ScheduledStatus(inst, "a/b"))
	assert.Equal(t, "https://mastodon.social/api/v1/followed_tags", ub.FollowedTags(inst))
}
