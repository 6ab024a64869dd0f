package logic_test

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/test"
)

func TestFeatureNoticesFreshUser(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	fn, err := logic.NewFeatureNotices(test.NewLogger(), repo)
	assert.NoError(t, err)

	assert.Equal(t, "1.2.0", fn.LatestVersion())
	unseen := fn.Unseen()
	assert.LessOrEqual(t, len(unseen), 3)
	assert.Len(t, unseen, len(fn.Catalog()))
	assert.Equal(t, "1.2.0", unseen[0].Version)
	assert.True(t, fn.IsFeatureNew("edit-scheduled-toots"))
	assert.True(t, fn.IsFeatureNew("schedule-posts"))
	assert.False(t, fn.IsFeatureNew("no-such-feature"))
}

func TestFeatureNoticesMarkAllSeenPersists(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	fn, err := logic.NewFeatureNotices(test.NewLogger(), repo)
	assert.NoError(t, err)

	assert.NoError(t, fn.MarkAllSeen())
	assert.Empty(t, fn.Unseen())
	assert.False(t, fn.IsFeatureNew("edit-scheduled-toots"))

	stored, found, err := repo.GetSlot("masto-publish-later-features")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"lastSeenVersion":"1.2.0","seenFeatures":["1.2.0","1.1.0"]}`, stored)

	// A new instance over the same storage sees the same state
	again, err := logic.NewFeatureNotices(test.NewLogger(), repo)
	assert.NoError(t, err)
	assert.Empty(t, again.Unseen())
}

func TestFeatureNoticesPartiallySeen(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	assert.NoError(t, repo.SetSlot("masto-publish-later-features",
		`{"lastSeenVersion":"1.1.0","seenFeatures":["1.1.0"]}`))
	fn, err := logic.NewFeatureNotices(test.NewLogger(), repo)
	assert.NoError(t, err)

	unseen := fn.Unseen()
	assert.Len(t, unseen, 1)
	assert.Equal(t, "1.2.0", unseen[0].Version)
	assert.True(t, fn.IsFeatureNew("multi-account-support"))
	assert.False(t, fn.IsFeatureNew("schedule-posts"))
}

func TestFeatureNoticesMalformedState(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	assert.NoError(t, repo.SetSlot("masto-publish-later-features", "{not json"))
	_, err := logic.NewFeatureNotices(test.NewLogger(), repo)
	assert.ErrorContains(t, err, "malformed")
}

func TestFeatureNoticesShowsAtMostThreeNewestGroups(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	catalog := []*dto.FeatureGroup{}
	for _, v := range []string{"1.4.0", "1.3.0", "1.2.0", "1.1.0", "1.0.0"} {
		catalog = append(catalog, &dto.FeatureGroup{
			Version:  v,
			Features: []*dto.Feature{{Id: "feature-" + v}},
		})
	}
	fn, err := logic.NewFeatureNoticesWithCatalog(test.NewLogger(), repo, catalog)
	assert.NoError(t, err)

	unseen := fn.Unseen()
	assert.Len(t, unseen, 3)
	assert.Equal(t, "1.4.0", unseen[0].Version)
	assert.Equal(t, "1.3.0", unseen[1].Version)
	assert.Equal(t, "1.2.0", unseen[2].Version)
	// Groups past the cap are still new, just not shown
	assert.True(t, fn.IsFeatureNew("feature-1.0.0"))

	assert.NoError(t, fn.MarkAllSeen())
	assert.Empty(t, fn.Unseen())
	assert.False(t, fn.IsFeatureNew("feature-1.0.0"))
	assert.Equal(t, "1.4.0", fn.LatestVersion())
}
