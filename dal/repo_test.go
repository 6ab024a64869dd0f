package dal_test

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"toot_scheduler/dal"
	"toot_scheduler/test"
)

func TestSlotsRoundTrip(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))

	_, found, err := repo.GetSlot("mastodon_token")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, repo.SetSlot("mastodon_token", "abc"))
	assert.NoError(t, repo.SetSlot("mastodon_token", "def"))
	val, found, err := repo.GetSlot("mastodon_token")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "def", val)

	assert.NoError(t, repo.DeleteSlot("mastodon_token"))
	_, found, err = repo.GetSlot("mastodon_token")
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing slot is not an error
	assert.NoError(t, repo.DeleteSlot("mastodon_token"))
}

func TestEmptySlotValueIsFound(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))
	assert.NoError(t, repo.SetSlot("x", ""))
	val, found, err := repo.GetSlot("x")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", val)
}

func TestInitUpdateDbIsRepeatable(t *testing.T) {
	cfg := test.NewConfig(t)
	repo := test.NewRepo(t, cfg)
	assert.NoError(t, repo.SetSlot("kept", "1"))

	again := dal.NewRepo(cfg, test.NewLogger())
	again.InitUpdateDb()
	val, found, err := again.GetSlot("kept")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", val)
}

func TestTootLog(t *testing.T) {
	repo := test.NewRepo(t, test.NewConfig(t))

	first := &dal.TootLogEntry{Instance: test.TestInstance, Action: dal.TootScheduled, StatusId: "1", Text: "hello"}
	assert.NoError(t, repo.AddTootLogEntry(first))
	assert.NotZero(t, first.Id)
	assert.False(t, first.LoggedAt.IsZero())

	assert.NoError(t, repo.AddTootLogEntry(&dal.TootLogEntry{
		Instance: test.TestInstance, Action: dal.TootDeleted, StatusId: "1", Text: "hello"}))
	assert.NoError(t, repo.AddTootLogEntry(&dal.TootLogEntry{
		Instance: "https://other.example", Action: dal.TootScheduled, StatusId: "9"}))

	entries, err := repo.GetTootLog(test.TestInstance, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, dal.TootDeleted, entries[0].Action)
	assert.Equal(t, dal.TootScheduled, entries[1].Action)
	assert.Equal(t, "hello", entries[1].Text)

	entries, err = repo.GetTootLog(test.TestInstance, 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
