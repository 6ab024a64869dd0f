package logic_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
	"toot_scheduler/test"
	"toot_scheduler/texts"
)

// missingTexts behaves as if no snippet were embedded.
type missingTexts struct{}

func (missingTexts) Get(id string) (string, error) {
	return "", errors.New("snippet " + id + " not found")
}

func (m missingTexts) WithVals(id string, _ map[string]string) (string, error) {
	return m.Get(id)
}

type botPost struct {
	auth       string
	status     string
	visibility string
}

func setupBot(t *testing.T, status int) (*shared.Config, *[]botPost) {
	var mu sync.Mutex
	posts := []botPost{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		mu.Lock()
		posts = append(posts, botPost{
			auth:       r.Header.Get("Authorization"),
			status:     r.PostForm.Get("status"),
			visibility: r.PostForm.Get("visibility"),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"id":"900","content":"","visibility":"direct"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := test.NewConfig(t)
	cfg.Bot.InstanceUrl = srv.URL
	cfg.Secrets.BotAccessToken = "bot-token"
	return cfg, &posts
}

func TestNotifierDisabledSendsNothing(t *testing.T) {
	cfg, posts := setupBot(t, http.StatusOK)
	cfg.Secrets.BotAccessToken = ""
	n := logic.NewNotifier(cfg, test.NewLogger(), texts.NewTexts(), logic.NewMetrics(cfg), shared.NewUserAgent(cfg))

	n.LoggedIn(&dto.Account{Acct: "alice", Url: "https://mastodon.example/@alice"})
	n.Wait()
	assert.Empty(t, *posts)
}

func TestNotifierSendsDirectMessages(t *testing.T) {
	cfg, posts := setupBot(t, http.StatusOK)
	n := logic.NewNotifier(cfg, test.NewLogger(), texts.NewTexts(), logic.NewMetrics(cfg), shared.NewUserAgent(cfg))
	account := &dto.Account{Acct: "alice", Url: "https://mastodon.example/@alice"}

	n.TootScheduled(account, &dto.StatusResult{
		Id:          "7",
		ScheduledAt: "2024-03-20T10:00:00.000Z",
		Params:      &dto.ScheduledParams{Text: "hello <b>world</b>"},
	})
	n.Wait()

	assert.Len(t, *posts, 1)
	sent := (*posts)[0]
	assert.Equal(t, "Bearer bot-token", sent.auth)
	assert.Equal(t, "direct", sent.visibility)
	assert.Equal(t, "@alice@mastodon.example Your toot is scheduled for 2024-03-20 10:00 UTC: hello world", sent.status)
}

func TestNotifierSkipsMissingAccount(t *testing.T) {
	cfg, posts := setupBot(t, http.StatusOK)
	n := logic.NewNotifier(cfg, test.NewLogger(), texts.NewTexts(), logic.NewMetrics(cfg), shared.NewUserAgent(cfg))

	n.TootDeleted(nil, &dto.ScheduledStatus{Id: "1"})
	n.Wait()
	assert.Empty(t, *posts)
}

func TestNotifierFailureDoesNotPropagate(t *testing.T) {
	cfg, posts := setupBot(t, http.StatusInternalServerError)
	n := logic.NewNotifier(cfg, test.NewLogger(), texts.NewTexts(), logic.NewMetrics(cfg), shared.NewUserAgent(cfg))

	n.TootDeleted(&dto.Account{Acct: "bob@other.example"}, &dto.ScheduledStatus{Id: "1"})
	n.Wait()
	assert.Len(t, *posts, 1)
	assert.Contains(t, (*posts)[0].status, "@bob@other.example")
}

func TestNotifierSkipsMessageWithoutSnippet(t *testing.T) {
	cfg, posts := setupBot(t, http.StatusOK)
	n := logic.NewNotifier(cfg, test.NewLogger(), missingTexts{}, logic.NewMetrics(cfg), shared.NewUserAgent(cfg))

	n.LoggedIn(&dto.Account{Acct: "alice", Url: "https://mastodon.example/@alice"})
	n.Wait()
	assert.Empty(t, *posts)
}
