package test

import (
	"github.com/charmbracelet/log"
	"io"
	"path/filepath"
	"testing"
	"toot_scheduler/dal"
	"toot_scheduler/shared"
)

const TestInstance = "https://mastodon.example"
const TestHost = "toots.example.org"

// NewLogger returns a real logger that writes nowhere.
func NewLogger() shared.ILogger {
	return log.New(io.Discard)
}

func NewConfig(t *testing.T) *shared.Config {
	return &shared.Config{
		Host:                  TestHost,
		SiteScheme:            "https",
		DbFile:                filepath.Join(t.TempDir(), "test.db"),
		AllowPrivateInstances: true,
		RequestTimeoutSec:     5,
		Session: shared.SessionConfig{
			DurationMinutes: 30,
			WarningMinutes:  5,
		},
	}
}

// NewRepo creates a migrated SQLite repo in the test's temp directory.
func NewRepo(t *testing.T, cfg *shared.Config) dal.IRepo {
	repo := dal.NewRepo(cfg, NewLogger())
	repo.InitUpdateDb()
	return repo
}
