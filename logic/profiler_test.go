package logic_test

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
	"time"
	"toot_scheduler/logic"
	"toot_scheduler/test"
)

func TestProfilerDisabledWithoutDir(t *testing.T) {
	cfg := test.NewConfig(t)
	clock := test.NewFakeClock(time.Now())
	prof := logic.NewProfiler(cfg, test.NewLogger(), clock)
	prof.Start()
	assert.Equal(t, 0, clock.PendingTimers())
}

func TestProfilerWritesAndPurges(t *testing.T) {
	cfg := test.NewConfig(t)
	cfg.ProfileDir = filepath.Join(t.TempDir(), "profiles")
	cfg.ProfileKeepDays = 3
	clock := test.NewFakeClock(time.Now())
	prof := logic.NewProfiler(cfg, test.NewLogger(), clock)
	prof.Start()

	stale := filepath.Join(cfg.ProfileDir, "stale.txt")
	assert.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	old := time.Now().AddDate(0, 0, -10)
	assert.NoError(t, os.Chtimes(stale, old, old))

	clock.Advance(10 * time.Second)
	entries, err := os.ReadDir(cfg.ProfileDir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotEqual(t, "stale.txt", entries[0].Name())
	assert.Equal(t, 1, clock.PendingTimers())

	prof.Stop()
	assert.Equal(t, 0, clock.PendingTimers())
}
