package logic_test

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
	"toot_scheduler/logic"
	"toot_scheduler/test"
)

func TestBlockedInstances(t *testing.T) {
	cfg := test.NewConfig(t)
	cfg.BlockedInstancesFile = filepath.Join(t.TempDir(), "blocked.txt")
	assert.NoError(t, os.WriteFile(cfg.BlockedInstancesFile, []byte("# comment\n\nSpam.Example\n  bad.social  \n"), 0644))
	bi := logic.NewBlockedInstances(cfg)

	cases := []struct {
		instance string
		blocked  bool
	}{
		{"https://spam.example", true},
		{"https://mastodon.spam.example", true},
		{"https://bad.social:8443", true},
		{"https://notspam.example", false},
		{"https://mastodon.social", false},
	}
	for _, c := range cases {
		blocked, err := bi.IsBlocked(c.instance)
		assert.NoError(t, err)
		assert.Equal(t, c.blocked, blocked, c.instance)
	}
}

func TestBlockedInstancesWithoutList(t *testing.T) {
	cfg := test.NewConfig(t)
	blocked, err := logic.NewBlockedInstances(cfg).IsBlocked("https://spam.example")
	assert.NoError(t, err)
	assert.False(t, blocked)

	cfg.BlockedInstancesFile = filepath.Join(t.TempDir(), "missing.txt")
	blocked, err = logic.NewBlockedInstances(cfg).IsBlocked("https://spam.example")
	assert.NoError(t, err)
	assert.False(t, blocked)
}
