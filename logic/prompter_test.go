package logic_test

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
	"toot_scheduler/logic"
	"toot_scheduler/test"
)

func TestPrompterQueue(t *testing.T) {
	clock := test.NewFakeClock(time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC))
	p := logic.NewPrompter(clock)

	acted := 0
	warnId := p.Warn("careful", func() { acted++ })
	infoId := p.Info("fyi")

	pending := p.Pending()
	assert.Len(t, pending, 2)
	assert.Equal(t, logic.NoticeWarning, pending[0].Kind)
	assert.True(t, pending[0].HasAction)
	assert.False(t, pending[1].HasAction)

	assert.False(t, p.Act(infoId))
	assert.True(t, p.Act(warnId))
	assert.Equal(t, 1, acted)
	assert.False(t, p.Act(warnId))
	assert.Empty(t, p.Pending())
}

func TestPrompterDismiss(t *testing.T) {
	p := logic.NewPrompter(test.NewFakeClock(time.Now()))
	id := p.Success("done")
	p.Dismiss("unknown")
	assert.Len(t, p.Pending(), 1)
	p.Dismiss(id)
	assert.Empty(t, p.Pending())
}
