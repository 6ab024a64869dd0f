package logic

import (
	"github.com/google/uuid"
	"sync"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
)

const (
	NoticeWarning = "warning"
	NoticeInfo    = "info"
	NoticeSuccess = "success"
)

const maxPendingNotices = 16

// IPrompter is the server side of the UI's toast area. The UI polls Pending
// and reports clicks through Act and closes through Dismiss.
type IPrompter interface {
	Warn(msg string, onAction func()) string
	Info(msg string) string
	Success(msg string) string
	Dismiss(id string)
	Act(id string) bool
	Pending() []*dto.Notice
}

type notice struct {
	dto.Notice
	action func()
}

type prompter struct {
	clock   shared.IClock
	mu      sync.Mutex
	notices []*notice
}

func NewPrompter(clock shared.IClock) IPrompter {
	return &prompter{clock: clock}
}

func (p *prompter) add(kind, msg string, action func()) string {
	n := &notice{
		Notice: dto.Notice{
			Id:        uuid.NewString(),
			Kind:      kind,
			Message:   msg,
			HasAction: action != nil,
			CreatedAt: p.clock.Now(),
		},
		action: action,
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, n)
	if len(p.notices) > maxPendingNotices {
		p.notices = p.notices[len(p.notices)-maxPendingNotices:]
	}
	return n.Id
}

func (p *prompter) Warn(msg string, onAction func()) string {
	return p.add(NoticeWarning, msg, onAction)
}

func (p *prompter) Info(msg string) string {
	return p.add(NoticeInfo, msg, nil)
}

func (p *prompter) Success(msg string) string {
	return p.add(NoticeSuccess, msg, nil)
}

func (p *prompter) take(id string) *notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.notices {
		if n.Id == id {
			p.notices = append(p.notices[:i], p.notices[i+1:]...)
			return n
		}
	}
	return nil
}

func (p *prompter) Dismiss(id string) {
	p.take(id)
}

// Act removes the notice and runs its action without holding the lock.
func (p *prompter) Act(id string) bool {
	n := p.take(id)
	if n == nil || n.action == nil {
		return false
	}
	n.action()
	return true
}

func (p *prompter) Pending() []*dto.Notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]*dto.Notice, 0, len(p.notices))
	for _, n := range p.notices {
		cpy := n.Notice
		res = append(res, &cpy)
	}
	return res
}
