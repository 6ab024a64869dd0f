package logic

import (
	"context"
	"github.com/mattn/go-mastodon"
	"strings"
	"sync"
	"time"
	"toot_scheduler/dto"
	"toot_scheduler/shared"
	"toot_scheduler/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks toot_scheduler/logic INotifier

const botSendTimeout = 30 * time.Second

// INotifier observes session and post events. Implementations never fail the caller.
type INotifier interface {
	LoggedIn(account *dto.Account)
	TootScheduled(account *dto.Account, status *dto.StatusResult)
	TootReplaced(account *dto.Account, status *dto.StatusResult)
	TootDeleted(account *dto.Account, post *dto.ScheduledStatus)
	// Wait blocks until messages already handed to the notifier have been sent or have failed.
	Wait()
}

// botNotifier sends direct messages to the user from a separately configured bot account.
type botNotifier struct {
	cfg     *shared.Config
	logger  shared.ILogger
	txt     texts.ITexts
	metrics IMetrics
	urls    *shared.UrlBuilder
	client  *mastodon.Client
	wg      sync.WaitGroup
}

func NewNotifier(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	metrics IMetrics,
	ua shared.IUserAgent,
) INotifier {
	bn := &botNotifier{
		cfg:     cfg,
		logger:  logger,
		txt:     txt,
		metrics: metrics,
		urls:    shared.NewUrlBuilder(cfg),
	}
	if !cfg.Bot.Enabled(&cfg.Secrets) {
		logger.Info("Bot notifications are disabled")
		return bn
	}
	bn.client = mastodon.NewClient(&mastodon.Config{
		Server:      cfg.Bot.InstanceUrl,
		AccessToken: cfg.Secrets.BotAccessToken,
	})
	bn.client.Timeout = botSendTimeout
	bn.client.Transport = newHttpClient(cfg, ua).Transport
	logger.Infof("Bot notifications go out through %s", cfg.Bot.InstanceUrl)
	return bn
}

// moniker is the account's @user@host, which a direct message must mention to reach it.
func moniker(account *dto.Account) string {
	if strings.Contains(account.Acct, "@") {
		return "@" + account.Acct
	}
	host, err := shared.GetHostName(account.Url)
	if err != nil || host == "" {
		return "@" + account.Acct
	}
	return shared.MakeFullMoniker(host, account.Acct)
}

func formatWhen(scheduledAt string) string {
	t, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return "now"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}

func (bn *botNotifier) LoggedIn(account *dto.Account) {
	bn.send(account, "bot-logged-in.txt", map[string]string{
		"site": bn.urls.SiteUrl(),
	})
}

func (bn *botNotifier) TootScheduled(account *dto.Account, status *dto.StatusResult) {
	bn.send(account, "bot-toot-scheduled.txt", map[string]string{
		"when":    formatWhen(status.ScheduledAt),
		"preview": shared.MakePreview(status.Text()),
	})
}

func (bn *botNotifier) TootReplaced(account *dto.Account, status *dto.StatusResult) {
	bn.send(account, "bot-toot-replaced.txt", map[string]string{
		"when":    formatWhen(status.ScheduledAt),
		"preview": shared.MakePreview(status.Text()),
	})
}

func (bn *botNotifier) TootDeleted(account *dto.Account, post *dto.ScheduledStatus) {
	bn.send(account, "bot-toot-deleted.txt", map[string]string{
		"when":    formatWhen(post.ScheduledAt),
		"preview": shared.MakePreview(post.Params.Text),
	})
}

func (bn *botNotifier) Wait() {
	bn.wg.Wait()
}

func (bn *botNotifier) send(account *dto.Account, snippet string, vals map[string]string) {
	if bn.client == nil || account == nil || account.Acct == "" {
		return
	}
	vals["moniker"] = moniker(account)
	msg, err := bn.txt.WithVals(snippet, vals)
	if err != nil {
		bn.logger.Errorf("Cannot compose bot message: %v", err)
		return
	}

	bn.wg.Add(1)
	go func() {
		defer bn.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), botSendTimeout)
		defer cancel()
		_, err := bn.client.PostStatus(ctx, &mastodon.Toot{
			Status:     msg,
			Visibility: mastodon.VisibilityDirectMessage,
		})
		bn.metrics.BotMessageSent(err == nil)
		if err != nil {
			bn.logger.Warnf("Failed to send bot message to %s: %v", vals["moniker"], err)
			return
		}
		bn.logger.Debugf("Sent bot message to %s", vals["moniker"])
	}()
}
