package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"toot_scheduler/shared"
)

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApiRequestIn(label string) IRequestObserver
	StartMastodonRequestOut(label string) IRequestObserver
	MastodonRequestFailed(label string)
	TootScheduled()
	TootDeleted()
	TootReplaced()
	MediaUploaded()
	LoggedIn()
	SessionExpired()
	BotMessageSent(success bool)
	ServiceStarted()
	ScheduledTootCount(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	apiRequestsIn       *prometheus.HistogramVec
	mastodonRequestsOut *prometheus.HistogramVec
	mastodonFailures    *prometheus.CounterVec
	tootsScheduled      prometheus.Counter
	tootsDeleted        prometheus.Counter
	tootsReplaced       prometheus.Counter
	mediaUploaded       prometheus.Counter
	logins              prometheus.Counter
	sessionsExpired     prometheus.Counter
	botMessages         *prometheus.CounterVec
	serviceStarted      prometheus.Counter
	scheduledTootCount  prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	res.webRequestsIn = register(res.webRequestsIn)

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of JSON API requests served.",
	}, []string{"label"})
	res.apiRequestsIn = register(res.apiRequestsIn)

	res.mastodonRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "mastodon_requests_out_duration",
		Help: "Duration in seconds of requests made to Mastodon instances.",
	}, []string{"label"})
	res.mastodonRequestsOut = register(res.mastodonRequestsOut)

	res.mastodonFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mastodon_requests_failed",
		Help: "Number of failed requests to Mastodon instances",
	}, []string{"label"})
	res.mastodonFailures = register(res.mastodonFailures)

	res.tootsScheduled = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "toots_scheduled",
		Help: "Number of toots scheduled",
	}))

	res.tootsDeleted = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "toots_deleted",
		Help: "Number of scheduled toots deleted",
	}))

	res.tootsReplaced = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "toots_replaced",
		Help: "Number of scheduled toots edited through delete and recreate",
	}))

	res.mediaUploaded = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_uploaded",
		Help: "Number of media attachments uploaded",
	}))

	res.logins = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logins",
		Help: "Number of completed OAuth logins",
	}))

	res.sessionsExpired = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessions_expired",
		Help: "Number of sessions ended by the inactivity timeout",
	}))

	res.botMessages = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_messages",
		Help: "Number of bot direct messages attempted",
	}, []string{"result"}))

	res.serviceStarted = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	}))

	res.scheduledTootCount = register(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduled_toot_count",
		Help: "Number of scheduled toots in the last fetched list",
	}))

	return &res
}

// register returns the already registered collector when an identical one exists,
// so that constructing metrics more than once in a process is harmless.
func register[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartMastodonRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.mastodonRequestsOut}
}

func (m *metrics) MastodonRequestFailed(label string) {
	m.mastodonFailures.WithLabelValues(label).Add(1)
}

func (m *metrics) TootScheduled() {
	m.tootsScheduled.Add(1)
}

func (m *metrics) TootDeleted() {
	m.tootsDeleted.Add(1)
}

func (m *metrics) TootReplaced() {
	m.tootsReplaced.Add(1)
}

func (m *metrics) MediaUploaded() {
	m.mediaUploaded.Add(1)
}

func (m *metrics) LoggedIn() {
	m.logins.Add(1)
}

func (m *metrics) SessionExpired() {
	m.sessionsExpired.Add(1)
}

func (m *metrics) BotMessageSent(success bool) {
	label := "ok"
	if !success {
		label = "failed"
	}
	m.botMessages.WithLabelValues(label).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) ScheduledTootCount(count int) {
	m.scheduledTootCount.Set(float64(count))
}
