package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"toot_scheduler/dal"
	"toot_scheduler/logic"
	"toot_scheduler/server"
	"toot_scheduler/shared"
	"toot_scheduler/texts"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			shared.NewSystemClock,
			shared.NewUserAgent,
			logic.NewMetrics,
			logic.NewNavigator,
			logic.NewPrompter,
			logic.NewSessionStore,
			logic.NewMastodonApi,
			logic.NewNotifier,
			logic.NewScheduledToots,
			logic.NewFeatureNotices,
			logic.NewSessionTimeout,
			logic.NewBlockedInstances,
			logic.NewLoginFlow,
			logic.NewProfiler,
			texts.NewTexts,
			dal.NewRepo,
			asHandlerGroupDef(server.NewSessionHandlerGroup),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewUiHandlerGroup),
			asHandlerGroupDef(server.NewWebHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			restoreSession,
			registerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

// restoreSession picks up the session left in storage by the previous run.
func restoreSession(sessions logic.ISessionStore, timeout logic.ISessionTimeout) {
	if err := sessions.Restore(); err != nil {
		logger.Errorf("Failed to restore session: %v", err)
		return
	}
	if sessions.IsAuthenticated() {
		logger.Infof("Restored session with %s", sessions.Session().InstanceUrl)
		timeout.Start()
	}
}

func registerHooks(
	lc fx.Lifecycle,
	metrics logic.IMetrics,
	timeout logic.ISessionTimeout,
	notifier logic.INotifier,
	profiler logic.IProfiler,
) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				profiler.Start()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				profiler.Stop()
				timeout.Teardown()
				notifier.Wait()
				return nil
			},
		},
	)
}
