package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"MarketBrief/internal/config"
	"MarketBrief/internal/domain"
	"MarketBrief/internal/infrastructure/email"
	"MarketBrief/internal/infrastructure/feed"
	"MarketBrief/internal/infrastructure/render"
	"MarketBrief/internal/infrastructure/scheduler"
	"MarketBrief/internal/infrastructure/social"
	"MarketBrief/internal/infrastructure/telegram"
	"MarketBrief/internal/logging"
	"MarketBrief/internal/ports"
	"MarketBrief/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	notifier ports.Notifier
	mailer   ports.Mailer
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var tweetSource ports.TweetSource
	if cfg.X.Enabled && cfg.X.BearerToken != "" {
		tweetSource = social.NewClient(cfg.X.BearerToken, cfg.X.MaxTweetsPerHandle)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Feeds:       feed.NewRSSSource(nil),
		Tweets:      tweetSource,
		FeedURLs:    cfg.Feeds,
		Handles:     cfg.X.Handles,
		Weights:     cfg.Weights,
		Lookback:    time.Duration(cfg.LookbackHours * float64(time.Hour)),
		MinTopScore: cfg.MinTopScore,
		SectionCap:  cfg.MaxItemsPerSection,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	app := &Application{
		cfg:      cfg,
		logger:   baseLogger.With("component", "app"),
		pipeline: pipeline,
	}

	if tg := cfg.Notifications.Telegram; tg.BotToken != "" && tg.ChatID != "" {
		app.notifier = telegram.NewNotifier(tg.BotToken, tg.ChatID)
	}
	if cfg.Email.Enabled {
		app.mailer = email.NewSender(cfg.Email)
	}

	return app
}

// Run executes a single digest build, or keeps running on the configured
// cron schedule when one is set.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	if a.cfg.Scheduler.CronExpression == "" {
		return a.buildOnce(ctx, time.Now().In(a.cfg.Output.Location()))
	}

	driver := scheduler.NewCronScheduler(a.cfg.Scheduler.CronExpression, a.cfg.Scheduler.Location())
	sched := usecase.NewScheduler(driver, func(jobCtx context.Context, trigger time.Time) {
		if err := a.buildOnce(jobCtx, trigger.In(a.cfg.Output.Location())); err != nil {
			a.logger.Error("digest run failed", "error", err)
		}
	})

	if err := sched.Start(ctx); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ctx.Done():
	case <-stop:
	}

	return sched.Stop(context.Background())
}

// buildOnce runs the pipeline and fans the document out to every configured
// output. Delivery failures are logged; the run still counts as long as the
// document itself was built and written.
func (a *Application) buildOnce(ctx context.Context, now time.Time) error {
	doc, err := a.pipeline.Run(ctx, now)
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}

	markdown := render.Markdown(doc)
	page := render.HTML(doc)

	if err := a.writeOutputs(doc, markdown, page); err != nil {
		return err
	}

	if a.mailer != nil {
		subject := fmt.Sprintf("%s — %s", doc.Title, now.Format("02 Jan 2006"))
		if err := a.mailer.Send(ctx, subject, page, markdown); err != nil {
			a.logger.Warn("email delivery failed", "error", err)
		}
	}

	if a.notifier != nil {
		if err := a.notifier.PublishDigest(ctx, markdown); err != nil {
			a.logger.Warn("telegram delivery failed", "error", err)
		}
	}

	return nil
}

func (a *Application) writeOutputs(doc domain.Document, markdown, page string) error {
	out := a.cfg.Output
	if !out.Markdown() && !out.HTML() {
		return nil
	}

	if err := os.MkdirAll(out.Directory, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("%s_%s", out.FilenamePrefix, doc.GeneratedAt.Format("2006-01-02"))

	if out.Markdown() {
		path := filepath.Join(out.Directory, base+".md")
		if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		a.logger.Info("digest written", "path", path)
	}

	if out.HTML() {
		path := filepath.Join(out.Directory, base+".html")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		a.logger.Info("digest written", "path", path)
	}

	return nil
}
