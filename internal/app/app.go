package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.etcd.io/bbolt"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/config"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/notifier"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/repository"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/scheduler"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service"
)

type App struct {
	cfg *config.Config
	log logger.Logger
	db  *bbolt.DB

	Events    *service.EventService
	Sessions  *service.SessionService
	Growth    *service.GrowthService
	Notifier  *notifier.Notifier
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MarchaBrasil",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	if dir := filepath.Dir(a.cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := bbolt.Open(a.cfg.Storage.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.db = db

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store opened",
		logger.String("path", a.cfg.Storage.Path),
		logger.String("bucket", a.cfg.Storage.Bucket),
	)
	return nil
}

func (a *App) initServices() error {
	kv, err := repository.NewBoltKV(a.db, a.cfg.Storage.Bucket, a.cfg.Storage.MaxValueBytes, a.log)
	if err != nil {
		return fmt.Errorf("init kv bucket: %w", err)
	}

	eventRepo := repository.NewEventRepo(kv, a.cfg.Storage.EventsKey, a.log)
	thumbRepo := repository.NewThumbnailRepo(kv, a.cfg.Storage.ThumbnailsKey, a.log)
	verifyRepo := repository.NewVerificationRepo(kv, a.cfg.Storage.VerificationPrefix, a.log)
	sessionRepo := repository.NewSessionRepo(kv, a.cfg.Storage.SessionKey, a.log)

	a.Notifier = notifier.New(a.log)
	a.Sessions = service.NewSessionService(sessionRepo, a.log)
	a.Events = service.NewEventService(eventRepo, thumbRepo, verifyRepo, a.Sessions, a.Notifier, a.log)
	a.Growth = service.NewGrowthService(a.Events, service.GrowthParams{
		QuietPeriod:    a.cfg.Growth.QuietPeriod,
		PercentPerHour: a.cfg.Growth.PercentPerHour,
		MaxPercent:     a.cfg.Growth.MaxPercent,
		WindowHours:    a.cfg.Growth.WindowHours,
	}, a.log)

	a.scheduler = scheduler.New(
		a.Growth,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	unsubscribe := a.Notifier.Subscribe(func() {
		a.log.Debug("store changed")
	})
	defer unsubscribe()

	// One sweep up front so state persisted before a restart catches
	// up without waiting a full interval.
	a.Growth.ProcessAll(ctx)

	a.scheduler.Start(ctx)

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return nil
}
