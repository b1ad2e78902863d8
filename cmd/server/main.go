package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ijinpress/intake/internal/intake"
	"github.com/ijinpress/intake/internal/notifier"
	"github.com/ijinpress/intake/internal/storage"
	"github.com/ijinpress/intake/pkg/config"
	"github.com/ijinpress/intake/pkg/email"
	"github.com/ijinpress/intake/pkg/httpserver"
	"github.com/ijinpress/intake/pkg/logger"
	mongodb "github.com/ijinpress/intake/pkg/mongo"
)

const serviceName = "intake"

type appConfig struct {
	Environment  string `env:"APP_ENV" envDefault:"development"`
	DatabaseName string `env:"MONGODB_DATABASE" envDefault:"ijin"`
	DevEmailDir  string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`
}

func main() {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		mongoCfg mongodb.Config
		emailCfg email.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&emailCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, serviceName))
	logger.SetAsDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := mongodb.NewWithDatabase(ctx, mongoCfg, appCfg.DatabaseName)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	contacts := storage.NewContactFormRepository(db)
	emailLogs := storage.NewEmailLogRepository(db)

	// The Postmark transport is validated at startup; without a server token
	// outbound mail lands on disk so the pipeline stays testable locally.
	var sender email.EmailSender
	if emailCfg.PostmarkServerToken != "" {
		sender = email.MustNewPostmarkClient(emailCfg)
		log.Info("email transport ready", slog.String("transport", "postmark"))
	} else {
		sender = email.NewDevSender(appCfg.DevEmailDir)
		log.Warn("postmark token not set, writing emails to disk",
			slog.String("dir", appCfg.DevEmailDir))
	}

	h := intake.NewHandler(
		notifier.New(sender, emailCfg, log),
		contacts,
		emailLogs,
		emailCfg.AdminEmail,
		log,
	)
	router := intake.NewRouter(h, log, mongodb.Healthcheck(db.Client()))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
