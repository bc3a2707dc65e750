package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jswmusik/youthclub/internal/app"
	"github.com/jswmusik/youthclub/internal/config"
	"github.com/jswmusik/youthclub/internal/controller"
	"github.com/jswmusik/youthclub/internal/repository"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting youth club hours bot",
		zap.Int("admins", len(cfg.AdminIDs)),
		zap.Duration("audit_interval", cfg.AuditInterval))

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	clubRepo := repository.NewClubRepository(pool, logger)
	windowRepo := repository.NewOpeningWindowRepository(pool, logger)

	clubService := service.NewClubService(clubRepo, logger)
	hoursService := service.NewHoursService(clubRepo, windowRepo, logger)

	scheduler := app.NewScheduler(hoursService, cfg.AuditInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, clubService, hoursService, cfg.IsAdmin, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// меню команд не критично для работы бота
		logger.Warn("Continuing without command menu", zap.Error(err))
	}

	return botController.Start(ctx)
}
