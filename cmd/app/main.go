package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "foodorder",
		Usage: "order lifecycle service of the food delivery platform",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP API and background jobs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "apply schema migrations before serving",
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply schema migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, zapLogger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	if c.Bool("migrate") {
		if err = postgres.Migrate(db, zapLogger); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, err := cmd.NewCompositionRoot(ctx, cfg, db, zapLogger)
	if err != nil {
		return err
	}
	defer root.Close()

	router, err := root.CreateRouter()
	if err != nil {
		return err
	}
	router.Logger.SetLevel(log.WARN)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	server := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		zapLogger.Info("Received shutdown signal, gracefully shutting down")
	case err = <-serverErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	zapLogger.Info("HTTP server stopped gracefully")
	return nil
}

func migrate(_ *cli.Context) error {
	_, zapLogger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	return postgres.Migrate(db, zapLogger)
}

func bootstrap() (cmd.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return cmd.Config{}, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return cmd.Config{}, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	return cfg, zapLogger, db, nil
}
