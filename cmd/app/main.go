package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workshop/cmd"
	httpin "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres/serviceorderrepo"
	"workshop/internal/adapters/out/rabbitmq"
	"workshop/internal/core/ports"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)

	columns, err := cmd.LoadColumns(configs.PipelineColumnsFile)
	if err != nil {
		log.Fatalf("Error loading pipeline columns: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, columns, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = gormDB.AutoMigrate(&serviceorderrepo.ServiceOrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.StatusChangePublisher, func()) {
	if configs.AMQPURL == "" {
		logger.Info("AMQP_URL is not set, status change events are not published")
		return rabbitmq.NopPublisher{}, func() {}
	}

	conn, err := rabbitmq.Connect(configs.AMQPURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return rabbitmq.NewStatusChangePublisher(conn), func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("Failed to close RabbitMQ connection", "error", closeErr)
		}
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpin.NewEcho(ctx, app.CreateHTTPServer(), logger)
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
