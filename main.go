package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"apicatalogo/internal/config"
	"apicatalogo/internal/database"
	"apicatalogo/internal/server"
	"apicatalogo/internal/services"
	"apicatalogo/pkg/logger"
	"apicatalogo/pkg/rabbitmq"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLog, closeLog, err := logger.NewLogger(logger.Config{
		ServiceName: "apicatalogo",
		IsProd:      cfg.IsProduction(),
		FilePath:    cfg.LogFile,
		FileLevel:   cfg.LogFileLevel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closeLog()
	defer zapLog.Sync()

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, cfg.DBLogLevel)
	if err != nil {
		zapLog.Fatal("Failed to open database", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			zapLog.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Events are optional; without a broker URL nothing is published.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, zapLog)
		if err != nil {
			zapLog.Fatal("Failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.Consume("apicatalogo-audit", auditEvent(zapLog)); err != nil {
			zapLog.Error("Failed to start RabbitMQ consumer", zap.Error(err))
		}
	}

	app := server.NewApp(server.Deps{
		DB:        db,
		Log:       zapLog,
		Publisher: publisher,
		JWTSecret: cfg.JWTSecret,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zapLog.Info("Starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			zapLog.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zapLog.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zapLog.Error("Error during Fiber shutdown", zap.Error(err))
	}
	zapLog.Info("Server gracefully stopped")
}

// auditEvent logs every catalog event coming back from the broker.
func auditEvent(log *zap.Logger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		event, err := services.DecodeCatalogEvent(msg.Body)
		if err != nil {
			return err
		}
		log.Info("catalog event",
			zap.String("type", event.Type),
			zap.String("entity", event.Entity),
			zap.Uint("id", event.ID),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}
