package main

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/smsbroadcast/internal/api"
	v1 "github.com/Behyna/sms-services/smsbroadcast/internal/api/v1"
	"github.com/Behyna/sms-services/smsbroadcast/internal/api/validator"
	"github.com/Behyna/sms-services/smsbroadcast/internal/config"
	"github.com/Behyna/sms-services/smsbroadcast/internal/metrics"
	"github.com/Behyna/sms-services/smsbroadcast/internal/middleware"
	"github.com/Behyna/sms-services/smsbroadcast/internal/publishers"
	"github.com/Behyna/sms-services/smsbroadcast/internal/repository"
	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/httpclient"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/mq"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/mysql"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewRegistry,
			NewMetrics,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewDeliveryRepository,
			repository.NewTransactionManager,
			NewSMSBroadcastClient,
			NewEventDispatcher,
			service.NewChannelService,

			validator.NewXValidator,
			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(registerDBStats, startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, registry *prometheus.Registry, cfg *config.Config,
	rabbit *mq.RabbitMQ, publisher mq.Publisher, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, registry)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{cfg.RabbitMQ.EventsQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", cfg.RabbitMQ.EventsQueue))

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server exited", zap.Error(err))
				}
			}()

			logger.Info("api started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping api")
			return errors.Join(
				app.ShutdownWithContext(ctx),
				publisher.Close(),
				rabbit.Close(),
			)
		},
	})
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// registerDBStats exports the connection pool stats of the delivery log.
func registerDBStats(reg *prometheus.Registry, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return reg.Register(collectors.NewDBStatsCollector(sqlDB, "smsbroadcast"))
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func NewFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	return app
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	db, err := mysql.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err = repository.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func NewSMSBroadcastClient(cfg *config.Config) smsbroadcast.Client {
	client := httpclient.NewHTTPClient(cfg.SMSBroadcast.Timeout)
	return smsbroadcast.NewClient(cfg.SMSBroadcast, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ.Connection(), logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewEventDispatcher(cfg *config.Config, publisher mq.Publisher, logger *zap.Logger) service.EventDispatcher {
	return publishers.NewEventPublisher(publisher, cfg.RabbitMQ.EventsQueue, logger)
}
