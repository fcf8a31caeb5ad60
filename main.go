package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/di"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/gateway"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/config"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/database"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/kafka"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/redis"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("starting reservation service",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}); err != nil {
		log.Fatal("failed to init telemetry", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, &database.Config{
		DSN:             cfg.Database.DSN(),
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		EnableTracing:   cfg.OTel.Enabled,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redis.NewClient(ctx, &redis.Config{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Confirmation notices go to Kafka when available; otherwise they are
	// logged, which satisfies the log-only delivery contract.
	var notifier service.Notifier = service.NewLogNotifier()
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
		})
		if err != nil {
			log.Warn("kafka unreachable, falling back to log notifier", zap.Error(err))
		} else {
			defer producer.Close()
			notifier = service.NewKafkaNotifier(producer, cfg.Kafka.Topic)
			log.Info("kafka notifier enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
		}
	}

	var checkout gateway.CheckoutGateway
	if cfg.Stripe.SecretKey != "" {
		checkout, err = gateway.NewStripeGateway(&gateway.StripeGatewayConfig{
			SecretKey:     cfg.Stripe.SecretKey,
			PublicBaseURL: cfg.Payment.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("failed to init stripe gateway", zap.Error(err))
		}
	} else {
		log.Warn("no stripe key configured, using mock checkout gateway")
		checkout = gateway.NewMockGateway(cfg.Payment.PublicBaseURL)
	}

	container := di.New(&di.Config{
		Pool:        db.Pool,
		Gateway:     checkout,
		Notifier:    notifier,
		JWTSecret:   cfg.JWT.Secret,
		HireDeposit: cfg.Payment.HireDeposit,
		Currency:    cfg.Payment.Currency,
		DB:          db,
		Redis:       rdb,
		RedisClient: rdb,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.OTel.Enabled {
		r.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}
	container.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("telemetry shutdown failed", zap.Error(err))
	}

	log.Info("stopped")
}
