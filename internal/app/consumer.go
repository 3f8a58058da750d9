package app

import (
	"context"
	"fmt"

	"go-timeoff/internal/bootstrap"
	"go-timeoff/internal/config"
	"go-timeoff/internal/mailer"
	"go-timeoff/internal/messaging/kafka/consumer"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/organization"
	"go-timeoff/internal/shared/connection"
	"go-timeoff/internal/sheets"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RunConsumer drives the notification fan-out from the Kafka topic.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	var (
		rdb   *redis.Client
		dedup consumer.Deduplicator
	)
	if client, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 3); err == nil {
		rdb = client
		defer rdb.Close()
		dedup = consumer.NewRedisDeduplicator(rdb, consumer.DefaultDeliveryTTL)
	} else {
		log.Warn("redis unavailable, organization lookups go to the database and redeliveries are not deduplicated", zap.Error(err))
	}

	mail, err := mailer.New(
		mailer.NewSMTPDialer(cfg.Mail),
		cfg.Mail.From,
		cfg.Notify.Locale,
		cfg.Notify.ChannelTimeout,
		logger,
	)
	if err != nil {
		return err
	}

	organizationService := organization.NewService(organization.NewRepository(gormDB), rdb, logger)
	recipientService := notification.NewRecipientService(notification.NewRecipientRepository(gormDB), logger)

	fanout := notification.NewFanout(
		sheets.NewClient(cfg.Sheets, logger),
		mail,
		recipientService,
		organizationService,
		notification.FanoutConfig{
			DefaultSpreadsheetID: cfg.Sheets.DefaultSpreadsheetID,
			FallbackRecipients:   cfg.Notify.FallbackList(),
			ChannelTimeout:       cfg.Notify.ChannelTimeout,
		},
		logger,
	)

	reader := consumer.NewNotificationReader(cfg.Kafka)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeNotifications(ctx, reader, fanout, dedup, logger)
		close(done)
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("consumer shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}
