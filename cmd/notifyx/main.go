package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/notifyx/notifyx/internal/api/handlers/notification"
	userhandler "github.com/notifyx/notifyx/internal/api/handlers/user"
	wshandler "github.com/notifyx/notifyx/internal/api/handlers/ws"
	"github.com/notifyx/notifyx/internal/api/router"
	"github.com/notifyx/notifyx/internal/api/server"
	"github.com/notifyx/notifyx/internal/config"
	"github.com/notifyx/notifyx/internal/dispatch"
	"github.com/notifyx/notifyx/internal/metrics"
	"github.com/notifyx/notifyx/internal/model"
	deliveryhandler "github.com/notifyx/notifyx/internal/rabbitmq/handlers/delivery"
	"github.com/notifyx/notifyx/internal/rabbitmq/queue"
	notifrepo "github.com/notifyx/notifyx/internal/repository/notification"
	userrepo "github.com/notifyx/notifyx/internal/repository/user"
	emailsender "github.com/notifyx/notifyx/internal/sender/email"
	inappsender "github.com/notifyx/notifyx/internal/sender/inapp"
	pushsender "github.com/notifyx/notifyx/internal/sender/push"
	smssender "github.com/notifyx/notifyx/internal/sender/sms"
	notifsvc "github.com/notifyx/notifyx/internal/service/notification"
	usersvc "github.com/notifyx/notifyx/internal/service/user"
	"github.com/notifyx/notifyx/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// separate client for pub/sub: the in_app channel and the websocket
	// relay speak raw go-redis
	pubsub := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	notificationRepo := notifrepo.NewRepository(db)
	userRepo := userrepo.NewRepository(db)

	userService := usersvc.NewService(userRepo, rdb)

	sink := metrics.NewSink(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job)

	senders := map[model.Channel]dispatch.Sender{
		model.ChannelEmail: emailsender.NewSender(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		),
		model.ChannelSMS: smssender.NewSender(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.From,
		),
		model.ChannelPush:  pushsender.NewSender(),
		model.ChannelInApp: inappsender.NewSender(pubsub),
	}

	engine := dispatch.NewEngine(
		notificationRepo,
		userService,
		senders,
		q,
		sink,
		dispatch.RetryPolicy{MaxRetries: cfg.Delivery.MaxRetries},
		cfg.Retry,
	)

	jobHandler := deliveryhandler.NewHandler(engine)
	pool := worker.NewPool(q, jobHandler)

	go pool.Run(ctx, cfg.Retry, cfg.Workers.Count)

	notificationService := notifsvc.NewService(notificationRepo, q, sink)

	notifHandler := notifhandler.NewHandler(notificationService, val, cfg)
	userHandler := userhandler.NewHandler(userService, val, cfg)
	wsHandler := wshandler.NewHandler(pubsub)

	r := router.New(notifHandler, userHandler, wsHandler, sink.Handler())
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := pubsub.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close pub/sub client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
