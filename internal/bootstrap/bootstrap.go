package bootstrap

import (
	"context"
	"fmt"

	"loyalty-server/internal/api"
	"loyalty-server/internal/authz"
	kafkaClient "loyalty-server/internal/clients/kafka"
	redisClient "loyalty-server/internal/clients/redis"
	"loyalty-server/internal/config"
	"loyalty-server/internal/events"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/ratelimit"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	loyaltyHandler "loyalty-server/internal/loyalty/handler"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	orderHandler "loyalty-server/internal/orders/handler"
	orderProcessor "loyalty-server/internal/orders/processor"
	profileHandler "loyalty-server/internal/profiles/handler"
	profileProcessor "loyalty-server/internal/profiles/processor"
	referralHandler "loyalty-server/internal/referral/handler"
	referralProcessor "loyalty-server/internal/referral/processor"
	rewardHandler "loyalty-server/internal/rewards/handler"
	rewardProcessor "loyalty-server/internal/rewards/processor"
	settingsHandler "loyalty-server/internal/settings/handler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store    store.Store
	Logger   *observability.Logger
	Settings *settings.Service
	Events   *events.Publisher
	Engine   *loyaltyProcessor.Engine

	// HTTP
	AuthMiddleware *authz.Middleware
	RateLimiter    *ratelimit.Service
	Handlers       api.Handlers

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps, err := InitializeCore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize processors
	dataStore := &deps.Store
	rewardProc := rewardProcessor.New(dataStore, deps.Events, logger)
	referralProc := referralProcessor.New(dataStore, deps.Engine, logger)
	profileProc := profileProcessor.New(dataStore, &referralProc, deps.Settings, deps.Events, logger)
	orderProc := orderProcessor.New(dataStore, deps.Engine, &rewardProc, deps.Settings, deps.Events, logger)

	// Initialize auth
	verifier := authz.NewVerifier(cfg.Auth, logger)
	deps.AuthMiddleware = authz.NewMiddleware(verifier, dataStore, logger)

	// Rate limiting needs Redis; without it every request is allowed
	var window ratelimit.Window
	if deps.Redis.IsEnabled() {
		window = deps.Redis
	}
	deps.RateLimiter = ratelimit.NewService(window, cfg.RateLimit.RequestsPerMinute, logger)

	// Initialize handlers
	deps.Handlers = api.Handlers{
		Profiles:  profileHandler.New(&profileProc, logger),
		Loyalty:   loyaltyHandler.New(deps.Engine, logger),
		Referrals: referralHandler.New(&referralProc, logger, cfg.Server.WebAppURI),
		Rewards:   rewardHandler.New(&rewardProc, logger),
		Orders:    orderHandler.New(&orderProc, logger),
		Settings:  settingsHandler.New(deps.Settings, logger),
	}

	return deps, nil
}

// InitializeCore connects the store, cache and event stream and builds the
// loyalty engine. The worker process needs nothing more.
func InitializeCore(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize the settings cache. A disabled Redis leaves the cache unset
	// so the service reads straight from the store.
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "redis unavailable, settings cache disabled", err)
		deps.Redis = nil
	}
	var cache settings.Cache
	if deps.Redis.IsEnabled() {
		cache = deps.Redis
	}
	deps.Settings = settings.NewService(&deps.Store, cache, cfg.Loyalty.SettingsCacheTTL, logger)

	// Initialize the event stream
	var producer events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Info(ctx, "no Kafka brokers configured, domain events disabled")
	}
	deps.Events = events.NewPublisher(producer, logger)

	deps.Engine = loyaltyProcessor.New(&deps.Store, deps.Settings, deps.Events, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close database", err)
	}
}
