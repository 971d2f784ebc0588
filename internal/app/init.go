package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	server "github.com/TATR0/bot-service/internal/adapters/primary/http"
	catalogController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/catalog"
	healthcheckController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/healthcheck"
	metricsController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/metrics"
	telegramController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/telegram"
	webappController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/webapp"
	"github.com/TATR0/bot-service/internal/adapters/primary/http/middlewares"
	alerterAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/kafka"
	"github.com/TATR0/bot-service/internal/adapters/secondary/storage/inmemory"
	"github.com/TATR0/bot-service/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/TATR0/bot-service/internal/adapters/secondary/storage/s3"
	tgAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/telegram"
	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/TATR0/bot-service/internal/ports/cache"
	"github.com/TATR0/bot-service/internal/ports/repository"
	"github.com/TATR0/bot-service/internal/ports/service"
	"github.com/TATR0/bot-service/internal/ports/storage"
	adminRepo "github.com/TATR0/bot-service/internal/repository/admin"
	requestRepo "github.com/TATR0/bot-service/internal/repository/request"
	serviceRepo "github.com/TATR0/bot-service/internal/repository/service"
	alerterService "github.com/TATR0/bot-service/internal/services/alerter"
	jobScheduler "github.com/TATR0/bot-service/internal/services/jobs"
	telegramService "github.com/TATR0/bot-service/internal/services/telegram"
	"github.com/TATR0/bot-service/internal/usecases/autoservice"
	"github.com/TATR0/bot-service/internal/usecases/catalog"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	KafkaProducer   *kafkaAdapter.Producer
	Cache           cache.Cache
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	repos := a.initRepositories(persistenceLayer)

	tgClient := tgAdapter.NewClientWithURL(a.Cfg.Telegram.APIURL, a.Cfg.Telegram.BotToken, a.Log)
	botUsername, err := a.resolveBotUsername(ctx, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bot username: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	external := a.initExternalServices(ctx)

	autoserviceUseCase := autoservice.New(
		repos.Service,
		repos.Admin,
		repos.Request,
		tgClient,
		tgAdapter.NewDirectory(tgClient),
		inmemory.NewSessionStore(),
		external.RequestIndex,
		a.Cfg.WebApp.BaseURL,
		botUsername,
		a.Log,
	)
	autoserviceUseCase.Metrics = appMetrics
	// интерфейсные поля присваиваем только непустыми, иначе nil-указатель внутри интерфейса
	if external.Fallback != nil {
		autoserviceUseCase.Fallback = external.Fallback
	}
	if external.Producer != nil {
		autoserviceUseCase.Events = external.Producer
	}

	tgService := telegramService.New(autoserviceUseCase, tgClient, a.Log)

	if err := a.registerBotCommands(ctx, tgClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	healthDeps := map[string]healthcheckController.Pinger{"postgres": persistenceLayer}
	if external.Redis != nil {
		healthDeps["redis"] = external.Redis
	}

	httpServer := a.initHTTP(
		catalog.New(repos.Service, a.Log),
		tgService,
		external.S3,
		healthDeps,
		registry,
		appMetrics,
	)

	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	scheduler := a.initJobScheduler(external, appMetrics)

	var cacheClient cache.Cache
	if external.Redis != nil {
		cacheClient = external.Redis
	}

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		KafkaProducer:   external.Producer,
		Cache:           cacheClient,
		JobScheduler:    scheduler,
	}, nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	Service repository.IServiceRepo
	Admin   repository.IAdminRepo
	Request repository.IRequestRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(persistenceLayer *pg.DB) *repositories {
	return &repositories{
		Service: serviceRepo.New(persistenceLayer, a.Log),
		Admin:   adminRepo.New(persistenceLayer, a.Log),
		Request: requestRepo.New(persistenceLayer, a.Log),
	}
}

// externalServices содержит внешние сервисы (опциональные, кроме индекса заявок)
type externalServices struct {
	Fallback     service.IAlerterService
	Redis        *redisAdapter.Client
	RequestIndex cache.IRequestIndex
	MemoryIndex  *inmemory.RequestIndex // только без Redis, размер публикует джоба
	S3           storage.IS3Client
	Producer     *kafkaAdapter.Producer
}

// initExternalServices инициализирует общий чат, индекс заявок, S3 и Kafka.
// Ошибки подключения к необязательным сервисам не фатальны
func (a *App) initExternalServices(ctx context.Context) *externalServices {
	services := &externalServices{}
	indexCfg := a.Cfg.RequestIndex

	// Общий чат - опциональный
	services.Fallback = alerterService.New(alerterAdapter.NewClient(a.Cfg.Fallback, a.Cfg.Telegram, a.Log))
	if services.Fallback == nil {
		a.Log.Warn("fallback chat is not configured, requests without admins stay unrouted")
	}

	// Redis - опциональный, иначе индекс в памяти
	if a.Cfg.Redis != nil {
		rdb, err := a.Cfg.Redis.NewConnection(ctx)
		if err != nil {
			a.Log.Warn("failed to init redis, falling back to in-memory request index", "error", err)
		} else {
			services.Redis = redisAdapter.NewClient(rdb)
			services.RequestIndex = redisAdapter.NewRequestIndex(services.Redis, a.Cfg.Redis.KeyPrefix, indexCfg.TTL, a.Log)
			a.Log.Info("redis request index connected successfully")
		}
	}
	if services.RequestIndex == nil {
		services.MemoryIndex = inmemory.NewRequestIndex(indexCfg.Capacity, indexCfg.TTL)
		services.RequestIndex = services.MemoryIndex
	}

	// S3 - опциональный, иначе веб-форма с диска
	if a.Cfg.S3 != nil {
		minioClient, err := a.Cfg.S3.NewClient(ctx)
		if err != nil {
			a.Log.Warn("failed to init s3, serving web form from disk", "error", err)
		} else {
			services.S3 = s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("s3 connected successfully", "bucket", a.Cfg.S3.Bucket)
		}
	}

	// Kafka - опциональный
	if a.Cfg.Kafka != nil {
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer, request events disabled", "error", err)
		} else {
			services.Producer = producer
		}
	}

	return services
}

// resolveBotUsername имя бота из конфига, иначе через getMe
func (a *App) resolveBotUsername(ctx context.Context, client *tgAdapter.Client) (string, error) {
	if username := strings.TrimPrefix(a.Cfg.Telegram.BotUsername, "@"); username != "" {
		return username, nil
	}

	info, err := client.GetMe(ctx)
	if err != nil {
		return "", err
	}

	a.Log.Info("bot username resolved via getMe", "username", info.Username)
	return info.Username, nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	catalogService *catalog.Service,
	tgService *telegramService.Service,
	s3Client storage.IS3Client,
	healthDeps map[string]healthcheckController.Pinger,
	registry *prometheus.Registry,
	appMetrics *metrics.Metrics,
) *http.Server {
	rateLimiter := middlewares.NewRateLimiter(a.Cfg.Server.RateLimitRPS, a.Cfg.Server.RateLimitBurst)

	controllers := []server.Controller{
		healthcheckController.New(healthDeps, a.Log),
		metricsController.New(registry),
		webappController.New(s3Client, a.Cfg.WebApp, a.Log),
		catalogController.New(catalogService, a.Log, rateLimiter.Handler()),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
	}

	middlewareChain := []gin.HandlerFunc{appMetrics.HTTPMiddleware()}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, middlewareChain, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	tgClient *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		webhookURL := strings.TrimSuffix(a.Cfg.Telegram.WebhookURL, "/") + "/webhook"
		if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
			return nil, fmt.Errorf("failed to set webhook: %w", err)
		}
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")
	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, tgService.HandleUpdate, a.Log), nil
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(external *externalServices, appMetrics *metrics.Metrics) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, external.Fallback)

	if external.MemoryIndex != nil {
		scheduler.Register(jobScheduler.NewRequestIndexStats(external.MemoryIndex, appMetrics, a.Cfg.RequestIndex.ReportInterval, a.Log))
		a.Log.Info("request index stats job registered")
	}

	return scheduler
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "register_service", Description: "Зарегистрировать автосервис"},
	}

	return client.SetMyCommands(ctx, commands)
}

// initPostgres инициализирует подключение к PostgreSQL и запускает миграции
func (a *App) initPostgres(ctx context.Context) (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(ctx, db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
