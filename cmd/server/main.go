package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"pricingdesk.app/server/common/id"
	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/common/otel"
	"pricingdesk.app/server/core/config"
	"pricingdesk.app/server/core/db"
	"pricingdesk.app/server/internal/auth"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/http/middleware"
	httprouter "pricingdesk.app/server/internal/http/router"
	"pricingdesk.app/server/internal/notify"
	"pricingdesk.app/server/internal/queue"
	"pricingdesk.app/server/internal/refdata"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "pricing desk starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(id.NodeServer); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Mail.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Mail.Stream)

	outbox := queue.NewRedisProducer(redisClient, cfg.Mail.Stream, nil)
	defer outbox.Close()

	refData, err := refdata.Load(cfg.ReferenceData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reference data", "error", err, "path", cfg.ReferenceData)
		os.Exit(1)
	}

	attachments, err := store.NewLocalAttachmentStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		slog.ErrorContext(ctx, "failed to prepare upload directory", "error", err, "dir", cfg.Uploads.Dir)
		os.Exit(1)
	}

	composer, err := email.NewComposer(cfg.FrontendURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load email templates", "error", err)
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()
	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure tokens", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())

	services := service.NewServices(service.ServicesConfig{
		Stores:      stores,
		Attachments: attachments,
		TxRunner:    service.NewTxRunner(database),
		Notifier:    notify.NewDispatcher(stores.Notifications(), outbox, composer, clock),
		Clock:       clock,
		OrgDomain:   cfg.OrgDomain,
		Codes:       auth.NewRedisCodeStore(redisClient),
		Tokens:      tokens,
		Directory:   refData,
		Composer:    composer,
		Outbox:      outbox,
		CodeTTL:     cfg.Auth.CodeTTL,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, httprouter.RouterConfig{
		RefData:        refData,
		Attachments:    attachments,
		UploadMaxBytes: cfg.Uploads.MaxBytes,
		CodesPerMinute: cfg.Auth.CodesPerMinute,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, routes httprouter.RouterConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	httprouter.SetupRoutes(router, services, routes)

	return router
}

const banner = `
 ___     _    _             ___         _
| _ \_ _(_)__(_)_ _  __ _  |   \ ___ __| |__
|  _/ '_| / _| | ' \/ _' | | |) / -_|_-< / /
|_| |_| |_\__|_|_||_\__, | |___/\___/__/_\_\
                    |___/
`
