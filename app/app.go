package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/config"
	"trial-shop/controllers"
	"trial-shop/libs"
	"trial-shop/metrics"
	"trial-shop/middleware"
	"trial-shop/repositories"
	"trial-shop/routes"
	"trial-shop/services"
)

// App is a fully wired storefront.
type App struct {
	Router   *gin.Engine
	Checkout *services.CheckoutService
	Metrics  *metrics.Registry
	closers  []func()
}

// New wires every optional backend that cfg enables. Redis and the log sinks
// are optional: when one cannot be reached the app starts without it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Metrics: metrics.NewRegistry()}

	sessions := a.sessionRepository(ctx, cfg, logger)

	sinks := []services.ActionSink{services.NewZapSink(logger)}
	var actions controllers.ActionLister
	if cfg.DatabaseConfigured() {
		repo, err := a.actionRepository(ctx, cfg, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		sinks = append(sinks, repo)
		actions = repo
	}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink := libs.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		a.closers = append(a.closers, func() { _ = kafkaSink.Close() })
		sinks = append(sinks, kafkaSink)
		logger.Info("kafka action sink enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	if cfg.SMTPConfigured() {
		sinks = append(sinks, libs.NewPurchaseMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.NotifyEmail))
		logger.Info("purchase notifications enabled", zap.String("to", cfg.NotifyEmail))
	}

	images, err := ImageResolver(cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	catalog := services.NewCatalogService(repositories.NewCatalogRepository(cfg.CatalogPath, cfg.SpecsPath), images)
	actionLogger := services.NewActionLogger(logger, a.Metrics, cfg.SinkTimeout, sinks...)
	a.Checkout = services.NewCheckoutService(sessions, catalog, actionLogger, a.Metrics, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, routes.Options{
		Checkout:      a.Checkout,
		Actions:       actions,
		Metrics:       a.Metrics,
		Logger:        logger,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		SecureCookie:  cfg.CookieSecure,
		StaticDir:     cfg.StaticDir,
		AdminKeyHash:  cfg.AdminKeyHash,
	})
	a.Router = router
	return a, nil
}

func (a *App) sessionRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) repositories.SessionRepository {
	if cfg.RedisConfigured() {
		client, err := config.ConnectRedis(ctx, cfg, logger)
		if err == nil {
			a.closers = append(a.closers, func() { _ = client.Close() })
			return repositories.NewRedisSessionRepository(client, cfg.SessionTTL)
		}
		logger.Warn("running with in-memory sessions", zap.Error(err))
	}
	return repositories.NewMemorySessionRepository(cfg.SessionTTL)
}

func (a *App) actionRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories.ActionRepository, error) {
	if err := config.RunMigrations(cfg, logger); err != nil {
		return nil, err
	}
	pool, err := config.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pool.Close)
	return repositories.NewActionRepository(pool), nil
}

// ImageResolver returns the Cloudinary resolver when credentials are set and
// the static one otherwise.
func ImageResolver(cfg *config.Config, logger *zap.Logger) (services.ImageResolver, error) {
	static := libs.NewStaticImages("/static/images")
	if !cfg.CloudinaryConfigured() {
		return static, nil
	}
	cld, err := libs.NewCloudinaryImages(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySec, cfg.ImageFolder, static, logger)
	if err != nil {
		return nil, fmt.Errorf("image resolver: %w", err)
	}
	return cld, nil
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
