// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/application/prep"
	"github.com/platewise/v1/internal/application/shopping"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/dietary"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/server"
	gormRepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	DomainModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides database connections
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := sqlite.SetupDatabase(cfg.Database.Path, sqlite.ParseLogLevel(cfg.Database.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == "" || cfg.Database.Path == ":memory:"),
		)

		return db, nil
	},
)

// CacheModule provides caching
var CacheModule = fx.Provide(
	func() outbound.CacheRepository {
		return memory.NewCacheRepository()
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewPlanRepository,
)

// DomainModule provides domain-level collaborators
var DomainModule = fx.Provide(
	func() *catalog.Catalog {
		return catalog.DefaultCatalog()
	},
	func() *dietary.Filter {
		return dietary.NewFilter(dietary.DefaultRules())
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		planRepo outbound.PlanRepository,
		cache outbound.CacheRepository,
		cat *catalog.Catalog,
		filter *dietary.Filter,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlannerService {
		return planner.NewPlannerService(planRepo, cache, cat, filter, cfg.Planner, log)
	},

	func(
		planRepo outbound.PlanRepository,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.ShoppingListService {
		return shopping.NewShoppingService(planRepo, cache, cfg.Planner, log)
	},

	func(
		planRepo outbound.PlanRepository,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.MealPrepService {
		return prep.NewMealPrepService(planRepo, cache, cfg.Planner, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PlateWise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PlateWise application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
