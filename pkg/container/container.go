package container

import (
	"context"
	"fmt"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"gallery-backend/internal/config"
	"gallery-backend/internal/domains/author"
	authorRepo "gallery-backend/internal/domains/author/repository"
	"gallery-backend/internal/domains/picture"
	pictureRepo "gallery-backend/internal/domains/picture/repository"
	"gallery-backend/internal/gallery"
	"gallery-backend/internal/graph"
	"gallery-backend/internal/infrastructure/database"
	"gallery-backend/internal/infrastructure/kv"
	"gallery-backend/internal/seed"
	"gallery-backend/internal/shared"
	"gallery-backend/pkg/logger"
)

// Container wires the application from config down to HTTP handlers.
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Storage backends; only the one selected by STORAGE_DRIVER is set
	DB    *database.PostgresDB
	Redis *kv.RedisClient

	AuthorRepo  author.Repository
	PictureRepo picture.Repository

	GalleryService gallery.ServiceInterface

	Schema         *graphql.Schema
	GraphQLHandler *graph.Handler
}

// NewContainer loads configuration from the environment and builds the
// container.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return Build(cfg, logger.Init(cfg.App.Environment, cfg.App.LogLevel))
}

// Build assembles the container for cfg. On error, resources opened so far
// are released.
func Build(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: log}
	c.Logger.Info().
		Str("environment", cfg.App.Environment).
		Str("storage", cfg.Storage.Driver).
		Msg("[CONTAINER] Initializing...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	if cfg.Storage.Seed {
		if _, err := seed.NewSeeder(c.AuthorRepo, c.PictureRepo, c.Logger).Run(ctx); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to seed data: %w", err)
		}
	}

	c.initServices()

	if err := c.initHandlers(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	c.Logger.Info().Msg("[CONTAINER] Initialized successfully")
	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.Storage.Driver {
	case shared.DriverMemory:
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.PictureRepo = pictureRepo.NewMemoryRepository()

	case shared.DriverPostgres:
		db := database.NewPostgresDB(c.Config.DBConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
		c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
		c.PictureRepo = pictureRepo.NewPostgresRepository(db.Pool)

	case shared.DriverRedis:
		rc := kv.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		c.Redis = rc
		if err := rc.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}

		c.AuthorRepo = authorRepo.NewRedisRepository(rc.Client, c.Config.Redis.KeyPrefix)
		c.PictureRepo = pictureRepo.NewRedisRepository(rc.Client, c.Config.Redis.KeyPrefix)

	default:
		return fmt.Errorf("unsupported storage driver %q", c.Config.Storage.Driver)
	}

	c.Logger.Info().Str("driver", c.Config.Storage.Driver).Msg("[CONTAINER] Storage ready")
	return nil
}

func (c *Container) initServices() {
	c.GalleryService = gallery.NewService(c.AuthorRepo, c.PictureRepo, c.Logger)
}

func (c *Container) initHandlers() error {
	schema, err := graph.NewSchema(graph.NewResolver(c.GalleryService), c.Config.GraphQL.MaxDepth, c.Logger)
	if err != nil {
		return err
	}
	c.Schema = schema
	c.GraphQLHandler = graph.NewHandler(schema, c.Logger)
	return nil
}

// HealthCheck pings the active storage backend.
func (c *Container) HealthCheck(ctx context.Context) error {
	switch {
	case c.DB != nil:
		return c.DB.HealthCheck(ctx)
	case c.Redis != nil:
		return c.Redis.HealthCheck(ctx)
	default:
		return nil
	}
}

func (c *Container) Cleanup() {
	c.Logger.Info().Msg("[CONTAINER] Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("[CONTAINER] Failed to close database")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
	}
}
