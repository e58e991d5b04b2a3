package container

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/client"
	"morinolab/site/internal/config"
	"morinolab/site/internal/domain"
	"morinolab/site/internal/locale"
	"morinolab/site/internal/scroll"
	"morinolab/site/internal/service"
	"morinolab/site/internal/storage"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Resolver *assets.Resolver
	Client   client.ContentClient
	Catalog  *client.Catalog
	Storage  storage.Storage
	Scroll   *scroll.Store
	Locale   *locale.Preference

	Site *service.Site

	httpSource *client.HTTPSource
}

// New creates a new container with all dependencies initialized. The
// viewport is whatever surface the caller renders into.
func New(ctx context.Context, cfg *config.Config, viewport scroll.Viewport) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	st, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	container.Storage = st

	resolver := assets.NewResolver(cfg.Site.BasePath, cfg.Site.IndexRoot, cfg.Site.ArticleRoot)
	container.Resolver = resolver

	var source client.Source
	if cfg.Site.BaseURL != "" {
		httpSource := client.NewHTTPSource(cfg.Site, resolver)
		container.httpSource = httpSource
		source = httpSource
		log.Infof("🌐 Loading content from %s%s", cfg.Site.BaseURL, resolver.BasePath())
	} else {
		source = client.NewDirSource(afero.NewOsFs(), cfg.Site.ContentsDir)
		log.Infof("📁 Loading content from %s", cfg.Site.ContentsDir)
	}

	contentClient := client.NewContentClient(source, resolver)
	container.Client = contentClient
	container.Catalog = client.NewCatalog(contentClient)

	container.Scroll = scroll.NewStore(ctx, st, viewport,
		scroll.WithRestoreDelay(time.Duration(cfg.Scroll.RestoreDelayMs)*time.Millisecond),
		scroll.WithStorageKey(cfg.Scroll.StorageKey),
	)

	fallback, ok := domain.ParseLocale(cfg.Locale.Default)
	if !ok {
		log.Warnf("⚠️ Unsupported default locale %q, using %s", cfg.Locale.Default, domain.DefaultLocale)
		fallback = domain.DefaultLocale
	}
	container.Locale = locale.NewPreference(st, cfg.Locale.StorageKey, fallback)
	container.Locale.Load(ctx)

	container.Site = service.NewSite(contentClient, container.Scroll, container.Locale)

	return container, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", "sqlite":
		st, err := storage.NewSQLiteStorage(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Infof("✅ Using sqlite storage at %s", cfg.Storage.SQLitePath)
		return st, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		return storage.NewRedisStorage(rdb, cfg.Storage.KeyPrefix), nil

	case "postgres":
		db, err := pgxpool.New(ctx,
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			return nil, err
		}
		st, err := storage.NewPostgresStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		return st, nil

	case "memory":
		log.Warn("⚠️ Using in-memory storage, scroll positions and locale will not survive a restart")
		return storage.NewMemoryStorage(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	if c.httpSource != nil {
		if err := c.httpSource.Close(); err != nil {
			log.Warnf("⚠️ Failed to close HTTP client: %v", err)
		}
	}
	if err := c.Storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	log.Debug("Container shut down successfully")
	return nil
}
