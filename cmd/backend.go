package cmd

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/chris-regnier/moodmemo/internal/config"
	"github.com/chris-regnier/moodmemo/internal/feed"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/redisconn"
	"github.com/chris-regnier/moodmemo/internal/storage"
	"github.com/chris-regnier/moodmemo/internal/storage/disk"
	"github.com/chris-regnier/moodmemo/internal/storage/file"
	"github.com/chris-regnier/moodmemo/internal/storage/memory"
	redisstore "github.com/chris-regnier/moodmemo/internal/storage/redis"
	"github.com/chris-regnier/moodmemo/internal/storage/sqlite"
)

var (
	// broker carries this process's own writes to in-process subscribers.
	broker      = feed.NewBroker(64)
	redisClient *goredis.Client
)

// openStore builds the configured backend and wraps it in a Store that
// publishes every write to the broker, and to Redis when the feed is on.
func openStore(cfg *config.Config, log logger.Logger) (*storage.Store, error) {
	var (
		b   storage.Backend
		err error
	)
	switch cfg.Storage {
	case "file":
		b, err = file.New(cfg.DataDir)
	case "sqlite":
		b, err = sqlite.New(cfg.DataDir)
	case "disk":
		b, err = disk.New(cfg.DataDir)
	case "redis":
		var client *goredis.Client
		if client, err = redisConn(cfg, log); err == nil {
			b = redisstore.New(client, cfg.Redis.Prefix)
		}
	case "memory":
		b = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s storage: %w", cfg.Storage, err)
	}

	pub := feed.Multi{broker}
	if cfg.Feed.Enabled {
		client, err := redisConn(cfg, log)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connecting change feed: %w", err)
		}
		pub = append(pub, feed.NewRedis(client, cfg.Redis.Channel, log))
	}

	log.Debug("storage opened",
		logger.String("backend", cfg.Storage),
		logger.String("key", cfg.StorageKey),
		logger.Bool("feed", cfg.Feed.Enabled))

	return storage.New(b,
		storage.WithKey(cfg.StorageKey),
		storage.WithLogger(log),
		storage.WithPublisher(pub),
	), nil
}

// redisConn returns the shared client, connecting on first use.
func redisConn(cfg *config.Config, log logger.Logger) (*goredis.Client, error) {
	if redisClient != nil {
		return redisClient, nil
	}
	client, err := redisconn.Connect(redisconn.Options{
		Addr:           cfg.Redis.Addr,
		Username:       cfg.Redis.Username,
		Password:       cfg.Redis.Password,
		DB:             cfg.Redis.DB,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	}, log)
	if err != nil {
		return nil, err
	}
	redisClient = client
	return client, nil
}

// changeFeed returns the subscriber for live updates: Redis pub/sub when the
// feed is enabled, otherwise this process's own broker.
func changeFeed() (feed.Subscriber, error) {
	if appConfig == nil || !appConfig.Feed.Enabled {
		return broker, nil
	}
	client, err := redisConn(appConfig, appLog)
	if err != nil {
		return nil, err
	}
	return feed.NewRedis(client, appConfig.Redis.Channel, appLog), nil
}

func closeAll() {
	if store != nil {
		if err := store.Close(); err != nil {
			appLog.Warn("closing storage", logger.Error(err))
		}
		store = nil
	}
	if redisClient != nil {
		redisClient.Close()
		redisClient = nil
	}
	_ = appLog.Sync()
}
