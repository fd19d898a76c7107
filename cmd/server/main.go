// Command server runs the scaffold's example API. It is the template's
// reference wiring: config file in, logger first, then storage, then the
// HTTP listener.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/cstortz/developer-artifacts/internal/config"
	"github.com/cstortz/developer-artifacts/internal/database"
	"github.com/cstortz/developer-artifacts/internal/metrics"
	"github.com/cstortz/developer-artifacts/internal/server"
	"github.com/cstortz/developer-artifacts/internal/session"
	"github.com/cstortz/developer-artifacts/internal/token"
	"github.com/cstortz/developer-artifacts/internal/user"
	"github.com/cstortz/developer-artifacts/pkg/logger"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		// The logger is not configured yet; stderr is all we have.
		os.Stderr.WriteString("loading config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.InitLogger(cfg.LOG.Build())
	log := logger.Named("main")
	log.Info("%s %s starting (env=%s)", cfg.APP.Name, version, cfg.APP.Env)

	if cfg.AUTH.SecretKey == "" {
		log.Fatal("auth.secret_key is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Without a DSN the scaffold runs fully in memory, which is the mode the
	// getting-started guide uses.
	var users user.Store = user.NewMemoryStore()
	if cfg.DB.DSN != "" {
		db, err := database.Open(ctx, cfg.DB)
		if err != nil {
			log.Fatal("connecting to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db, cfg.APP.Name); err != nil {
			log.Fatal("running migrations: %v", err)
		}
		users = user.NewPostgresStore(db)
		log.Info("using postgres user store")
	} else {
		log.Warn("db.dsn not set, using in-memory user store")
	}

	var sessions session.Store = session.NewMemoryStore()
	if len(cfg.REDIS.Address) > 0 {
		redisStore, err := session.NewRedisStore(ctx, cfg.REDIS)
		if err != nil {
			log.Fatal("connecting to redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info("using redis session store")
	}

	tokens := token.NewManager(
		cfg.AUTH.SecretKey,
		cfg.AUTH.AccessTokenExpire.Std(),
		cfg.AUTH.RefreshTokenExpire.Std(),
	)

	var m *metrics.Metrics
	if cfg.METRICS.Enabled {
		m = metrics.New("devartifacts")
	}

	srv := server.New(cfg, users, sessions, tokens, m, version)
	if err := srv.Run(ctx); err != nil {
		log.Fatal("server error: %v", err)
	}

	log.Info("stopped")
}
