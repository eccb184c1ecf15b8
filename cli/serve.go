package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rehab-roi/config"
	httpLayer "rehab-roi/http"
	"rehab-roi/repository"
	"rehab-roi/service"
)

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger(), nil
}

func (cli *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  cli.runServe,
	}
}

func (cli *CLI) runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	cache, closeCache, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer closeCache()

	projects, closeProjects, err := buildProjects(ctx, cfg.Projects)
	if err != nil {
		return err
	}
	defer closeProjects()

	loanService := service.NewLoanService(cache)
	roiService := service.NewROIService(cache, projects)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Logger:         logger,
		Engine:         roiService,
		Loans:          httpLayer.NewLoanHandler(loanService),
		RateLimiter:    rateLimiter,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	logger.Info().
		Str("cache", cfg.Cache.Driver).
		Str("projects", cfg.Projects.Driver).
		Int("rate_limit", cfg.RateLimit.Capacity).
		Dur("rate_window", cfg.RateLimit.Window).
		Msg("configuration loaded")

	server := httpLayer.NewServer(httpLayer.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router, logger)

	return server.Run(ctx)
}

func buildCache(ctx context.Context, cfg config.CacheConfig) (repository.CacheRepository, func(), error) {
	if cfg.Driver != "redis" {
		return repository.NewMemoryCache(cfg.TTL), func() {}, nil
	}
	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
	if err := cache.Ping(ctx); err != nil {
		cache.Close()
		return nil, nil, err
	}
	return cache, func() { cache.Close() }, nil
}

func buildProjects(ctx context.Context, cfg config.ProjectsConfig) (repository.ProjectRepository, func(), error) {
	if cfg.Driver != "postgres" {
		projects := repository.NewProjectRepositoryMemory()
		if cfg.SeedFile != "" {
			if err := seedProjects(projects, cfg.SeedFile); err != nil {
				return nil, nil, err
			}
		}
		return projects, func() {}, nil
	}
	db, err := repository.OpenPostgres(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresProjectRepository(db), func() { db.Close() }, nil
}

func seedProjects(projects *repository.ProjectRepositoryMemory, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open project seed: %w", err)
	}
	defer f.Close()
	return projects.Seed(f)
}
