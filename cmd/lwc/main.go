package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/ougirez/lwc/internal/api"
	"github.com/ougirez/lwc/internal/config"
	"github.com/ougirez/lwc/internal/pkg/logger"
	"github.com/ougirez/lwc/internal/pkg/store"
	"github.com/ougirez/lwc/internal/pkg/store/xpgx"
	"github.com/ougirez/lwc/internal/seed"
	"github.com/ougirez/lwc/internal/service/auth"
	"github.com/ougirez/lwc/internal/service/dashboard"
	"github.com/ougirez/lwc/internal/service/desserts"
	"github.com/ougirez/lwc/internal/service/places"
	"github.com/ougirez/lwc/internal/service/recommend"
	"github.com/ougirez/lwc/internal/service/stats"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Development); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer closeStore()

	placesService := places.NewPlacesService(kv, seed.Places)
	dessertsService := desserts.NewDessertsService(kv, seed.Desserts)
	statsEngine := stats.NewEngine(kv,
		stats.WithLocation(cfg.StatsLocation),
		stats.WithIntervals(cfg.StatsOnlineInterval, cfg.StatsVisitInterval),
	)

	if err := hydrate(ctx, cfg, placesService, dessertsService, statsEngine); err != nil {
		logger.Fatal(ctx, err)
	}

	var generator recommend.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := recommend.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Errorf(ctx, "recommendations disabled: %s", err.Error())
		} else {
			generator = gemini
		}
	} else {
		logger.Warnf(ctx, "no Gemini API key configured, recommendations answer with a fallback text")
	}

	apiService, err := api.NewAPIService(api.Services{
		Places:    placesService,
		Desserts:  dessertsService,
		Stats:     statsEngine,
		Recommend: recommend.NewRecommendService(generator),
		Dashboard: dashboard.NewDashboardService(),
		Auth:      auth.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.AuthSecret, cfg.TokenTTL),
	}, cfg.AllowOrigins)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	session := statsEngine.Start(context.Background())

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "listening on %s", cfg.Addr)
		serveErr <- apiService.Serve(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
		logger.Infof(context.Background(), "shutting down")
	case err := <-serveErr:
		if err != nil {
			logger.Errorf(context.Background(), "server stopped: %s", err.Error())
		}
	}

	session.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func openStore(ctx context.Context, cfg *config.AppConfig) (store.Store, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warnf(ctx, "using in-memory storage, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	pool, err := xpgx.Connect(ctx, cfg.PostgresDSN, cfg.ConnectInterval, cfg.ConnectRetries)
	if err != nil {
		return nil, nil, fmt.Errorf("xpgx.Connect: %w", err)
	}
	if err := store.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return store.NewStore(pool), pool.Close, nil
}

// hydrate loads both catalogs and the visitor counters before the server starts.
func hydrate(ctx context.Context, cfg *config.AppConfig, p *places.Service, d *desserts.Service, s *stats.Engine) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.HydrationTimeout)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof(egCtx, "places: %d loaded", len(p.Load(egCtx)))
		return nil
	})
	eg.Go(func() error {
		logger.Infof(egCtx, "desserts: %d loaded", len(d.Load(egCtx)))
		return nil
	})
	eg.Go(func() error {
		snapshot := s.Load(egCtx)
		logger.Infof(egCtx, "stats: today=%d month=%d year=%d", snapshot.Today, snapshot.Month, snapshot.Year)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("hydration: %w", ctx.Err())
	}
	return nil
}
