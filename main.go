package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"calc-api/config"
	httpLayer "calc-api/http"
	"calc-api/repository"
	"calc-api/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg.Level = level
	return zcfg.Build()
}

// openJobs picks the job store. The returned close func is never nil.
func openJobs(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (repository.JobRepository, func() error, error) {
	if !cfg.Enabled {
		logger.Info("using in-memory job store", zap.Duration("ttl", cfg.JobTTL.Duration))
		return repository.NewJobRepositoryMemory(cfg.JobTTL.Duration), func() error { return nil }, nil
	}

	repo := repository.NewJobRepositoryRedis(cfg.Addr, cfg.JobTTL.Duration)
	if err := repo.Ping(ctx); err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	logger.Info("using redis job store", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.JobTTL.Duration))
	return repo, repo.Close, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs, closeJobs, err := openJobs(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeJobs(); err != nil {
			logger.Warn("close job store", zap.Error(err))
		}
	}()

	limits := service.FileLimits{
		MaxPDFBytes:   cfg.Files.MaxPDFBytes,
		MaxImageBytes: cfg.Files.MaxImageBytes,
	}
	fileService := service.NewFileService(
		jobs,
		service.NewCountdown(cfg.Files.ProgressDuration.Duration, cfg.Files.ProgressSteps),
		limits,
		logger,
	)
	defer fileService.Close()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill.Duration)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loans: httpLayer.NewLoanHandler(service.NewLoanService(logger), logger),
		Calculators: httpLayer.NewCalculatorHandler(
			service.NewHealthService(logger),
			service.NewMathService(logger),
			service.NewFinanceService(logger),
			logger,
		),
		Files:   httpLayer.NewFileHandler(fileService, limits, logger),
		Catalog: httpLayer.NewCatalogHandler(logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("calc-api listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server exited")
	return nil
}
