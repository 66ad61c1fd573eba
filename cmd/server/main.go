package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/tasktrack/backend/api/handler"
	"github.com/tasktrack/backend/internal/config"
	"github.com/tasktrack/backend/internal/infrastructure/buffer"
	"github.com/tasktrack/backend/internal/infrastructure/monitor"
	pgInfra "github.com/tasktrack/backend/internal/infrastructure/postgres"
	redisInfra "github.com/tasktrack/backend/internal/infrastructure/redis"
	"github.com/tasktrack/backend/internal/middleware"
	"github.com/tasktrack/backend/internal/router"
	"github.com/tasktrack/backend/internal/services"
	"github.com/tasktrack/backend/internal/services/lifecycle"
	"github.com/tasktrack/backend/pkg/httpcontext"
	"github.com/tasktrack/backend/pkg/logger"
	"github.com/tasktrack/backend/repository"
	"github.com/tasktrack/backend/repository/postgres"
	redisRepo "github.com/tasktrack/backend/repository/redis"
	bookingUC "github.com/tasktrack/backend/usecase/booking"
	importanceUC "github.com/tasktrack/backend/usecase/importance"
	tagUC "github.com/tasktrack/backend/usecase/tag"
	taskUC "github.com/tasktrack/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	// Redis is a cache only; the service boots without it.
	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Warn("redis unavailable, vocabulary cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
	}

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	bookingRepo := postgres.NewBookingRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	var tagRepo repository.TagRepository = postgres.NewTagRepository(pool)
	var importanceRepo repository.ImportanceRepository = postgres.NewImportanceRepository(pool)
	if redisClient != nil {
		tagRepo = redisRepo.NewCachedTagRepository(tagRepo, redisClient, cfg.Redis.CacheTTL)
		importanceRepo = redisRepo.NewCachedImportanceRepository(importanceRepo, redisClient, cfg.Redis.CacheTTL)
	}

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		bookingRepo,
		taskRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	bookingUseCase := bookingUC.New(bookingRepo, bufferBridge, zapLogger)
	taskUseCase := taskUC.New(taskRepo, importanceRepo, bufferBridge, zapLogger)
	tagUseCase := tagUC.New(tagRepo, zapLogger)
	importanceUseCase := importanceUC.New(importanceRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Booking:    apiHandler.NewBookingHandler(bookingUseCase, ctxAdapter, zapLogger),
		Task:       apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Tag:        apiHandler.NewTagHandler(tagUseCase, ctxAdapter, zapLogger),
		Importance: apiHandler.NewImportanceHandler(importanceUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	guard := middleware.Guard(cfg.Auth.Secret, zapLogger)
	r := router.New(handlers, guard)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
