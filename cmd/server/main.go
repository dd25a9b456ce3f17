package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/shoplist/backend/api/handler"
	"github.com/shoplist/backend/internal/config"
	"github.com/shoplist/backend/internal/infrastructure/monitor"
	"github.com/shoplist/backend/internal/infrastructure/storage"
	"github.com/shoplist/backend/internal/router"
	"github.com/shoplist/backend/internal/services/lifecycle"
	"github.com/shoplist/backend/pkg/httpcontext"
	"github.com/shoplist/backend/pkg/logger"
	"github.com/shoplist/backend/store"
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

	backing, err := storage.Open(cfg.Storage.Path, cfg.Storage.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open state storage", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return backing.Close()
	})

	domainStore := store.New(backing, zapLogger)
	manager.Register("store_flush", func(ctx context.Context) error {
		return domainStore.Flush()
	})

	mon := monitor.New(backing, domainStore, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		List:     apiHandler.NewListHandler(domainStore, ctxAdapter, zapLogger),
		Product:  apiHandler.NewProductHandler(domainStore, ctxAdapter, zapLogger),
		Currency: apiHandler.NewCurrencyHandler(domainStore, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

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
