package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gaming-storefront/internal/auth"
	"gaming-storefront/internal/cart"
	"gaming-storefront/internal/client"
	"gaming-storefront/internal/config"
	"gaming-storefront/internal/event"
	"gaming-storefront/internal/handoff"
	"gaming-storefront/internal/logger"
	"gaming-storefront/internal/repository"
	"gaming-storefront/internal/seed"
	"gaming-storefront/internal/server"
	"gaming-storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	log.Info("starting storefront", "environment", cfg.Environment.Name, "database", cfg.Database.Driver)

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Error("connect database", "err", err)
		os.Exit(1)
	}
	defer client.CloseDBClient(db)

	events, err := client.InitEventClient(cfg.Events, log)
	if err != nil {
		log.Error("connect events", "err", err)
		os.Exit(1)
	}
	defer events.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if events.Subscriber != nil {
		if err := event.LogChanges(ctx, events.Subscriber, cfg.Events.TopicPrefix, log); err != nil {
			log.Error("subscribe change log", "err", err)
			os.Exit(1)
		}
	}

	notifier := event.NewNotifier(events.Publisher, cfg.Events.TopicPrefix, log)
	deps := service.NewDeps(notifier, log)

	docs := repository.NewDocumentRepository(db)
	productRepo := repository.NewProductRepository(docs)
	orderRepo := repository.NewOrderRepository(docs)
	testimonialRepo := repository.NewTestimonialRepository(docs)

	composer := handoff.NewComposer(cfg.Store.Name, cfg.Store.WhatsAppNumber)
	carts := cart.NewRegistry(
		cart.WithIdleTTL(cfg.Store.CartTTL),
		cart.WithMaxSessions(cfg.Store.MaxCarts),
	)

	catalogService := service.NewCatalogService(deps, productRepo, cfg.Store.PlaceholderImage)
	orderService := service.NewOrderService(deps, orderRepo)
	snapshotService := service.NewSnapshotService(deps, docs, productRepo, orderRepo, testimonialRepo)

	if cfg.Store.SeedDefaults {
		defaults, err := seed.Load()
		if err != nil {
			log.Error("load default catalog", "err", err)
			os.Exit(1)
		}
		if err := snapshotService.SeedDefaults(ctx, defaults); err != nil {
			log.Error("seed defaults", "err", err)
			os.Exit(1)
		}
	}

	srv := server.NewServer(server.Services{
		Catalog:   catalogService,
		Orders:    orderService,
		Feedback:  service.NewFeedbackService(deps, testimonialRepo),
		Cart:      service.NewCartService(carts, catalogService),
		Checkout:  service.NewCheckoutService(carts, orderService, composer, notifier),
		Snapshot:  snapshotService,
		Dashboard: service.NewDashboardService(deps.Clock, productRepo, orderRepo, testimonialRepo),
	}, server.Options{
		Authorizer:    auth.NewStaticAllowList(cfg.Store.AdminIdentities...),
		Composer:      composer,
		MaxImageBytes: cfg.Store.MaxImageBytes,
		Log:           log,
	})

	serverAddr := cfg.HTTP.Address()
	log.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "err", err)
	}
}
