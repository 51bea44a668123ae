package cli

import (
	"errors"
	"fmt"
	"io"

	"gaming-storefront/internal/client"
	"gaming-storefront/internal/config"
	"gaming-storefront/internal/event"
	"gaming-storefront/internal/logger"
	"gaming-storefront/internal/repository"
	"gaming-storefront/internal/service"
)

// store is the subset of the server's wiring the commands need. Mutations
// publish change events like the server does, but they only leave this
// process when EVENTS_KAFKA_BROKERS is set; with the default in-process
// channel a running server never hears about a restore.
type store struct {
	cfg       *config.Config
	snapshot  service.SnapshotService
	dashboard service.DashboardService
	close     func() error
}

func openStore(opts *RootOptions, logOut io.Writer) (*store, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cfg.Log, logOut)

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		return nil, err
	}

	events, err := client.InitEventClient(cfg.Events, log)
	if err != nil {
		_ = client.CloseDBClient(db)
		return nil, err
	}

	deps := service.NewDeps(event.NewNotifier(events.Publisher, cfg.Events.TopicPrefix, log), log)
	docs := repository.NewDocumentRepository(db)
	productRepo := repository.NewProductRepository(docs)
	orderRepo := repository.NewOrderRepository(docs)
	testimonialRepo := repository.NewTestimonialRepository(docs)

	return &store{
		cfg:       cfg,
		snapshot:  service.NewSnapshotService(deps, docs, productRepo, orderRepo, testimonialRepo),
		dashboard: service.NewDashboardService(deps.Clock, productRepo, orderRepo, testimonialRepo),
		close: func() error {
			return errors.Join(events.Close(), client.CloseDBClient(db))
		},
	}, nil
}

func withStore(opts *RootOptions, logOut io.Writer, fn func(s *store) error) (err error) {
	s, err := openStore(opts, logOut)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		err = errors.Join(err, s.close())
	}()

	return fn(s)
}
