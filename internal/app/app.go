package app

import (
	"context"

	"newsfeed/internal/config"
	"newsfeed/internal/controller"
	"newsfeed/internal/feed"
	"newsfeed/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// App wires the domain layer, the processor pool, the stats logger, and the
// HTTP router together. Grounded in the original Application container: the
// processor pool plays the role of the background event-processor tasks
// started on startup and cancelled on cleanup.
type App struct {
	cfg    *config.Config
	logger *logrus.Logger

	queue             *feed.EventQueue
	eventStore        *feed.EventStore
	subscriptionStore *feed.SubscriptionStore
	processors        *feed.ProcessorPool
	stats             *telemetry.StatsLogger

	Router *gin.Engine
}

// New builds an App from configuration, constructing every layer of the
// domain model and the route tree on top of it.
func New(cfg *config.Config, logger *logrus.Logger) *App {
	idSpec := feed.NewNewsfeedIDSpecification(cfg.NewsfeedIDLength)

	queue := feed.NewEventQueue(cfg.EventQueue.MaxSize)
	eventStore := feed.NewEventStore(cfg.EventStorage.MaxNewsfeeds, cfg.EventStorage.MaxEventsPerNewsfeed)
	subscriptionStore := feed.NewSubscriptionStore(cfg.SubscriptionStorage.MaxNewsfeeds, cfg.SubscriptionStorage.MaxSubscriptionsPerNewsfeed)

	dispatcher := feed.NewEventDispatcherService(feed.NewEventFactory(), feed.NewEventSpecification(idSpec), queue)
	subscriptionSvc := feed.NewSubscriptionService(feed.NewSubscriptionFactory(), feed.NewSubscriptionSpecification(idSpec), subscriptionStore)

	processors := feed.NewProcessorPool(queue, eventStore, subscriptionStore, feed.NewEventFactory(), cfg.ProcessorConcurrency, logger)
	stats := telemetry.NewStatsLogger(queue, eventStore, subscriptionStore, logger)

	router := controller.SetupRoutes(&controller.RouterConfig{
		BasePath:        cfg.BasePath,
		Logger:          logger,
		Dispatcher:      dispatcher,
		EventStore:      eventStore,
		SubscriptionSvc: subscriptionSvc,
		IDSpec:          idSpec,
	})

	return &App{
		cfg:               cfg,
		logger:            logger,
		queue:             queue,
		eventStore:        eventStore,
		subscriptionStore: subscriptionStore,
		processors:        processors,
		stats:             stats,
		Router:            router,
	}
}

// Start launches the processor pool goroutines and the periodic stats
// logger. ctx governs the processor pool's lifetime; Stop still must be
// called to release the stats logger's own scheduler.
func (a *App) Start(ctx context.Context) error {
	a.processors.Start(ctx)
	return a.stats.Start(a.cfg.StatsLogIntervalSec)
}

// Stop cancels the processor pool and halts the stats logger, waiting for
// both to exit.
func (a *App) Stop() {
	a.processors.Stop()
	a.stats.Stop()
}
