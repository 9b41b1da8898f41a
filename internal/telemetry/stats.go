package telemetry

import (
	"fmt"

	"newsfeed/internal/feed"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// cronLoggerWrapper adapts logrus.Logger to cron.Logger, the teacher's idiom
// for feeding structured logs into robfig/cron.
type cronLoggerWrapper struct {
	logger *logrus.Logger
}

func (w *cronLoggerWrapper) Error(err error, msg string, keysAndValues ...interface{}) {
	w.logger.WithFields(pairsToFields(keysAndValues)).WithError(err).Error(msg)
}

func (w *cronLoggerWrapper) Info(msg string, keysAndValues ...interface{}) {
	w.logger.WithFields(pairsToFields(keysAndValues)).Info(msg)
}

func pairsToFields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprintf("%v", keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

// StatsLogger periodically logs a read-only snapshot of queue depth and store
// occupancy. It never touches the stores beyond calling their Stats methods,
// so it cannot perturb the properties the rest of the service guarantees.
type StatsLogger struct {
	cron              *cron.Cron
	queue             *feed.EventQueue
	eventStore        *feed.EventStore
	subscriptionStore *feed.SubscriptionStore
	logger            *logrus.Logger
}

// NewStatsLogger builds a StatsLogger. Call Start with the desired interval.
func NewStatsLogger(queue *feed.EventQueue, eventStore *feed.EventStore, subscriptionStore *feed.SubscriptionStore, logger *logrus.Logger) *StatsLogger {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(&cronLoggerWrapper{logger: logger}))
	return &StatsLogger{
		cron:              c,
		queue:             queue,
		eventStore:        eventStore,
		subscriptionStore: subscriptionStore,
		logger:            logger,
	}
}

// Start schedules the periodic log line and begins the cron's goroutine.
func (s *StatsLogger) Start(intervalSeconds int) error {
	spec := fmt.Sprintf("@every %ds", intervalSeconds)
	if _, err := s.cron.AddFunc(spec, s.logOnce); err != nil {
		return fmt.Errorf("scheduling stats logger: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for any in-flight run to finish.
func (s *StatsLogger) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *StatsLogger) logOnce() {
	eventFeeds, events := s.eventStore.Stats()
	subFeeds, subscriptions := s.subscriptionStore.Stats()

	s.logger.WithFields(logrus.Fields{
		"queue_len":              s.queue.Len(),
		"event_newsfeeds":        eventFeeds,
		"events_stored":          events,
		"subscription_newsfeeds": subFeeds,
		"subscriptions_stored":   subscriptions,
	}).Info("newsfeed stats")
}
