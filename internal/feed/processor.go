package feed

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// ProcessorPool drains the event queue on a configurable number of worker
// goroutines, fanning out new events to subscribers and cascading deletes.
// Adapted from the teacher's EventPublisher worker pool: same
// ctx-or-shutdown select loop and WaitGroup lifecycle, generalized from
// "publish to in-process subscriber channels" to "fan out into the event
// store along subscription edges".
type ProcessorPool struct {
	queue             *EventQueue
	eventStore        *EventStore
	subscriptionStore *SubscriptionStore
	eventFactory      *EventFactory
	concurrency       int
	logger            *logrus.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProcessorPool builds a pool that will run concurrency workers once started.
func NewProcessorPool(queue *EventQueue, eventStore *EventStore, subscriptionStore *SubscriptionStore, eventFactory *EventFactory, concurrency int, logger *logrus.Logger) *ProcessorPool {
	if concurrency <= 0 {
		concurrency = 1
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ProcessorPool{
		queue:             queue,
		eventStore:        eventStore,
		subscriptionStore: subscriptionStore,
		eventFactory:      eventFactory,
		concurrency:       concurrency,
		logger:            logger,
	}
}

// Start launches the worker goroutines. Cancellation of the context derived
// from ctx (via Stop, or of ctx itself) is what tells them to exit.
func (p *ProcessorPool) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.concurrency; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}
	p.logger.WithField("concurrency", p.concurrency).Info("processor pool started")
}

// Stop cancels all workers and blocks until they exit.
func (p *ProcessorPool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	p.logger.Info("processor pool stopped")
}

func (p *ProcessorPool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()
	logger := p.logger.WithField("worker_id", workerID)

	for {
		item, err := p.queue.Get(ctx)
		if err != nil {
			logger.Debug("processor worker stopping")
			return
		}

		switch item.Action {
		case ActionPost:
			p.processNewEvent(item.Event, logger)
		case ActionDelete:
			p.processEventDeletion(item.DeleteFQID, logger)
		}
	}
}

// processNewEvent fans event out to every newsfeed currently subscribed to
// event's newsfeed, in most-recent-subscription-first order, then persists
// the originator before its children. A store failure on one child is
// logged and skipped; it never aborts the remaining fan-out.
func (p *ProcessorPool) processNewEvent(event *Event, logger *logrus.Entry) {
	subs := p.subscriptionStore.GetByToNewsfeedID(event.NewsfeedID)

	children := make([]*Event, 0, len(subs))
	childFQIDs := make([]EventFQID, 0, len(subs))
	parentFQID := event.FQID()
	for _, sub := range subs {
		child := p.eventFactory.CreateNew(sub.NewsfeedID, event.Data, &parentFQID)
		children = append(children, child)
		childFQIDs = append(childFQIDs, child.FQID())
	}
	event.TrackChildFQIDs(childFQIDs)
	event.TrackPublishingTime()

	if err := p.eventStore.Add(event); err != nil {
		logger.WithError(err).WithField("newsfeed_id", event.NewsfeedID).Error("failed to store originator event")
		return
	}

	for _, child := range children {
		child.TrackPublishingTime()
		if err := p.eventStore.Add(child); err != nil {
			logger.WithError(err).WithField("newsfeed_id", child.NewsfeedID).Error("failed to store subscriber event")
		}
	}
}

// processEventDeletion removes the event's already-listed children, then the
// event itself. It never chases grandchildren and never repairs a dangling
// child FQID left by an event that was itself already evicted. Deleting an
// event that is already gone is a silent no-op.
func (p *ProcessorPool) processEventDeletion(fqid EventFQID, logger *logrus.Entry) {
	event, err := p.eventStore.GetByFQID(fqid.NewsfeedID, fqid.EventID)
	if err != nil {
		return
	}

	for _, childFQID := range event.ChildFQIDs {
		p.eventStore.DeleteByFQID(childFQID)
	}
	p.eventStore.DeleteByFQID(fqid)
	logger.WithField("newsfeed_id", fqid.NewsfeedID).Debug("event deleted")
}
