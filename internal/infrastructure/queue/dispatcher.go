package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/api/metrics"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes status notifications to a fixed set of workers using
// consistent hashing on the recipient email, so notifications to the same
// applicant are delivered in order.
type Dispatcher struct {
	workers []chan ports.StatusNotification
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StatusNotification, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StatusNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its recipient.
// Never blocks the caller: when the worker's buffer is full the notification
// is dropped and logged.
func (d *Dispatcher) Enqueue(n ports.StatusNotification) {
	select {
	case d.workers[d.shardIndex(n.Email)] <- n:
	default:
		metrics.NotificationsSentTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("email", n.Email).Msg("notification queue full, dropping")
	}
}

// shardIndex maps a recipient email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StatusNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Send(ctx, n); err != nil {
				metrics.NotificationsSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsSentTotal.WithLabelValues("ok").Inc()
		}
	}
}
