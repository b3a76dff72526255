package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/api/metrics"
	"github.com/iapourpme/content-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes page views to a fixed set of workers using consistent
// hashing on the article slug, so counter updates for one article are applied
// in order. Enqueueing never blocks the request path beyond channel capacity.
type Dispatcher struct {
	workers []chan ports.PageView
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.PageView, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PageView, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a view to the worker responsible for its slug.
func (d *Dispatcher) Enqueue(view ports.PageView) {
	i := d.shardIndex(view.Slug)
	d.workers[i] <- view
	metrics.ViewsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a slug deterministically to a worker index.
func (d *Dispatcher) shardIndex(slug string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PageView) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, view); err != nil {
				metrics.ViewsErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("slug", view.Slug).
					Int("worker_id", id).
					Msg("view processing failed")
				continue
			}
			metrics.ViewsProcessedTotal.Inc()
		}
	}
}
