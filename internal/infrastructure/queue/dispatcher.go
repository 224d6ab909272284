// Package queue archives generated reports on a fixed pool of workers.
package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/pkg/logger"
)

const (
	defaultWorkers = 2
	channelBuffer  = 32
)

// Dispatcher routes reports to a fixed set of workers using consistent
// hashing on the MMSI, so successive reports for one vessel (which share a
// file name) are stored in the order they were generated.
type Dispatcher struct {
	workers []chan ports.ArchivedReport
	store   ports.ReportStore
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.ReportStore, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ArchivedReport, numWorkers),
		store:   store,
		log:     logger.Component(log, "report_archive"),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ArchivedReport, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx bounds each store write.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a report to the worker responsible for its MMSI. It never
// blocks: when that worker's buffer is full, or the dispatcher is stopped,
// the report is dropped and logged.
func (d *Dispatcher) Enqueue(report ports.ArchivedReport) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("name", report.Name).Msg("archive stopped, report dropped")
		return
	}
	select {
	case d.workers[d.shardIndex(report.MMSI)] <- report:
	default:
		d.log.Warn().Str("name", report.Name).Msg("archive queue full, report dropped")
	}
}

// Stop closes the queues and waits for the workers to drain them.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an MMSI deterministically to a worker index.
func (d *Dispatcher) shardIndex(mmsi string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(mmsi))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ArchivedReport) {
	defer d.wg.Done()
	for report := range ch {
		if err := d.store.Put(ctx, report.Name, report.PDF); err != nil {
			d.log.Error().Err(err).
				Str("name", report.Name).
				Int("worker_id", id).
				Msg("report archive failed")
			continue
		}
		d.log.Debug().Str("name", report.Name).Int("worker_id", id).Msg("report archived")
	}
}
