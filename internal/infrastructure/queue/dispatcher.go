package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/api/metrics"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher writes audit records asynchronously so the clock-in path
// never waits on MongoDB. Records are sharded to a fixed set of workers by
// FNV hashing the employee ID, preserving per-employee write ordering.
type AuditDispatcher struct {
	workers []chan *ports.AuditRecord
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan *ports.AuditRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *ports.AuditRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a record to the worker responsible for its employee. When
// that worker's buffer is full the record is dropped with a log line rather
// than stalling the clock path — the audit trail is best-effort.
func (d *AuditDispatcher) Enqueue(rec *ports.AuditRecord) {
	idx := d.shardIndex(rec.EmployeeID)
	select {
	case d.workers[idx] <- rec:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("employee_id", rec.EmployeeID).Int("worker_id", idx).Msg("audit queue full, record dropped")
	}
}

// shardIndex maps an employee ID deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(employeeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan *ports.AuditRecord) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, rec); err != nil {
				d.log.Error().Err(err).
					Str("employee_id", rec.EmployeeID).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
