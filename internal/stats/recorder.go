// Package stats persists the mine kill log off the event loop.
package stats

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/minefield/internal/db"
)

const (
	defaultQueueSize     = 64
	defaultBatchSize     = 32
	defaultFlushInterval = 5 * time.Second
	finalFlushTimeout    = 3 * time.Second
)

// ErrQueueFull is returned by Enqueue when the recorder cannot keep up.
var ErrQueueFull = errors.New("stats queue full")

// Store persists batches of mine kills.
type Store interface {
	SaveBatch(ctx context.Context, rows []db.MineKillRow) error
}

// Recorder buffers mine kills and writes them to a Store in batches.
// RecordMineKill never blocks, so it is safe to call from the event loop.
type Recorder struct {
	store         Store
	queue         chan db.MineKillRow
	stopCh        chan struct{}
	stopOnce      sync.Once
	batchSize     int
	flushInterval time.Duration
	now           func() time.Time
}

// NewRecorder creates a recorder with the given queue capacity.
func NewRecorder(store Store, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Recorder{
		store:         store,
		queue:         make(chan db.MineKillRow, queueSize),
		stopCh:        make(chan struct{}),
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		now:           time.Now,
	}
}

// RecordMineKill queues a mine kill. Drops it with a warning when the queue is full.
func (r *Recorder) RecordMineKill(mapName, victim string, killNumber int) {
	row := db.MineKillRow{
		MapName:    mapName,
		Victim:     victim,
		KillNumber: int32(killNumber),
		KilledAt:   r.now().UTC(),
	}
	if err := r.Enqueue(row); err != nil {
		slog.Warn("mine kill dropped", "map", mapName, "victim", victim, "error", err)
	}
}

// Enqueue queues row without blocking.
func (r *Recorder) Enqueue(row db.MineKillRow) error {
	select {
	case r.queue <- row:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start writes queued kills until ctx is canceled or Stop is called.
// Whatever is still queued at that point is flushed once more before returning.
func (r *Recorder) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	slog.Info("stats recorder started", "interval", r.flushInterval, "batch", r.batchSize)

	batch := make([]db.MineKillRow, 0, r.batchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("stats recorder stopping")
			r.finalFlush(context.WithoutCancel(ctx), batch)
			return ctx.Err()

		case <-r.stopCh:
			r.finalFlush(ctx, batch)
			slog.Info("stats recorder stopped")
			return nil

		case row := <-r.queue:
			batch = append(batch, row)
			if len(batch) >= r.batchSize {
				batch = r.flush(ctx, batch)
			}

		case <-ticker.C:
			batch = r.flush(ctx, batch)
		}
	}
}

// Stop stops the recorder. Safe to call multiple times.
func (r *Recorder) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

func (r *Recorder) finalFlush(ctx context.Context, batch []db.MineKillRow) {
drain:
	for {
		select {
		case row := <-r.queue:
			batch = append(batch, row)
		default:
			break drain
		}
	}

	ctx, cancel := context.WithTimeout(ctx, finalFlushTimeout)
	defer cancel()
	r.flush(ctx, batch)
}

// flush writes batch and returns it emptied. Failed batches are logged and dropped.
func (r *Recorder) flush(ctx context.Context, batch []db.MineKillRow) []db.MineKillRow {
	if len(batch) == 0 {
		return batch
	}
	if err := r.store.SaveBatch(ctx, batch); err != nil {
		slog.Error("saving mine kills", "rows", len(batch), "error", err)
	} else {
		slog.Debug("mine kills saved", "rows", len(batch))
	}
	return batch[:0]
}
