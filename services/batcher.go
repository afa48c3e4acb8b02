package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"songkick/facade/database"
	"songkick/facade/domain"
)

var (
	// ErrBufferFull is returned when the usage record buffer channel is full
	ErrBufferFull = errors.New("usage record buffer is full")
)

// UsageBatcher batches facade usage records and flushes them to ClickHouse.
// A full buffer drops records rather than blocking the request path.
type UsageBatcher struct {
	recordChan    chan domain.UsageRecord
	batchSize     int
	flushInterval time.Duration
	clickhouseDB  database.ClickHouseDB
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	isRunning     bool
	currentBatch  []domain.UsageRecord
}

// NewUsageBatcher creates a new UsageBatcher instance
func NewUsageBatcher(
	capacity int,
	batchSize int,
	flushIntervalSeconds int,
	clickhouseDB database.ClickHouseDB,
) *UsageBatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &UsageBatcher{
		recordChan:    make(chan domain.UsageRecord, capacity),
		batchSize:     batchSize,
		flushInterval: time.Duration(flushIntervalSeconds) * time.Second,
		clickhouseDB:  clickhouseDB,
		ctx:           ctx,
		cancel:        cancel,
		currentBatch:  make([]domain.UsageRecord, 0, batchSize),
	}
}

// Start launches the background worker goroutine that processes records
func (b *UsageBatcher) Start() {
	b.mu.Lock()
	if b.isRunning {
		b.mu.Unlock()
		return
	}
	b.isRunning = true
	b.mu.Unlock()

	b.wg.Add(1)
	go b.worker()
	log.Println("UsageBatcher started")
}

// Enqueue adds a record to the buffer channel (non-blocking).
// Returns ErrBufferFull if the channel is full.
func (b *UsageBatcher) Enqueue(record domain.UsageRecord) error {
	select {
	case b.recordChan <- record:
		return nil
	default:
		return ErrBufferFull
	}
}

// worker is the background goroutine that collects records and flushes them
func (b *UsageBatcher) worker() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			// Flush remaining records before shutting down
			b.flushRemaining()
			return

		case record := <-b.recordChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, record)
			shouldFlush := len(b.currentBatch) >= b.batchSize
			b.mu.Unlock()

			if shouldFlush {
				b.flushBatch()
			}

		case <-ticker.C:
			// Time-based flush
			b.mu.Lock()
			hasRecords := len(b.currentBatch) > 0
			b.mu.Unlock()

			if hasRecords {
				b.flushBatch()
			}
		}
	}
}

// flushBatch flushes the current batch to ClickHouse
func (b *UsageBatcher) flushBatch() {
	b.mu.Lock()
	if len(b.currentBatch) == 0 {
		b.mu.Unlock()
		return
	}

	// Copy batch and clear current batch
	batch := make([]domain.UsageRecord, len(b.currentBatch))
	copy(batch, b.currentBatch)
	b.currentBatch = b.currentBatch[:0]
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := b.clickhouseDB.SaveRequestLogs(ctx, batch); err != nil {
		log.Printf("UsageBatcher: Failed to flush batch of %d records: %v", len(batch), err)
		return
	}

	log.Printf("UsageBatcher: Successfully flushed batch of %d records", len(batch))
}

// flushRemaining flushes any remaining records in the buffer during shutdown
func (b *UsageBatcher) flushRemaining() {
	b.mu.Lock()
	remaining := len(b.currentBatch)
	b.mu.Unlock()

	if remaining > 0 {
		log.Printf("UsageBatcher: Flushing %d remaining records during shutdown", remaining)
		b.flushBatch()
	}

	// Drain any remaining records from the channel
	drained := 0
	for {
		select {
		case record := <-b.recordChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, record)
			b.mu.Unlock()
			drained++
		default:
			if drained > 0 {
				log.Printf("UsageBatcher: Drained %d records from channel during shutdown", drained)
				b.flushBatch()
			}
			return
		}
	}
}

// Shutdown gracefully shuts down the batcher, flushing remaining records
func (b *UsageBatcher) Shutdown() error {
	b.mu.Lock()
	if !b.isRunning {
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	log.Println("UsageBatcher: Initiating graceful shutdown...")
	b.cancel()
	b.wg.Wait()
	log.Println("UsageBatcher: Shutdown complete")
	return nil
}

// GetBufferSize returns the current number of records in the buffer channel
func (b *UsageBatcher) GetBufferSize() int {
	return len(b.recordChan)
}

// GetBatchSize returns the current number of records in the pending batch
func (b *UsageBatcher) GetBatchSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.currentBatch)
}
