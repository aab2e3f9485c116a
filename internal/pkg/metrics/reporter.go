package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"hashAnalysisBackend/internal/pkg/logging"
)

// Reporter buffers per-category records and writes them as one JSON document per Flush.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	closed  bool
	metrics map[string][]interface{}
}

type entry struct {
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{
		out:     out,
		metrics: make(map[string][]interface{}),
	}
	if c, ok := out.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// NewFileReporter appends to the file at logPath, creating it if needed.
func NewFileReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open metrics log: %w", err)
	}
	return NewReporter(file), nil
}

// Start flushes buffered records every interval until ctx is done.
func (r *Reporter) Start(ctx context.Context, interval time.Duration) {
	if r == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Flush(); err != nil {
					logging.Warnf("metrics flush failed: %v", err)
				}
			}
		}
	}()
}

func (r *Reporter) Record(category string, data interface{}) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.metrics[category] = append(r.metrics[category], entry{
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// Pending returns how many records are buffered across all categories.
func (r *Reporter) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, records := range r.metrics {
		n += len(records)
	}
	return n
}

func (r *Reporter) Flush() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || len(r.metrics) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(r.metrics, "", "  ")
	if err != nil {
		return err
	}

	if _, err := r.out.Write(append(data, '\n')); err != nil {
		return err
	}

	r.metrics = make(map[string][]interface{})
	return nil
}

func (r *Reporter) Close() error {
	if r == nil {
		return nil
	}
	if err := r.Flush(); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
