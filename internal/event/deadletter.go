package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// DeadLetterSchemaVersion versions the JSON lines written by DeadLetterWriter
const DeadLetterSchemaVersion = "1.1"

// DeadLetterEntry is one undeliverable event, stored as a single JSON line
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	RecordedAt    time.Time `json:"recorded_at"`
	UserID        string    `json:"user_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file so they
// can be inspected or replayed by hand.
type DeadLetterWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewDeadLetterWriter opens (or creates) the dead-letter file at path
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgOpenDeadLetter, path, err)
	}
	return &DeadLetterWriter{path: path, file: f}, nil
}

// Path is the file entries are appended to
func (w *DeadLetterWriter) Path() string {
	return w.path
}

// Write records evt after attempts failed deliveries. The line is synced
// before Write returns.
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		RecordedAt:    time.Now().UTC(),
		UserID:        PayloadUserID(evt),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeDeadLetter, err)
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"user_id", entry.UserID,
		"attempts", attempts,
		"error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
