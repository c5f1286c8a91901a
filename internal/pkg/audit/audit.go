package audit

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Event captures a single state transition with its before/after snapshots.
type Event struct {
	Action     string
	EntityType string
	EntityID   string
	ActorID    string
	Before     interface{}
	After      interface{}
	Reason     *string
	IPAddress  *string
	UserAgent  *string
}

// Sink persists audit events.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

// Recorder wraps a Sink with fire-and-forget semantics: a failing sink is
// logged and swallowed, never surfaced to the caller. Audit logging must not
// abort the business transition it describes.
type Recorder struct {
	sink   Sink
	logger *slog.Logger
}

func NewRecorder(sink Sink, logger *slog.Logger) *Recorder {
	return &Recorder{sink: sink, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, event Event) {
	if r.sink == nil {
		return
	}
	if err := r.sink.Record(ctx, event); err != nil {
		r.logger.Error("audit record failed",
			slog.String("action", event.Action),
			slog.String("entity_type", event.EntityType),
			slog.String("entity_id", event.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

// Snapshot serializes v to JSON for storage in an audit row. Already-encoded
// JSON passes through untouched; marshal failures degrade to null rather than
// failing the event.
func Snapshot(v interface{}) []byte {
	if v == nil {
		return nil
	}
	switch raw := v.(type) {
	case []byte:
		return raw
	case json.RawMessage:
		return raw
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
