// Package loggertest provides a logger.Interface that records entries for assertions.
package loggertest

import (
	"fmt"
	"sync"

	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// Entry is a single recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  []any
}

// Recorder implements logger.Interface and keeps every entry in memory.
// Loggers derived through With or Named share the parent's entries.
type Recorder struct {
	sink   *sink
	fields []any
}

type sink struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{sink: &sink{}}
}

func (r *Recorder) record(level, msg string, args []any) {
	fields := append(append([]any{}, r.fields...), args...)
	r.sink.mu.Lock()
	defer r.sink.mu.Unlock()
	r.sink.entries = append(r.sink.entries, Entry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.sink.mu.Lock()
	defer r.sink.mu.Unlock()
	return append([]Entry(nil), r.sink.entries...)
}

// EntriesAt returns the entries recorded at the given level ("debug", "info", "warn", "error").
func (r *Recorder) EntriesAt(level string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Field returns the value logged under key in e, if any.
func (e Entry) Field(key string) (any, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

func (r *Recorder) Debug(msg string, args ...any) { r.record("debug", msg, args) }
func (r *Recorder) Info(msg string, args ...any)  { r.record("info", msg, args) }
func (r *Recorder) Warn(msg string, args ...any)  { r.record("warn", msg, args) }
func (r *Recorder) Error(msg string, args ...any) { r.record("error", msg, args) }

func (r *Recorder) Fatal(msg string, args ...any) {
	r.record("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

func (r *Recorder) With(args ...any) logger.Interface {
	return &Recorder{sink: r.sink, fields: append(append([]any{}, r.fields...), args...)}
}

func (r *Recorder) Named(name string) logger.Interface {
	return r.With("logger", name)
}

func (r *Recorder) Debugw(msg string, kv ...interface{}) { r.record("debug", msg, kv) }
func (r *Recorder) Infow(msg string, kv ...interface{})  { r.record("info", msg, kv) }
func (r *Recorder) Warnw(msg string, kv ...interface{})  { r.record("warn", msg, kv) }
func (r *Recorder) Errorw(msg string, kv ...interface{}) { r.record("error", msg, kv) }

func (r *Recorder) Fatalw(msg string, kv ...interface{}) {
	r.record("fatal", msg, kv)
	panic(fmt.Sprintf("fatal: %s", msg))
}
