// Package eventlog captures log entries in memory so a display surface can
// render recent activity after a convert run. The collector is a
// zapcore.Core, tee'd alongside the console core.
package eventlog

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Event is one captured log entry with its structured fields flattened.
type Event struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
	Fields  map[string]any
}

// Collector buffers every accepted entry. Writes may come from the logging
// side while a reader takes snapshots; the buffer mutex covers both.
type Collector struct {
	enab    zapcore.LevelEnabler
	buf     *buffer
	context []zapcore.Field
}

type buffer struct {
	mu     sync.Mutex
	events []Event
}

// New returns an empty collector accepting entries at or above enab.
func New(enab zapcore.LevelEnabler) *Collector {
	return &Collector{enab: enab, buf: &buffer{}}
}

func (c *Collector) Enabled(lvl zapcore.Level) bool { return c.enab.Enabled(lvl) }

// With clones the core with extra context fields. Clones share the buffer,
// so entries logged through any clone land in the same snapshot.
func (c *Collector) With(fields []zapcore.Field) zapcore.Core {
	clone := &Collector{enab: c.enab, buf: c.buf}
	clone.context = append(clone.context, c.context...)
	clone.context = append(clone.context, fields...)
	return clone
}

func (c *Collector) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Collector) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.context {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	c.buf.mu.Lock()
	c.buf.events = append(c.buf.events, Event{
		Time:    ent.Time,
		Level:   ent.Level,
		Message: ent.Message,
		Fields:  enc.Fields,
	})
	c.buf.mu.Unlock()
	return nil
}

func (c *Collector) Sync() error { return nil }

// Events returns a snapshot copy of everything collected so far.
func (c *Collector) Events() []Event {
	c.buf.mu.Lock()
	defer c.buf.mu.Unlock()
	out := make([]Event, len(c.buf.events))
	copy(out, c.buf.events)
	return out
}

// Clear drops all collected entries.
func (c *Collector) Clear() {
	c.buf.mu.Lock()
	c.buf.events = nil
	c.buf.mu.Unlock()
}
