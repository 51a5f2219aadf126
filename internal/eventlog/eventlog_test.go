package eventlog

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCollectorCapturesEntries(t *testing.T) {
	c := New(zapcore.DebugLevel)
	log := zap.New(c)

	log.Info("loaded skill", zap.String("ability", "Mend"))
	log.Debug("read document", zap.Int("bytes", 42))

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("len(Events()) = %d; want 2", len(events))
	}
	if events[0].Message != "loaded skill" {
		t.Errorf("Message = %q", events[0].Message)
	}
	if events[0].Fields["ability"] != "Mend" {
		t.Errorf("Fields[ability] = %v", events[0].Fields["ability"])
	}
	if events[1].Level != zapcore.DebugLevel {
		t.Errorf("Level = %v", events[1].Level)
	}
}

func TestCollectorLevelFilter(t *testing.T) {
	c := New(zapcore.InfoLevel)
	log := zap.New(c)

	log.Debug("dropped")
	log.Warn("kept")

	events := c.Events()
	if len(events) != 1 || events[0].Message != "kept" {
		t.Fatalf("Events() = %+v; want only the warn entry", events)
	}
}

// Clones made by With must feed the same buffer and carry their context.
func TestCollectorWith(t *testing.T) {
	c := New(zapcore.DebugLevel)
	log := zap.New(c).With(zap.String("stage", "load"))

	log.Info("begin")

	events := c.Events()
	if len(events) != 1 {
		t.Fatalf("len(Events()) = %d; want 1", len(events))
	}
	if events[0].Fields["stage"] != "load" {
		t.Errorf("Fields[stage] = %v; want load", events[0].Fields["stage"])
	}
}

func TestCollectorClear(t *testing.T) {
	c := New(zapcore.DebugLevel)
	log := zap.New(c)

	log.Info("one")
	c.Clear()
	log.Info("two")

	events := c.Events()
	if len(events) != 1 || events[0].Message != "two" {
		t.Fatalf("Events() after Clear = %+v", events)
	}
}

// Snapshot reads must be safe while another goroutine keeps logging.
func TestCollectorConcurrentAccess(t *testing.T) {
	c := New(zapcore.DebugLevel)
	log := zap.New(c)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			log.Info("event", zap.Int("i", i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = c.Events()
		}
	}()
	wg.Wait()

	if got := len(c.Events()); got != 100 {
		t.Fatalf("len(Events()) = %d; want 100", got)
	}
}
