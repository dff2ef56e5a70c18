package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/wrenchline/tread/pkg/lifecycle"
)

func TestStartupOrdering(t *testing.T) {
	c := lifecycle.New()

	var started atomic.Int32
	c.OnStartup(func() { started.Add(1) })
	c.OnStartup(func() { started.Add(1) })

	if c.Ready() {
		t.Error("Ready() should be false before WaitForStartup")
	}

	c.WaitForStartup()

	if got := started.Load(); got != 2 {
		t.Errorf("startup hooks run = %d, want 2", got)
	}
	if !c.Ready() {
		t.Error("Ready() should be true after WaitForStartup")
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	c := lifecycle.New()

	var cleaned atomic.Bool
	c.OnShutdown(func() {
		<-c.Context().Done()
		cleaned.Store(true)
	})

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not run")
	}

	select {
	case <-c.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	c := lifecycle.New()

	block := make(chan struct{})
	c.OnShutdown(func() {
		<-c.Context().Done()
		<-block
	})

	err := c.Shutdown(50 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error, got nil")
	}

	close(block)
}
