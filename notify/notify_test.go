package notify

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AppName != "idealaunch" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestNewNotifier(t *testing.T) {
	n, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if n == nil {
		t.Fatal("New() returned nil notifier")
	}
	if !n.IsAvailable() {
		t.Error("IsAvailable() = false")
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
