// Package notify posts desktop notifications after shell-integration changes.
package notify

import (
	"context"
	"errors"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	Title   string
	Message string
}

// Notifier is the interface for OS notification delivery.
type Notifier interface {
	// Send sends a notification to the OS notification system.
	Send(ctx context.Context, notification Notification) error

	// IsAvailable returns true if OS notifications are available.
	IsAvailable() bool

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "idealaunch",
		Timeout: 5 * time.Second,
	}
}

// New creates a new notifier.
func New(config Config) (Notifier, error) {
	return newBeeepNotifier(config)
}

// ErrNotificationFailed wraps delivery failures; callers treat them as
// warnings, never as fatal.
var ErrNotificationFailed = errors.New("failed to send notification")
