// Package browser opens URLs in the user's default web browser. It is used
// by the download command to bring up the IDE download page when no local
// installation exists.
package browser

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
)

// OpenURL opens url in the system default browser. Only http and https URLs
// are accepted.
func OpenURL(url string) error {
	if err := Validate(url); err != nil {
		return err
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Validate checks that url uses an http or https scheme.
func Validate(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("invalid URL scheme: URL must start with http:// or https://")
	}
	return nil
}
