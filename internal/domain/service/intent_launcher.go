package service

import "context"

// IntentLauncher hands URLs to the platform (maps application, dialer, browser).
type IntentLauncher interface {
	// CanOpen reports whether some installed handler accepts the URL.
	CanOpen(ctx context.Context, url string) bool

	// Open launches the URL.
	Open(ctx context.Context, url string) error
}
