package session

import (
	"context"
	"net/url"
	"strings"
	"sync"
)

// Launcher hands intents to the connected device. The device declares the
// schemes it can open in its hello message; until then only Open works.
type Launcher struct {
	conn *Conn

	mu      sync.RWMutex
	schemes map[string]struct{}
}

// NewLauncher creates a launcher that sends intent frames on conn.
func NewLauncher(conn *Conn) *Launcher {
	return &Launcher{conn: conn, schemes: map[string]struct{}{}}
}

// Declare replaces the set of openable schemes. "tel", "tel:" and "comgooglemaps://"
// are all accepted spellings.
func (l *Launcher) Declare(schemes []string) {
	declared := make(map[string]struct{}, len(schemes))
	for _, scheme := range schemes {
		name := strings.ToLower(strings.TrimSpace(scheme))
		name = strings.TrimSuffix(strings.TrimSuffix(name, "//"), ":")
		if name != "" {
			declared[name] = struct{}{}
		}
	}

	l.mu.Lock()
	l.schemes = declared
	l.mu.Unlock()
}

// CanOpen reports whether the device declared the scheme of target.
func (l *Launcher) CanOpen(_ context.Context, target string) bool {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme == "" {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.schemes[strings.ToLower(parsed.Scheme)]

	return ok
}

// Open sends the intent to the device.
func (l *Launcher) Open(_ context.Context, target string) error {
	return l.conn.Send(Frame{Type: FrameIntent, URL: target})
}
