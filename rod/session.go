package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Session owns one headless Chrome process. Pages are opened against it by a
// Renderer; the session itself is long-lived and closed once, at exit.
//
// Session is safe for concurrent use.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	bin      string
	mu       sync.Mutex
	closed   atomic.Bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithBrowserBin sets the path of the Chrome binary to launch.
// By default rod looks up a local install or downloads one.
func WithBrowserBin(path string) SessionOption {
	return func(s *Session) {
		s.bin = path
	}
}

// NewSession launches a headless Chrome browser.
// Close must be called when the Session is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	lnchr := launcher.New().
		Set("disable-setuid-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		NoSandbox(true).
		Leakless(true).
		Headless(true)
	if s.bin != "" {
		lnchr = lnchr.Bin(s.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	s.launcher = lnchr
	return s, nil
}

// Browser returns the session's browser, or nil once the session is closed.
func (s *Session) Browser() *rod.Browser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browser
}

// Close shuts down the browser and its process. Close is safe to call
// multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
