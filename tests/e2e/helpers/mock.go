package helpers

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// APIMocker intercepts backend requests at the browser level so UI error
// paths can be exercised deterministically without touching the real API.
type APIMocker struct {
	page     playwright.Page
	patterns []string
}

// NewAPIMocker creates a mocker bound to the given page.
func NewAPIMocker(page playwright.Page) *APIMocker {
	return &APIMocker{page: page}
}

// StubJSON answers every request matching the glob pattern with the given
// status and JSON-encoded body.
func (m *APIMocker) StubJSON(pattern string, status int, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode stub body for %s: %w", pattern, err)
	}
	err = m.page.Route(pattern, func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("application/json"),
			Body:        payload,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to register route %s: %w", pattern, err)
	}
	m.patterns = append(m.patterns, pattern)
	return nil
}

// StubError answers matching requests with a standard error envelope.
func (m *APIMocker) StubError(pattern string, status int, message string) error {
	return m.StubJSON(pattern, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// Abort drops matching requests at the network level, simulating an
// unreachable backend.
func (m *APIMocker) Abort(pattern string) error {
	err := m.page.Route(pattern, func(route playwright.Route) {
		route.Abort("connectionrefused")
	})
	if err != nil {
		return fmt.Errorf("failed to register abort route %s: %w", pattern, err)
	}
	m.patterns = append(m.patterns, pattern)
	return nil
}

// Restore removes all registered interceptions.
func (m *APIMocker) Restore() {
	for _, pattern := range m.patterns {
		_ = m.page.Unroute(pattern)
	}
	m.patterns = nil
}
