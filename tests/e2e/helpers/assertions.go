package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ExpectVisible waits for the selector to become visible. An absent element is
// a soft signal: the warning is logged and false returned so callers can keep
// probing the rest of the page instead of failing outright.
func ExpectVisible(t *testing.T, page playwright.Page, selector string, timeout time.Duration) bool {
	t.Helper()
	err := page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		t.Logf("⚠️  %s not visible within %s", selector, timeout)
		return false
	}
	return true
}

// RequireVisible is the hard-failure variant of ExpectVisible.
func RequireVisible(t *testing.T, page playwright.Page, selector string, timeout time.Duration) {
	t.Helper()
	if !ExpectVisible(t, page, selector, timeout) {
		t.Fatalf("%s should be visible", selector)
	}
}

// WaitForToast waits for a toast notification containing the given text.
func WaitForToast(page playwright.Page, text string, timeout time.Duration) error {
	toast := page.Locator("[data-testid='toast'], [role='status'], .toast").Filter(playwright.LocatorFilterOptions{
		HasText: text,
	})
	err := toast.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("toast %q did not appear within %s: %w", text, timeout, err)
	}
	return nil
}
