package helpers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// ConsoleWatcher collects browser console output and uncaught page errors so
// navigation tests can report on them after the fact.
type ConsoleWatcher struct {
	mu       sync.Mutex
	messages []string
	errors   []string
}

// WatchConsole attaches a watcher to the page. Listeners stay attached for
// the lifetime of the page.
func WatchConsole(page playwright.Page) *ConsoleWatcher {
	w := &ConsoleWatcher{}
	page.OnConsole(func(msg playwright.ConsoleMessage) {
		w.mu.Lock()
		defer w.mu.Unlock()
		line := fmt.Sprintf("[%s] %s", msg.Type(), msg.Text())
		w.messages = append(w.messages, line)
		if msg.Type() == "error" {
			w.errors = append(w.errors, msg.Text())
		}
	})
	page.OnPageError(func(err error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.errors = append(w.errors, "pageerror: "+err.Error())
	})
	return w
}

// Messages returns everything logged to the console so far.
func (w *ConsoleWatcher) Messages() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.messages...)
}

// Errors returns console errors and uncaught page errors, skipping entries
// that contain any of the given substrings. Asset 404s and favicon noise are
// the usual suspects to ignore.
func (w *ConsoleWatcher) Errors(ignoring ...string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for _, e := range w.errors {
		skip := false
		for _, pattern := range ignoring {
			if strings.Contains(e, pattern) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears collected output, typically between route visits.
func (w *ConsoleWatcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = nil
	w.errors = nil
}
