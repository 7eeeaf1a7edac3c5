package helpers

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// UploadFile populates the file input matched by selector with an in-memory
// fixture. The suite's fixtures (CSV samples, Turtle snippets) are inline
// string literals, so no temp files are written.
func UploadFile(page playwright.Page, selector, name string, contents []byte) error {
	input := page.Locator(selector)
	if err := input.First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateAttached,
	}); err != nil {
		return fmt.Errorf("file input %s not found: %w", selector, err)
	}
	err := input.First().SetInputFiles([]playwright.InputFile{{
		Name:     name,
		MimeType: mimeTypeFor(name),
		Buffer:   contents,
	}})
	if err != nil {
		return fmt.Errorf("failed to set input files on %s: %w", selector, err)
	}
	return nil
}

func mimeTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".csv"):
		return "text/csv"
	case strings.HasSuffix(name, ".ttl"):
		return "text/turtle"
	case strings.HasSuffix(name, ".owl"), strings.HasSuffix(name, ".rdf"):
		return "application/rdf+xml"
	case strings.HasSuffix(name, ".json"):
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
