package e2e

import (
	"testing"
	"time"

	"github.com/ontoflow-io/ontoflow-e2e/tests/e2e/helpers"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelinesPage(t *testing.T) {
	browser, _ := helpers.SetupAuthenticatedPage(t)
	defer browser.TearDown()

	require.NoError(t, browser.NavigateTo("/pipelines"))
	require.NoError(t, browser.WaitForIdle())

	t.Run("Pipeline list renders", func(t *testing.T) {
		helpers.RequireVisible(t, browser.Page, "[data-testid='pipeline-list'], table", 10*time.Second)

		rows, err := browser.Page.Locator("[data-testid='pipeline-row'], tbody tr").Count()
		require.NoError(t, err)
		t.Logf("pipelines listed: %d", rows)
	})

	t.Run("Create pipeline via dialog", func(t *testing.T) {
		name := uniqueName("UI Pipeline")

		createBtn := browser.Page.Locator("[data-testid='create-pipeline'], button:has-text('New Pipeline')")
		require.NoError(t, createBtn.First().Click())

		dialog := browser.Page.Locator("[role='dialog'], [data-testid='pipeline-dialog']").First()
		require.NoError(t, dialog.WaitFor())

		require.NoError(t, dialog.Locator("input[name='name']").Fill(name))
		descInput := dialog.Locator("textarea[name='description'], input[name='description']")
		if count, _ := descInput.Count(); count > 0 {
			require.NoError(t, descInput.First().Fill("created by E2E suite"))
		}
		require.NoError(t, dialog.Locator("button[type='submit']").Click())

		if err := helpers.WaitForToast(browser.Page, "created", 10*time.Second); err != nil {
			t.Logf("⚠️  no creation toast observed: %v", err)
		}
		require.NoError(t, browser.WaitForIdle())

		row := browser.Page.Locator("[data-testid='pipeline-row'], tbody tr").Filter(playwright.LocatorFilterOptions{
			HasText: name,
		})
		count, err := row.Count()
		require.NoError(t, err)
		assert.Greater(t, count, 0, "new pipeline %s should appear in the list", name)
	})

	t.Run("Run button updates status badge", func(t *testing.T) {
		row := browser.Page.Locator("[data-testid='pipeline-row'], tbody tr").First()
		if count, _ := row.Count(); count == 0 {
			t.Skip("no pipelines to run")
		}

		runBtn := row.Locator("[data-testid='run-pipeline'], button:has-text('Run')")
		if count, _ := runBtn.Count(); count == 0 {
			t.Log("⚠️  run control absent; pipeline may not be runnable")
			return
		}
		require.NoError(t, runBtn.First().Click())

		badge := row.Locator("[data-testid='pipeline-status'], .status-badge")
		deadline := time.Now().Add(30 * time.Second)
		var status string
		for time.Now().Before(deadline) {
			text, err := badge.First().TextContent()
			if err == nil {
				status = text
				if status != "" && status != "idle" {
					break
				}
			}
			time.Sleep(time.Second)
		}
		t.Logf("pipeline status after run: %q", status)
		assert.NotEmpty(t, status, "status badge should report a state after run")
	})
}
