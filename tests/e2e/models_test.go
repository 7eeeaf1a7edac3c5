package e2e

import (
	"testing"
	"time"

	"github.com/ontoflow-io/ontoflow-e2e/tests/e2e/helpers"
	"github.com/stretchr/testify/require"
)

func TestModelRegistryPage(t *testing.T) {
	browser, _ := helpers.SetupAuthenticatedPage(t)
	defer browser.TearDown()

	require.NoError(t, browser.NavigateTo("/models"))
	require.NoError(t, browser.WaitForIdle())

	t.Run("Registry table renders", func(t *testing.T) {
		helpers.RequireVisible(t, browser.Page, "[data-testid='model-list'], table", 10*time.Second)

		rows, err := browser.Page.Locator("[data-testid='model-row'], tbody tr").Count()
		require.NoError(t, err)
		t.Logf("models listed: %d", rows)
	})

	t.Run("Model detail drawer opens", func(t *testing.T) {
		row := browser.Page.Locator("[data-testid='model-row'], tbody tr").First()
		if count, _ := row.Count(); count == 0 {
			t.Skip("no models registered")
		}
		require.NoError(t, row.Click())

		if !helpers.ExpectVisible(t, browser.Page, "[data-testid='model-detail'], [role='complementary']", 5*time.Second) {
			t.Log("⚠️  model detail drawer did not open; row may not be clickable")
			return
		}

		name, err := browser.Page.Locator("[data-testid='model-detail-name'], [data-testid='model-detail'] h2").First().TextContent()
		require.NoError(t, err)
		t.Logf("model detail: %s", name)
	})
}
