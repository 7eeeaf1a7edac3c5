package e2e

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ontoflow-io/ontoflow-e2e/tests/e2e/config"
)

// TestConnectivity verifies we can reach the platform's health endpoint
func TestConnectivity(t *testing.T) {
	cfg := config.GetConfig()
	requireBackend(t, cfg)

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Get(cfg.BaseURL + "/health")
	if err != nil {
		t.Fatalf("Failed to connect to %s/health: %v", cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Logf("health body not JSON-decodable: %v", err)
	} else {
		t.Logf("   Health status: %s", health.Status)
	}

	t.Logf("✅ Successfully connected to platform at %s", cfg.BaseURL)
}
