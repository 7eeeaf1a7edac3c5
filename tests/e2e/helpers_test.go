package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ontoflow-io/ontoflow-e2e/tests/e2e/config"
)

// requireBackend skips the test when the platform is not reachable, so the
// suite stays green on machines without a running OntoFlow instance.
func requireBackend(t *testing.T, cfg *config.TestConfig) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(cfg.BaseURL + "/health")
	if err != nil {
		t.Skipf("platform not reachable at %s: %v", cfg.BaseURL, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("platform health check returned %d at %s", resp.StatusCode, cfg.BaseURL)
	}
}

// uniqueName returns a fixture name that cannot collide across parallel
// workers or repeated runs.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, uuid.NewString()[:8])
}

// Inline fixtures mirror the sample data the UI flows consume. They exist
// only for the duration of one test.
const equipmentCSV = `equipment_id,type,location,flow_rate
PMP-001,pump,hall-a,42.5
PMP-002,pump,hall-b,38.1
SNS-001,sensor,hall-a,
`

const plantTurtle = `@prefix ex: <http://example.org/plant#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

ex:Equipment a owl:Class .
ex:Pump a owl:Class ; rdfs:subClassOf ex:Equipment .
ex:monitors a owl:ObjectProperty ; rdfs:domain ex:Sensor ; rdfs:range ex:Pump .
`
