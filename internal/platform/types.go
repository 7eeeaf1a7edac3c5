package platform

import "encoding/json"

// IDs returned by the platform are opaque strings; they exist only to chain
// follow-up calls within a test or seeding run.

// Pipeline is an orchestration pipeline as reported by /api/v1/pipelines.
type Pipeline struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Ontology is an ontology document registered with /api/v1/ontology.
type Ontology struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Format     string `json:"format,omitempty"`
	ClassCount int    `json:"class_count,omitempty"`
}

// Model is an entry in the model registry.
type Model struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Stage   string `json:"stage,omitempty"`
}

// Twin is a digital twin bound to a pipeline.
type Twin struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PipelineID string `json:"pipeline_id,omitempty"`
	State      string `json:"state,omitempty"`
}

// AlertRule is a monitoring rule that raises alerts when a metric crosses
// its threshold.
type AlertRule struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Metric    string  `json:"metric,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Severity  string  `json:"severity,omitempty"`
}

// Alert is a monitoring alert.
type Alert struct {
	ID           string `json:"id"`
	Severity     string `json:"severity,omitempty"`
	Message      string `json:"message,omitempty"`
	Acknowledged bool   `json:"acknowledged,omitempty"`
}

// ExtractionJob is a knowledge-extraction job.
type ExtractionJob struct {
	ID         string `json:"id"`
	Status     string `json:"status,omitempty"`
	SourceType string `json:"source_type,omitempty"`
}

// ToolResult is the envelope returned by POST /api/v1/agent/tools/execute.
type ToolResult struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
