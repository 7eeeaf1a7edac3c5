// Package platform is a thin HTTP client for the OntoFlow REST API
// (http://host:port/api/v1). It is shared by the fixture seeder and the
// API-level E2E tests; it performs no retries and owns no state beyond the
// underlying http.Client.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the OntoFlow platform API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the given base URL (no trailing slash, without the
// /api/v1 suffix).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the platform.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

const maxErrorBody = 512

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response for %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(raw)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return &APIError{Status: resp.StatusCode, Method: method, Path: path, Body: snippet}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
		}
	}
	return nil
}

// Health checks GET /health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CreatePipeline creates a pipeline and returns it with its assigned ID.
func (c *Client) CreatePipeline(ctx context.Context, name, description string) (*Pipeline, error) {
	var created Pipeline
	payload := map[string]string{"name": name, "description": description}
	if err := c.do(ctx, http.MethodPost, "/api/v1/pipelines", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListPipelines returns all pipelines.
func (c *Client) ListPipelines(ctx context.Context) ([]Pipeline, error) {
	var pipelines []Pipeline
	if err := c.do(ctx, http.MethodGet, "/api/v1/pipelines", nil, &pipelines); err != nil {
		return nil, err
	}
	return pipelines, nil
}

// GetPipeline fetches one pipeline by ID.
func (c *Client) GetPipeline(ctx context.Context, id string) (*Pipeline, error) {
	var pipeline Pipeline
	if err := c.do(ctx, http.MethodGet, "/api/v1/pipelines/"+id, nil, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// DeletePipeline removes a pipeline.
func (c *Client) DeletePipeline(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/pipelines/"+id, nil, nil)
}

// UploadOntology registers an ontology document from inline content.
func (c *Client) UploadOntology(ctx context.Context, name, format, content string) (*Ontology, error) {
	var created Ontology
	payload := map[string]string{"name": name, "format": format, "content": content}
	if err := c.do(ctx, http.MethodPost, "/api/v1/ontology", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListOntologies returns all registered ontologies.
func (c *Client) ListOntologies(ctx context.Context) ([]Ontology, error) {
	var ontologies []Ontology
	if err := c.do(ctx, http.MethodGet, "/api/v1/ontology", nil, &ontologies); err != nil {
		return nil, err
	}
	return ontologies, nil
}

// GenerateOntology asks the platform to derive an ontology from tabular data.
func (c *Client) GenerateOntology(ctx context.Context, name, csvContent string) (*Ontology, error) {
	var created Ontology
	payload := map[string]string{"name": name, "source": csvContent, "source_type": "csv"}
	if err := c.do(ctx, http.MethodPost, "/api/v1/ontology/generate", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListModels returns the model registry contents.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var models []Model
	if err := c.do(ctx, http.MethodGet, "/api/v1/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// RegisterModel adds a model to the registry.
func (c *Client) RegisterModel(ctx context.Context, name, version string) (*Model, error) {
	var created Model
	payload := map[string]string{"name": name, "version": version}
	if err := c.do(ctx, http.MethodPost, "/api/v1/models", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateTwin creates a digital twin bound to a pipeline.
func (c *Client) CreateTwin(ctx context.Context, name, pipelineID string) (*Twin, error) {
	var created Twin
	payload := map[string]string{"name": name, "pipeline_id": pipelineID}
	if err := c.do(ctx, http.MethodPost, "/api/v1/digital-twins", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTwins returns all digital twins.
func (c *Client) ListTwins(ctx context.Context) ([]Twin, error) {
	var twins []Twin
	if err := c.do(ctx, http.MethodGet, "/api/v1/digital-twins", nil, &twins); err != nil {
		return nil, err
	}
	return twins, nil
}

// CreateAlertRule registers a monitoring rule.
func (c *Client) CreateAlertRule(ctx context.Context, name, metric string, threshold float64, severity string) (*AlertRule, error) {
	var created AlertRule
	payload := map[string]interface{}{
		"name":      name,
		"metric":    metric,
		"threshold": threshold,
		"severity":  severity,
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/monitoring/alert-rules", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAlertRules returns all registered monitoring rules.
func (c *Client) ListAlertRules(ctx context.Context) ([]AlertRule, error) {
	var rules []AlertRule
	if err := c.do(ctx, http.MethodGet, "/api/v1/monitoring/alert-rules", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListAlerts returns current monitoring alerts.
func (c *Client) ListAlerts(ctx context.Context) ([]Alert, error) {
	var alerts []Alert
	if err := c.do(ctx, http.MethodGet, "/api/v1/monitoring/alerts", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// AcknowledgeAlert marks an alert as acknowledged.
func (c *Client) AcknowledgeAlert(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/monitoring/alerts/"+id+"/acknowledge", nil, nil)
}

// Metrics returns the monitoring metrics snapshot as raw JSON keyed by metric
// name; the suite only asserts on presence, not shape.
func (c *Client) Metrics(ctx context.Context) (map[string]json.RawMessage, error) {
	var metrics map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/v1/monitoring/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// CreateExtractionJob starts a knowledge-extraction job over inline source
// content.
func (c *Client) CreateExtractionJob(ctx context.Context, sourceType, source string) (*ExtractionJob, error) {
	var created ExtractionJob
	payload := map[string]string{"source_type": sourceType, "source": source}
	if err := c.do(ctx, http.MethodPost, "/api/v1/extraction/jobs", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetExtractionJob fetches one extraction job by ID.
func (c *Client) GetExtractionJob(ctx context.Context, id string) (*ExtractionJob, error) {
	var job ExtractionJob
	if err := c.do(ctx, http.MethodGet, "/api/v1/extraction/jobs/"+id, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ExecuteTool invokes the generic agent tool endpoint with
// {tool_name, input}. Most backend actions are reachable this way.
func (c *Client) ExecuteTool(ctx context.Context, toolName string, input interface{}) (*ToolResult, error) {
	var result ToolResult
	payload := map[string]interface{}{"tool_name": toolName, "input": input}
	if err := c.do(ctx, http.MethodPost, "/api/v1/agent/tools/execute", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
