// Package seed populates an OntoFlow instance with the fixtures the E2E suite
// expects: a sentinel ontology, an extraction job, demo pipelines, digital
// twins and alert rules. It is a linear script: each step checks for its sentinel name before
// creating, failures are logged and swallowed so later independent steps still
// run, and there is no rollback.
package seed

import (
	"context"
	"log"

	"github.com/ontoflow-io/ontoflow-e2e/internal/platform"
)

// Seeder runs a Plan against a platform instance.
type Seeder struct {
	client *platform.Client
	logf   func(format string, args ...interface{})
	dryRun bool
}

// Report summarizes a seeding run.
type Report struct {
	Created int
	Skipped int
	Failed  int
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithLogger replaces the default log.Printf logger.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(s *Seeder) { s.logf = logf }
}

// DryRun logs what would be created without calling the platform's write
// endpoints. Existence checks still hit the API.
func DryRun() Option {
	return func(s *Seeder) { s.dryRun = true }
}

// New creates a Seeder.
func New(client *platform.Client, opts ...Option) *Seeder {
	s := &Seeder{client: client, logf: log.Printf}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the plan sequentially. It never returns an error: per-step
// failures are recorded in the report and logged, matching the
// log-and-continue policy of the suite.
func (s *Seeder) Run(ctx context.Context, plan *Plan) *Report {
	report := &Report{}

	if plan.Ontology != nil {
		s.seedOntology(ctx, plan.Ontology, report)
	}
	if plan.ExtractionJob != nil {
		s.seedExtractionJob(ctx, plan.ExtractionJob, report)
	}

	pipelineIDs := map[string]string{}
	for _, spec := range plan.Pipelines {
		if id := s.seedPipeline(ctx, spec, report); id != "" {
			pipelineIDs[spec.Name] = id
		}
	}
	for _, spec := range plan.DigitalTwins {
		s.seedTwin(ctx, spec, pipelineIDs, report)
	}
	for _, spec := range plan.AlertRules {
		s.seedAlertRule(ctx, spec, report)
	}

	s.logf("seeding complete: %d created, %d skipped, %d failed",
		report.Created, report.Skipped, report.Failed)
	return report
}

func (s *Seeder) seedOntology(ctx context.Context, spec *OntologySpec, report *Report) {
	existing, err := s.client.ListOntologies(ctx)
	if err != nil {
		s.logf("ontology %q: list failed, skipping step: %v", spec.Name, err)
		report.Failed++
		return
	}
	for _, o := range existing {
		if o.Name == spec.Name {
			s.logf("ontology %q already present (id %s)", spec.Name, o.ID)
			report.Skipped++
			return
		}
	}
	if s.dryRun {
		s.logf("dry-run: would create ontology %q", spec.Name)
		return
	}
	created, err := s.client.UploadOntology(ctx, spec.Name, spec.Format, spec.Content)
	if err != nil {
		s.logf("ontology %q: create failed: %v", spec.Name, err)
		report.Failed++
		return
	}
	s.logf("created ontology %q (id %s)", spec.Name, created.ID)
	report.Created++
}

func (s *Seeder) seedExtractionJob(ctx context.Context, spec *ExtractionSpec, report *Report) {
	if s.dryRun {
		s.logf("dry-run: would create %s extraction job", spec.SourceType)
		return
	}
	// Extraction jobs have no stable name to check; creating another one is
	// harmless, the suite only needs at least one to exist.
	created, err := s.client.CreateExtractionJob(ctx, spec.SourceType, spec.Source)
	if err != nil {
		s.logf("extraction job: create failed: %v", err)
		report.Failed++
		return
	}
	s.logf("created extraction job (id %s, status %s)", created.ID, created.Status)
	report.Created++
}

func (s *Seeder) seedPipeline(ctx context.Context, spec PipelineSpec, report *Report) string {
	existing, err := s.client.ListPipelines(ctx)
	if err != nil {
		s.logf("pipeline %q: list failed, skipping step: %v", spec.Name, err)
		report.Failed++
		return ""
	}
	for _, p := range existing {
		if p.Name == spec.Name {
			s.logf("pipeline %q already present (id %s)", spec.Name, p.ID)
			report.Skipped++
			return p.ID
		}
	}
	if s.dryRun {
		s.logf("dry-run: would create pipeline %q", spec.Name)
		return ""
	}
	created, err := s.client.CreatePipeline(ctx, spec.Name, spec.Description)
	if err != nil {
		s.logf("pipeline %q: create failed: %v", spec.Name, err)
		report.Failed++
		return ""
	}
	s.logf("created pipeline %q (id %s)", spec.Name, created.ID)
	report.Created++
	return created.ID
}

func (s *Seeder) seedAlertRule(ctx context.Context, spec AlertRuleSpec, report *Report) {
	existing, err := s.client.ListAlertRules(ctx)
	if err != nil {
		s.logf("alert rule %q: list failed, skipping step: %v", spec.Name, err)
		report.Failed++
		return
	}
	for _, rule := range existing {
		if rule.Name == spec.Name {
			s.logf("alert rule %q already present (id %s)", spec.Name, rule.ID)
			report.Skipped++
			return
		}
	}
	if s.dryRun {
		s.logf("dry-run: would create alert rule %q", spec.Name)
		return
	}
	created, err := s.client.CreateAlertRule(ctx, spec.Name, spec.Metric, spec.Threshold, spec.Severity)
	if err != nil {
		s.logf("alert rule %q: create failed: %v", spec.Name, err)
		report.Failed++
		return
	}
	s.logf("created alert rule %q (id %s)", spec.Name, created.ID)
	report.Created++
}

func (s *Seeder) seedTwin(ctx context.Context, spec TwinSpec, pipelineIDs map[string]string, report *Report) {
	existing, err := s.client.ListTwins(ctx)
	if err != nil {
		s.logf("twin %q: list failed, skipping step: %v", spec.Name, err)
		report.Failed++
		return
	}
	for _, tw := range existing {
		if tw.Name == spec.Name {
			s.logf("twin %q already present (id %s)", spec.Name, tw.ID)
			report.Skipped++
			return
		}
	}

	if s.dryRun {
		s.logf("dry-run: would create twin %q", spec.Name)
		return
	}
	pipelineID := pipelineIDs[spec.Pipeline]
	if spec.Pipeline != "" && pipelineID == "" {
		s.logf("twin %q: pipeline %q was not seeded, skipping", spec.Name, spec.Pipeline)
		report.Failed++
		return
	}
	created, err := s.client.CreateTwin(ctx, spec.Name, pipelineID)
	if err != nil {
		s.logf("twin %q: create failed: %v", spec.Name, err)
		report.Failed++
		return
	}
	s.logf("created twin %q (id %s)", spec.Name, created.ID)
	report.Created++
}
