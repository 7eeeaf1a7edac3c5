package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["run"], "run subcommand should be registered")
	assert.True(t, names["plan"], "plan subcommand should be registered")
	assert.True(t, names["version"], "version subcommand should be registered")
}

func TestPlanCommandRendersDefaultPlan(t *testing.T) {
	planFlag = "../../testdata/seed-plan.yaml"
	defer func() { planFlag = "testdata/seed-plan.yaml" }()

	require.NoError(t, planCmd.RunE(planCmd, nil))
}
