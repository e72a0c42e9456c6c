package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_3x3(t *testing.T) {
	cfg, err := loadScenario("scenarios/3x3.yaml")
	require.NoError(t, err)

	assert.Len(t, cfg.Grid, 3)
	assert.Equal(t, 0, cfg.Start.X)
	assert.Equal(t, 2, cfg.Goal.X)
	assert.Equal(t, float64(1), cfg.Epsilon.Initial)
}

func TestScenarioConfig_BlockedGrid(t *testing.T) {
	cfg := &scenarioConfig{Grid: []string{".#.", "..."}}
	blocked := cfg.blockedGrid()

	require.Len(t, blocked, 2)
	assert.False(t, blocked[0][0])
	assert.True(t, blocked[0][1])
	assert.False(t, blocked[1][2])
}
