package optimizer

import (
	"testing"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ScenarioD_EmptyRoster(t *testing.T) {
	o := New(DefaultConfig())

	metrics, err := o.CalculateTeamHealth(nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Zero(t, metrics.OverallHealth)
	assert.Zero(t, metrics.SkillCoverage)
	assert.Zero(t, metrics.WorkloadBalance)
	assert.Zero(t, metrics.CollaborationScore)
	assert.Empty(t, metrics.Strengths)
	assert.Empty(t, metrics.RiskFactors)
}

func TestHealth_ScoreBounds(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 10, 10, []string{"Go"}, models.TaskFeature),
		dev("d2", "Bob", 1, 1, 1, nil, models.TaskBug),
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 200, "d1"),
	}

	metrics, err := o.CalculateTeamHealth(developers, tasks, []string{"Go", "Rust"}, nil)
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"overall":       metrics.OverallHealth,
		"coverage":      metrics.SkillCoverage,
		"balance":       metrics.WorkloadBalance,
		"collaboration": metrics.CollaborationScore,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestHealth_SkillCoverage(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 8, 7, 6, []string{"Go", "Postgres"}),
	}

	metrics, err := o.CalculateTeamHealth(developers, nil, []string{"Go", "Postgres", "Rust", "Kafka"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, metrics.SkillCoverage, 0.001)
}

func TestHealth_CollaborationMean(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 8, 7, 10, nil),
		dev("d2", "Bob", 8, 7, 4, nil),
	}

	metrics, err := o.CalculateTeamHealth(developers, nil, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, metrics.CollaborationScore, 0.001)
}

func TestHealth_PerfectBalanceScores100(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, nil, models.TaskFeature),
		dev("d2", "Bob", 10, 7, 6, nil, models.TaskFeature),
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 20, "d1"),
		task("t2", models.TaskFeature, models.StatusInProgress, 20, "d2"),
	}

	metrics, err := o.CalculateTeamHealth(developers, tasks, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, metrics.WorkloadBalance, 0.001)
}

func TestHealth_OverallUsesDocumentedWeights(t *testing.T) {
	cfg := DefaultConfig()
	o := New(cfg)
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 8, []string{"Go"}, models.TaskFeature),
	}

	metrics, err := o.CalculateTeamHealth(developers, nil, []string{"Go"}, nil)
	require.NoError(t, err)

	expected := metrics.SkillCoverage*cfg.SkillCoverageWeight +
		metrics.WorkloadBalance*cfg.WorkloadBalanceWeight +
		metrics.CollaborationScore*cfg.CollaborationWeight
	assert.InDelta(t, expected, metrics.OverallHealth, 0.001)
}

func TestHealth_SprintTrend(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 8, []string{"Go"}),
	}

	rising := []models.SprintRecord{
		{Sprint: "s1", CompletedPoints: 10},
		{Sprint: "s2", CompletedPoints: 12},
		{Sprint: "s3", CompletedPoints: 20},
	}
	metrics, err := o.CalculateTeamHealth(developers, nil, nil, rising)
	require.NoError(t, err)
	assert.Contains(t, metrics.Strengths, "Sprint velocity is trending upward")

	falling := []models.SprintRecord{
		{Sprint: "s1", CompletedPoints: 20},
		{Sprint: "s2", CompletedPoints: 18},
		{Sprint: "s3", CompletedPoints: 8},
	}
	metrics, err = o.CalculateTeamHealth(developers, nil, nil, falling)
	require.NoError(t, err)
	assert.Contains(t, metrics.RiskFactors, "Sprint velocity is declining against recent sprints")

	// A single record is not a trend.
	metrics, err = o.CalculateTeamHealth(developers, nil, nil, rising[:1])
	require.NoError(t, err)
	assert.NotContains(t, metrics.Strengths, "Sprint velocity is trending upward")
}
