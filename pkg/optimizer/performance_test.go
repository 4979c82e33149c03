package optimizer

import (
	"testing"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id string, tt models.TaskType, status models.TaskStatus, effort float64, assignee string) models.Task {
	return models.Task{
		ID:              id,
		Type:            tt,
		Priority:        models.PriorityMedium,
		Status:          status,
		EstimatedEffort: effort,
		AssigneeID:      assignee,
	}
}

func TestPerformance_ScenarioB_Overload(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature), // capacity 40h
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 20, "d1"),
		task("t2", models.TaskFeature, models.StatusInProgress, 40, "d1"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)

	require.Len(t, analysis.PerformanceOptimization.Overloaded, 1)
	ov := analysis.PerformanceOptimization.Overloaded[0]
	assert.Equal(t, "Alice", ov.Name)
	assert.Equal(t, 50, ov.OverloadPercentage)
}

func TestPerformance_UnderutilizationArithmetic(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature), // capacity 40h
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 10, "d1"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)

	require.Len(t, analysis.PerformanceOptimization.Underutilized, 1)
	uu := analysis.PerformanceOptimization.Underutilized[0]
	assert.Equal(t, "Alice", uu.Name)
	assert.Equal(t, 75, uu.AvailableCapacity)
}

func TestPerformance_DoneTasksAndZeroEffortIgnored(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature),
	}
	base := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 10, "d1"),
		task("t2", models.TaskFeature, models.StatusDone, 100, "d1"),
	}

	before, err := o.AnalyzeTeam(developers, base, nil)
	require.NoError(t, err)

	withNoop := append(append([]models.Task{}, base...),
		task("t3", models.TaskFeature, models.StatusTodo, 0, "d1"))
	after, err := o.AnalyzeTeam(developers, withNoop, nil)
	require.NoError(t, err)

	assert.Equal(t, before.PerformanceOptimization.Underutilized, after.PerformanceOptimization.Underutilized)
	assert.Equal(t, before.PerformanceOptimization.Overloaded, after.PerformanceOptimization.Overloaded)
}

func TestPerformance_ZeroVelocityExcludedFromRatios(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 0, 7, 6, []string{"Go"}, models.TaskFeature),
	}
	tasks := []models.Task{
		task("t1", models.TaskBug, models.StatusInProgress, 10, "d1"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)

	assert.Empty(t, analysis.PerformanceOptimization.Overloaded)
	assert.Empty(t, analysis.PerformanceOptimization.Underutilized)
	// Still visible as a mismatch: bug work, feature preference.
	require.Len(t, analysis.PerformanceOptimization.SkillMismatches, 1)
	assert.Equal(t, "Alice", analysis.PerformanceOptimization.SkillMismatches[0].Name)
}

func TestPerformance_UnresolvedAssigneeIgnored(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature),
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 500, "ghost"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)
	assert.Empty(t, analysis.PerformanceOptimization.Overloaded)
}

func TestPerformance_RedistributionSuggestions(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature),   // overloaded
		dev("d2", "Bob", 10, 7, 6, []string{"Go"}, models.TaskFeature),     // idle, prefers feature
		dev("d3", "Cara", 10, 7, 6, []string{"Go"}, models.TaskDevops),     // idle, wrong preference
	}
	tasks := []models.Task{
		task("t1", models.TaskFeature, models.StatusInProgress, 60, "d1"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)

	require.Len(t, analysis.PerformanceOptimization.Overloaded, 1)
	suggestions := analysis.PerformanceOptimization.Overloaded[0].RedistributionSuggestions
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "Bob")

	// Overload feeds an immediate recommendation.
	require.NotEmpty(t, analysis.Recommendations.Immediate)
	assert.Contains(t, analysis.Recommendations.Immediate[0], "Alice")
}

func TestPerformance_SkillMismatch(t *testing.T) {
	o := New(DefaultConfig())
	developers := []models.Developer{
		dev("d1", "Alice", 10, 7, 6, []string{"Go"}, models.TaskFeature),
	}
	tasks := []models.Task{
		task("t1", models.TaskDevops, models.StatusTodo, 8, "d1"),
	}

	analysis, err := o.AnalyzeTeam(developers, tasks, nil)
	require.NoError(t, err)

	require.Len(t, analysis.PerformanceOptimization.SkillMismatches, 1)
	require.NotEmpty(t, analysis.Recommendations.ShortTerm)
	assert.Contains(t, analysis.Recommendations.ShortTerm[len(analysis.Recommendations.ShortTerm)-1], "Alice")
}
