package optimizer

import (
	"fmt"
	"math"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// CalculateTeamHealth derives the four headline scores. Tasks and requirements
// feed the workload and coverage sub-scores; sprintHistory is optional and only
// shifts the narrative findings. An empty roster returns all zeros with empty
// findings and no error.
func (o *Optimizer) CalculateTeamHealth(developers []models.Developer, tasks []models.Task, requirements []string, sprintHistory []models.SprintRecord) (*models.TeamHealthMetrics, error) {
	in := models.HealthInput{Developers: developers, Tasks: tasks, Requirements: requirements, SprintHistory: sprintHistory}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	metrics := &models.TeamHealthMetrics{
		Strengths:   []string{},
		RiskFactors: []string{},
	}
	if len(developers) == 0 {
		return metrics, nil
	}

	metrics.SkillCoverage = o.skillCoverageScore(developers, requirements)
	metrics.WorkloadBalance = o.workloadBalanceScore(developers, tasks)
	metrics.CollaborationScore = o.collaborationMeanScore(developers)
	metrics.OverallHealth = clampScore(
		metrics.SkillCoverage*o.cfg.SkillCoverageWeight +
			metrics.WorkloadBalance*o.cfg.WorkloadBalanceWeight +
			metrics.CollaborationScore*o.cfg.CollaborationWeight)

	o.narrateHealth(metrics)
	o.narrateSprintTrend(metrics, sprintHistory)
	return metrics, nil
}

// skillCoverageScore is the percentage of required skills held by at least one
// team member. With nothing required, nothing is missing.
func (o *Optimizer) skillCoverageScore(developers []models.Developer, requirements []string) float64 {
	distinct := make(map[string]bool, len(requirements))
	covered := 0
	for _, skill := range requirements {
		if distinct[skill] {
			continue
		}
		distinct[skill] = true
		if skillCoverage(developers, skill) > 0 {
			covered++
		}
	}
	if len(distinct) == 0 {
		return 100
	}
	return clampScore(float64(covered) / float64(len(distinct)) * 100)
}

// workloadBalanceScore measures how evenly load/capacity ratios spread across
// the team: 100 when the standard deviation is zero, 0 when it reaches the
// mean. Zero-capacity developers are excluded.
func (o *Optimizer) workloadBalanceScore(developers []models.Developer, tasks []models.Task) float64 {
	loads := o.computeLoads(developers, tasks)

	var ratios []float64
	for _, dl := range loads {
		if dl.capacity > 0 {
			ratios = append(ratios, dl.load/dl.capacity)
		}
	}
	if len(ratios) == 0 {
		return 100
	}

	var sum float64
	for _, r := range ratios {
		sum += r
	}
	if sum == 0 {
		return 100 // nobody loaded is perfectly even
	}
	mean := sum / float64(len(ratios))

	var varianceSum float64
	for _, r := range ratios {
		diff := r - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(ratios)))

	return clampScore((1.0 - stdDev/mean) * 100.0)
}

// collaborationMeanScore rescales the mean 1-10 collaboration score to 0-100.
func (o *Optimizer) collaborationMeanScore(developers []models.Developer) float64 {
	var sum float64
	for i := range developers {
		sum += float64(o.signals.Score(&developers[i]))
	}
	return clampScore(sum / float64(len(developers)) * 10)
}

// narrateHealth appends one templated sentence per sub-score crossing the
// strength or risk threshold.
func (o *Optimizer) narrateHealth(m *models.TeamHealthMetrics) {
	type subScore struct {
		value    float64
		strength string
		risk     string
	}
	scores := []subScore{
		{m.SkillCoverage,
			"Project-required skills are well covered across the team",
			fmt.Sprintf("Skill coverage is low (%.0f%%); key project skills are missing or thin", m.SkillCoverage)},
		{m.WorkloadBalance,
			"Work is distributed evenly across the team",
			fmt.Sprintf("Workload is unevenly distributed (balance %.0f%%)", m.WorkloadBalance)},
		{m.CollaborationScore,
			"The team reports strong collaboration habits",
			fmt.Sprintf("Collaboration is weak (score %.0f%%); knowledge may be siloed", m.CollaborationScore)},
	}
	for _, s := range scores {
		if s.value >= o.cfg.HealthStrengthMin {
			m.Strengths = append(m.Strengths, s.strength)
		} else if s.value <= o.cfg.HealthRiskMax {
			m.RiskFactors = append(m.RiskFactors, s.risk)
		}
	}
}

// narrateSprintTrend compares completed points of the last sprint against the
// mean of the preceding ones. Fewer than two records changes nothing.
func (o *Optimizer) narrateSprintTrend(m *models.TeamHealthMetrics, history []models.SprintRecord) {
	if len(history) < 2 {
		return
	}

	var prior float64
	for _, s := range history[:len(history)-1] {
		prior += s.CompletedPoints
	}
	prior /= float64(len(history) - 1)
	latest := history[len(history)-1].CompletedPoints

	if prior == 0 {
		if latest > 0 {
			m.Strengths = append(m.Strengths, "Sprint velocity is trending upward")
		}
		return
	}

	change := (latest - prior) / prior
	switch {
	case change > o.cfg.SprintTrendTolerance:
		m.Strengths = append(m.Strengths, "Sprint velocity is trending upward")
	case change < -o.cfg.SprintTrendTolerance:
		m.RiskFactors = append(m.RiskFactors, "Sprint velocity is declining against recent sprints")
	}
}
