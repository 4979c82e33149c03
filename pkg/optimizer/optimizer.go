package optimizer

import (
	"math"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// Optimizer runs the team composition and optimization analysis. It carries
// only configuration; every method is a pure function of its arguments and is
// safe to call concurrently.
type Optimizer struct {
	cfg     Config
	signals CollaborationSignalSource
}

// New creates an optimizer with the given configuration, reading collaboration
// signals from developer profiles.
func New(cfg Config) *Optimizer {
	return &Optimizer{cfg: cfg, signals: ProfileSignals{}}
}

// NewWithSignals creates an optimizer that reads collaboration signals from an
// alternative source, e.g. an observed interaction graph.
func NewWithSignals(cfg Config, src CollaborationSignalSource) *Optimizer {
	return &Optimizer{cfg: cfg, signals: src}
}

// AnalyzeTeam computes the full optimization analysis for a roster, its task
// backlog and the project's required skills. The result is freshly allocated on
// every call; identical inputs produce deep-equal output.
func (o *Optimizer) AnalyzeTeam(developers []models.Developer, tasks []models.Task, requirements []string) (*models.TeamOptimizationAnalysis, error) {
	in := models.AnalyzeInput{Developers: developers, Tasks: tasks, Requirements: requirements}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	composition := o.analyzeComposition(developers)
	gaps := o.analyzeSkillGaps(developers, requirements)
	collab := o.analyzeCollaboration(developers)
	perf := o.optimizePerformance(developers, tasks)
	recs := o.synthesizeRecommendations(&gaps, &collab, &perf)

	return &models.TeamOptimizationAnalysis{
		TeamComposition:         composition,
		SkillGaps:               gaps,
		CollaborationInsights:   collab,
		PerformanceOptimization: perf,
		Recommendations:         recs,
	}, nil
}

// skillCoverage counts, per required skill, the developers holding it.
// Requirement order is preserved by iterating the requirements slice.
func skillCoverage(developers []models.Developer, skill string) int {
	count := 0
	for i := range developers {
		if developers[i].HasStrength(skill) {
			count++
		}
	}
	return count
}

// clampScore bounds a score to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundPct rounds to the nearest whole percent.
func roundPct(v float64) int {
	return int(math.Round(v))
}
