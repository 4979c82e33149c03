package optimizer

import (
	"fmt"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// synthesizeRecommendations folds the upstream analyses into three action
// horizons. Pure function of its inputs; item order follows the (already
// deterministic) upstream lists.
func (o *Optimizer) synthesizeRecommendations(gaps *models.SkillGaps, collab *models.CollaborationInsights, perf *models.PerformanceOptimization) models.TieredRecommendations {
	recs := models.TieredRecommendations{
		Immediate: []string{},
		ShortTerm: []string{},
		LongTerm:  []string{},
	}

	for _, ov := range perf.Overloaded {
		recs.Immediate = append(recs.Immediate, fmt.Sprintf(
			"Redistribute work from %s, who is %d%% over capacity", ov.Name, ov.OverloadPercentage))
	}
	for _, skill := range gaps.CriticalGaps {
		recs.Immediate = append(recs.Immediate, fmt.Sprintf(
			"Address the critical skill gap in %s", skill))
	}

	for _, pair := range collab.PairProgrammingOpportunities {
		if pair.Benefit < o.cfg.PairingBenefitCutoff {
			continue
		}
		recs.ShortTerm = append(recs.ShortTerm, fmt.Sprintf(
			"Pair %s with %s on %s", pair.Mentor, pair.Mentee, pair.Skill))
	}
	for _, mm := range perf.SkillMismatches {
		recs.ShortTerm = append(recs.ShortTerm, fmt.Sprintf(
			"Review task assignments for %s, whose current work falls outside their preferred task types", mm.Name))
	}

	for _, skill := range gaps.EmergingNeeds {
		recs.LongTerm = append(recs.LongTerm, fmt.Sprintf(
			"Build redundancy for %s, currently covered by a single developer", skill))
	}
	for _, name := range collab.CommunicationPatterns.Bottlenecks {
		recs.LongTerm = append(recs.LongTerm, fmt.Sprintf(
			"Spread the specialized knowledge held by %s across the team", name))
	}

	return recs
}
