package optimizer

import (
	"fmt"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// analyzeSkillGaps finds required skills with no coverage (critical gaps) and
// with a single point of failure (emerging needs). Order follows the
// requirements list; duplicate requirement entries are collapsed.
func (o *Optimizer) analyzeSkillGaps(developers []models.Developer, requirements []string) models.SkillGaps {
	gaps := models.SkillGaps{
		CriticalGaps:    []string{},
		EmergingNeeds:   []string{},
		Recommendations: []string{},
	}

	seen := make(map[string]bool, len(requirements))
	for _, skill := range requirements {
		if seen[skill] {
			continue
		}
		seen[skill] = true

		switch skillCoverage(developers, skill) {
		case 0:
			gaps.CriticalGaps = append(gaps.CriticalGaps, skill)
		case 1:
			gaps.EmergingNeeds = append(gaps.EmergingNeeds, skill)
		}
	}

	for _, skill := range gaps.CriticalGaps {
		gaps.Recommendations = append(gaps.Recommendations,
			fmt.Sprintf("Hire or train for %s: no current team member covers it", skill))
	}
	for _, skill := range gaps.EmergingNeeds {
		gaps.Recommendations = append(gaps.Recommendations,
			fmt.Sprintf("Cross-train a second developer in %s to remove a single point of failure", skill))
	}

	return gaps
}
