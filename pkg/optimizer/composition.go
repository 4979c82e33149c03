package optimizer

import "github.com/arnavshah/team-optimizer-go/pkg/models"

// analyzeComposition buckets the roster by experience level and tallies the
// skill distribution. An empty roster yields zero counts and empty maps.
func (o *Optimizer) analyzeComposition(developers []models.Developer) models.TeamComposition {
	levels := make(map[string]int)
	skills := make(map[string]int)

	for i := range developers {
		d := &developers[i]
		levels[o.experienceLevel(d)]++
		for _, s := range d.Profile.Strengths {
			skills[s]++
		}
	}

	return models.TeamComposition{
		TotalMembers:      len(developers),
		ExperienceLevels:  levels,
		SkillDistribution: skills,
	}
}

// experienceLevel derives a tier from the only signals the profile carries:
// delivery pace and code quality. Tenure is not modeled, so it cannot
// participate. Exactly one tier matches, so level counts always sum to the
// roster size.
func (o *Optimizer) experienceLevel(d *models.Developer) string {
	composite := d.Profile.Velocity + 2*d.Profile.CodeQuality
	switch {
	case composite >= o.cfg.LeadCompositeMin:
		return LevelLead
	case composite >= o.cfg.SeniorCompositeMin:
		return LevelSenior
	case composite >= o.cfg.MidCompositeMin:
		return LevelMid
	default:
		return LevelJunior
	}
}
