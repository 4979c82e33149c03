package optimizer

import (
	"sort"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// analyzeCollaboration classifies communication roles and finds mentoring
// matches from profile-derived signals. All lists keep roster order for equal
// keys, so output is deterministic.
func (o *Optimizer) analyzeCollaboration(developers []models.Developer) models.CollaborationInsights {
	insights := models.CollaborationInsights{
		PairProgrammingOpportunities: []models.PairingOpportunity{},
		CommunicationPatterns: models.CommunicationPatterns{
			Connectors:  []string{},
			Isolated:    []string{},
			Bottlenecks: []string{},
		},
		KnowledgeSharingNeeds: []string{},
	}

	holders, skillOrder := skillHolders(developers)

	for i := range developers {
		d := &developers[i]
		score := o.signals.Score(d)

		if score >= o.cfg.ConnectorCollabMin &&
			o.signals.SharedSkillPeers(d, developers) >= o.cfg.ConnectorClusterMin {
			insights.CommunicationPatterns.Connectors = append(insights.CommunicationPatterns.Connectors, d.Name)
		}
		if score <= o.cfg.IsolatedCollabMax {
			insights.CommunicationPatterns.Isolated = append(insights.CommunicationPatterns.Isolated, d.Name)
		}
		if score < o.cfg.ConnectorCollabMin && o.holdsScarceSkill(d, holders) {
			insights.CommunicationPatterns.Bottlenecks = append(insights.CommunicationPatterns.Bottlenecks, d.Name)
		}
	}

	// Singleton skills whose sole holder shares little are knowledge silos.
	for _, skill := range skillOrder {
		hs := holders[skill]
		if len(hs) == 1 && o.signals.Score(hs[0]) < o.cfg.ConnectorCollabMin {
			insights.KnowledgeSharingNeeds = append(insights.KnowledgeSharingNeeds, skill)
		}
	}

	insights.PairProgrammingOpportunities = o.pairingOpportunities(developers, holders, skillOrder)
	return insights
}

// skillHolders maps each strength tag to its holders, preserving first-seen
// order of the tags for deterministic iteration.
func skillHolders(developers []models.Developer) (map[string][]*models.Developer, []string) {
	holders := make(map[string][]*models.Developer)
	var order []string
	for i := range developers {
		d := &developers[i]
		for _, s := range d.Profile.Strengths {
			if _, ok := holders[s]; !ok {
				order = append(order, s)
			}
			holders[s] = append(holders[s], d)
		}
	}
	return holders, order
}

// holdsScarceSkill reports whether d holds any skill with few enough holders
// team-wide that losing d would strand it.
func (o *Optimizer) holdsScarceSkill(d *models.Developer, holders map[string][]*models.Developer) bool {
	for _, s := range d.Profile.Strengths {
		if n := len(holders[s]); n > 0 && n <= o.cfg.BottleneckMaxCoverage {
			return true
		}
	}
	return false
}

// pairingOpportunities matches each skill holder (mentor) with developers who
// lack the skill but share a preferred task type with the mentor, a proxy for
// interest. Benefit grows with mentor code quality and with skill scarcity.
func (o *Optimizer) pairingOpportunities(developers []models.Developer, holders map[string][]*models.Developer, skillOrder []string) []models.PairingOpportunity {
	pairs := []models.PairingOpportunity{}
	total := len(developers)
	if total == 0 {
		return pairs
	}

	for _, skill := range skillOrder {
		coverage := len(holders[skill])
		scarcity := float64(total-coverage) / float64(total)
		for _, mentor := range holders[skill] {
			for i := range developers {
				mentee := &developers[i]
				if mentee.ID == mentor.ID || mentee.HasStrength(skill) {
					continue
				}
				if !sharesPreferredTaskType(mentor, mentee) {
					continue
				}
				benefit := float64(mentor.Profile.CodeQuality) * (0.5 + scarcity)
				pairs = append(pairs, models.PairingOpportunity{
					Mentor:  mentor.Name,
					Mentee:  mentee.Name,
					Skill:   skill,
					Benefit: benefit,
				})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Benefit > pairs[j].Benefit
	})
	return pairs
}

func sharesPreferredTaskType(a, b *models.Developer) bool {
	for _, t := range a.Profile.PreferredTasks {
		if b.PrefersTaskType(t) {
			return true
		}
	}
	return false
}
