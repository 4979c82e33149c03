package optimizer

import "github.com/arnavshah/team-optimizer-go/pkg/models"

// CollaborationSignalSource supplies the interaction proxies the collaboration
// analyzer classifies on. The default reads self-reported profile fields; a
// source backed by an observed co-commit or communication graph can be swapped
// in without changing the analyzer.
type CollaborationSignalSource interface {
	// Score returns the developer's collaboration signal on a 1-10 scale.
	Score(d *models.Developer) int
	// SharedSkillPeers returns how many other roster members share at least
	// one strength with d.
	SharedSkillPeers(d *models.Developer, roster []models.Developer) int
}

// ProfileSignals derives collaboration signals from the developer profile
// alone. It is the only source available when no interaction log exists.
type ProfileSignals struct{}

func (ProfileSignals) Score(d *models.Developer) int {
	return d.Profile.Collaboration
}

func (ProfileSignals) SharedSkillPeers(d *models.Developer, roster []models.Developer) int {
	peers := 0
	for i := range roster {
		other := &roster[i]
		if other.ID == d.ID {
			continue
		}
		for _, s := range d.Profile.Strengths {
			if other.HasStrength(s) {
				peers++
				break
			}
		}
	}
	return peers
}
