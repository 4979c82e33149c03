package optimizer

import (
	"fmt"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// devLoad is the per-developer workload picture for one analysis call.
type devLoad struct {
	dev       *models.Developer
	capacity  float64 // hours per sprint, velocity derived
	load      float64 // hours of assigned non-done work
	taskTypes []models.TaskType
}

// optimizePerformance compares assigned effort against velocity-derived
// capacity. Developers with zero capacity are excluded from the ratio math and
// can only surface as skill mismatches.
func (o *Optimizer) optimizePerformance(developers []models.Developer, tasks []models.Task) models.PerformanceOptimization {
	out := models.PerformanceOptimization{
		Underutilized:   []models.UnderutilizedDeveloper{},
		Overloaded:      []models.OverloadedDeveloper{},
		SkillMismatches: []models.SkillMismatch{},
	}

	loads := o.computeLoads(developers, tasks)

	// Underutilized first: overload suggestions point at them.
	var spare []*devLoad
	for _, dl := range loads {
		if dl.capacity <= 0 {
			continue
		}
		if dl.load < dl.capacity*o.cfg.UnderutilizedRatio {
			spare = append(spare, dl)
			out.Underutilized = append(out.Underutilized, models.UnderutilizedDeveloper{
				Name:              dl.dev.Name,
				AvailableCapacity: roundPct((dl.capacity - dl.load) / dl.capacity * 100),
			})
		}
	}

	for _, dl := range loads {
		if dl.capacity <= 0 || dl.load <= dl.capacity {
			continue
		}
		out.Overloaded = append(out.Overloaded, models.OverloadedDeveloper{
			Name:                      dl.dev.Name,
			OverloadPercentage:        roundPct((dl.load - dl.capacity) / dl.capacity * 100),
			RedistributionSuggestions: redistributionSuggestions(dl, spare),
		})
	}

	for _, dl := range loads {
		if hasMismatchedTask(dl) {
			out.SkillMismatches = append(out.SkillMismatches, models.SkillMismatch{Name: dl.dev.Name})
		}
	}

	return out
}

// computeLoads resolves task assignees against this call's roster; tasks whose
// assignee id matches nobody contribute to no one's load.
func (o *Optimizer) computeLoads(developers []models.Developer, tasks []models.Task) []*devLoad {
	byID := make(map[string]*devLoad, len(developers))
	loads := make([]*devLoad, 0, len(developers))
	for i := range developers {
		d := &developers[i]
		dl := &devLoad{
			dev:      d,
			capacity: float64(d.Profile.Velocity) * o.cfg.HoursPerStoryPoint,
		}
		byID[d.ID] = dl
		loads = append(loads, dl)
	}

	for i := range tasks {
		t := &tasks[i]
		if !t.Active() || t.AssigneeID == "" {
			continue
		}
		dl, ok := byID[t.AssigneeID]
		if !ok {
			continue
		}
		dl.load += t.EstimatedEffort
		dl.taskTypes = append(dl.taskTypes, t.Type)
	}
	return loads
}

// redistributionSuggestions names underutilized developers who prefer at least
// one task type the overloaded developer currently carries.
func redistributionSuggestions(overloaded *devLoad, spare []*devLoad) []string {
	suggestions := []string{}
	for _, candidate := range spare {
		if candidate.dev.ID == overloaded.dev.ID {
			continue
		}
		for _, tt := range overloaded.taskTypes {
			if candidate.dev.PrefersTaskType(tt) {
				suggestions = append(suggestions, fmt.Sprintf(
					"Move %s work from %s to %s, who has spare capacity",
					tt, overloaded.dev.Name, candidate.dev.Name))
				break
			}
		}
	}
	return suggestions
}

func hasMismatchedTask(dl *devLoad) bool {
	if len(dl.taskTypes) == 0 {
		return false
	}
	for _, tt := range dl.taskTypes {
		if !dl.dev.PrefersTaskType(tt) {
			return true
		}
	}
	return false
}
