package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeveloper(id string) Developer {
	return Developer{
		ID:   id,
		Name: "Dev " + id,
		Profile: Profile{
			Velocity:       8,
			Strengths:      []string{"Go"},
			PreferredTasks: []TaskType{TaskFeature},
			CodeQuality:    7,
			Collaboration:  6,
		},
	}
}

func validTask(id string) Task {
	return Task{
		ID:              id,
		Type:            TaskFeature,
		Priority:        PriorityMedium,
		Status:          StatusTodo,
		EstimatedEffort: 8,
	}
}

func TestValidate_AcceptsEmptyInput(t *testing.T) {
	in := AnalyzeInput{}
	assert.NoError(t, in.Validate())
}

func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	in := AnalyzeInput{
		Developers:   []Developer{validDeveloper("d1"), validDeveloper("d2")},
		Tasks:        []Task{validTask("t1")},
		Requirements: []string{"Go"},
	}
	assert.NoError(t, in.Validate())
}

func TestValidate_RejectsBadDevelopers(t *testing.T) {
	cases := map[string]func(*Developer){
		"missing id":          func(d *Developer) { d.ID = "" },
		"negative velocity":   func(d *Developer) { d.Profile.Velocity = -1 },
		"negative commits":    func(d *Developer) { d.Profile.CommitFrequency = -3 },
		"quality below scale": func(d *Developer) { d.Profile.CodeQuality = 0 },
		"quality above scale": func(d *Developer) { d.Profile.CodeQuality = 11 },
		"collab below scale":  func(d *Developer) { d.Profile.Collaboration = 0 },
		"bad preferred type":  func(d *Developer) { d.Profile.PreferredTasks = []TaskType{"design"} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := validDeveloper("d1")
			mutate(&d)
			err := ValidateDevelopers([]Developer{d})
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidate_RejectsDuplicateDeveloperIDs(t *testing.T) {
	err := ValidateDevelopers([]Developer{validDeveloper("d1"), validDeveloper("d1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate developer id")
}

func TestValidate_RejectsBadTasks(t *testing.T) {
	cases := map[string]func(*Task){
		"missing id":      func(tk *Task) { tk.ID = "" },
		"bad type":        func(tk *Task) { tk.Type = "chore" },
		"bad priority":    func(tk *Task) { tk.Priority = "urgent" },
		"bad status":      func(tk *Task) { tk.Status = "blocked" },
		"negative effort": func(tk *Task) { tk.EstimatedEffort = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tk := validTask("t1")
			mutate(&tk)
			err := ValidateTasks([]Task{tk})
			require.Error(t, err)
		})
	}
}

func TestValidate_RejectsDuplicateTaskIDs(t *testing.T) {
	err := ValidateTasks([]Task{validTask("t1"), validTask("t1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task id")
}

func TestValidate_HealthInputSprintHistory(t *testing.T) {
	in := HealthInput{
		SprintHistory: []SprintRecord{{Sprint: "s1", CompletedPoints: -2}},
	}
	require.Error(t, in.Validate())
}

func TestTaskActive(t *testing.T) {
	tk := validTask("t1")
	assert.True(t, tk.Active())
	tk.Status = StatusDone
	assert.False(t, tk.Active())
}
