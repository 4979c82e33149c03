package models

import "fmt"

// ValidationError describes a malformed input record. Handlers map it to a
// 400 response; the engine refuses to compute over it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidateDevelopers checks roster records. Empty rosters are valid.
func ValidateDevelopers(developers []Developer) error {
	seen := make(map[string]bool, len(developers))
	for i := range developers {
		d := &developers[i]
		if d.ID == "" {
			return invalid("developers", "developer at index %d has no id", i)
		}
		if seen[d.ID] {
			return invalid("developers", "duplicate developer id %q", d.ID)
		}
		seen[d.ID] = true

		p := d.Profile
		if p.Velocity < 0 {
			return invalid("developers", "developer %q has negative velocity", d.ID)
		}
		if p.CommitFrequency < 0 {
			return invalid("developers", "developer %q has negative commit frequency", d.ID)
		}
		if p.CodeQuality < 1 || p.CodeQuality > 10 {
			return invalid("developers", "developer %q code quality %d outside 1-10", d.ID, p.CodeQuality)
		}
		if p.Collaboration < 1 || p.Collaboration > 10 {
			return invalid("developers", "developer %q collaboration %d outside 1-10", d.ID, p.Collaboration)
		}
		for _, t := range p.PreferredTasks {
			if !ValidTaskType(t) {
				return invalid("developers", "developer %q has unknown preferred task type %q", d.ID, t)
			}
		}
	}
	return nil
}

// ValidateTasks checks backlog records. Empty backlogs are valid. Assignee ids
// are weak references and are not checked here; the engine resolves them
// against the roster of the same call.
func ValidateTasks(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if t.ID == "" {
			return invalid("tasks", "task at index %d has no id", i)
		}
		if seen[t.ID] {
			return invalid("tasks", "duplicate task id %q", t.ID)
		}
		seen[t.ID] = true

		if !ValidTaskType(t.Type) {
			return invalid("tasks", "task %q has unknown type %q", t.ID, t.Type)
		}
		if !ValidTaskPriority(t.Priority) {
			return invalid("tasks", "task %q has unknown priority %q", t.ID, t.Priority)
		}
		if !ValidTaskStatus(t.Status) {
			return invalid("tasks", "task %q has unknown status %q", t.ID, t.Status)
		}
		if t.EstimatedEffort < 0 {
			return invalid("tasks", "task %q has negative estimated effort", t.ID)
		}
	}
	return nil
}

// Validate checks the full analysis input.
func (in *AnalyzeInput) Validate() error {
	if err := ValidateDevelopers(in.Developers); err != nil {
		return err
	}
	return ValidateTasks(in.Tasks)
}

// Validate checks the full health input.
func (in *HealthInput) Validate() error {
	if err := ValidateDevelopers(in.Developers); err != nil {
		return err
	}
	if err := ValidateTasks(in.Tasks); err != nil {
		return err
	}
	for i := range in.SprintHistory {
		s := &in.SprintHistory[i]
		if s.CommittedPoints < 0 || s.CompletedPoints < 0 {
			return invalid("sprint_history", "sprint %q has negative points", s.Sprint)
		}
	}
	return nil
}
