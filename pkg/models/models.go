package models

// TaskType categorizes a backlog task.
type TaskType string

const (
	TaskFeature  TaskType = "feature"
	TaskBug      TaskType = "bug"
	TaskRefactor TaskType = "refactor"
	TaskDocs     TaskType = "docs"
	TaskTest     TaskType = "test"
	TaskDevops   TaskType = "devops"
)

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskFeature, TaskBug, TaskRefactor, TaskDocs, TaskTest, TaskDevops:
		return true
	}
	return false
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// ValidTaskPriority reports whether p is a known priority.
func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// ValidTaskStatus reports whether s is a known status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// Profile holds the self-reported working profile of a developer.
type Profile struct {
	Velocity        int        `json:"velocity"`         // story points per sprint
	Strengths       []string   `json:"strengths"`        // skill tags, unique
	PreferredTasks  []TaskType `json:"preferred_tasks"`  // task types the dev gravitates to
	CommitFrequency int        `json:"commit_frequency"` // commits per week
	CodeQuality     int        `json:"code_quality"`     // 1-10
	Collaboration   int        `json:"collaboration"`    // 1-10
}

// Developer represents a roster member
type Developer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty"`
	Profile Profile `json:"profile"`
}

// HasStrength reports whether the developer lists skill among their strengths.
func (d *Developer) HasStrength(skill string) bool {
	for _, s := range d.Profile.Strengths {
		if s == skill {
			return true
		}
	}
	return false
}

// PrefersTaskType reports whether the developer lists t as a preferred task type.
func (d *Developer) PrefersTaskType(t TaskType) bool {
	for _, p := range d.Profile.PreferredTasks {
		if p == t {
			return true
		}
	}
	return false
}

// Task represents a backlog item
type Task struct {
	ID              string       `json:"id"`
	Title           string       `json:"title,omitempty"`
	Type            TaskType     `json:"type"`
	Priority        TaskPriority `json:"priority"`
	Status          TaskStatus   `json:"status"`
	EstimatedEffort float64      `json:"estimated_effort"` // hours
	AssigneeID      string       `json:"assignee_id,omitempty"`
}

// Active reports whether the task still consumes capacity.
func (t *Task) Active() bool {
	return t.Status != StatusDone
}

// SprintRecord is one sprint's outcome, used for trend-sensitive health scoring.
type SprintRecord struct {
	Sprint          string  `json:"sprint"`
	CommittedPoints float64 `json:"committed_points"`
	CompletedPoints float64 `json:"completed_points"`
}

// TeamComposition summarizes roster makeup
type TeamComposition struct {
	TotalMembers      int            `json:"total_members"`
	ExperienceLevels  map[string]int `json:"experience_levels"`
	SkillDistribution map[string]int `json:"skill_distribution"`
}

// SkillGaps lists uncovered and thinly covered required skills
type SkillGaps struct {
	CriticalGaps    []string `json:"critical_gaps"`
	EmergingNeeds   []string `json:"emerging_needs"`
	Recommendations []string `json:"recommendations"`
}

// PairingOpportunity is a mentor/mentee match on a specific skill
type PairingOpportunity struct {
	Mentor  string  `json:"mentor"`
	Mentee  string  `json:"mentee"`
	Skill   string  `json:"skill"`
	Benefit float64 `json:"benefit"`
}

// CommunicationPatterns classifies developers by collaboration role
type CommunicationPatterns struct {
	Connectors  []string `json:"connectors"`
	Isolated    []string `json:"isolated"`
	Bottlenecks []string `json:"bottlenecks"`
}

// CollaborationInsights is the collaboration analyzer output
type CollaborationInsights struct {
	PairProgrammingOpportunities []PairingOpportunity  `json:"pair_programming_opportunities"`
	CommunicationPatterns        CommunicationPatterns `json:"communication_patterns"`
	KnowledgeSharingNeeds        []string              `json:"knowledge_sharing_needs"`
}

// UnderutilizedDeveloper has spare capacity this period
type UnderutilizedDeveloper struct {
	Name              string `json:"name"`
	AvailableCapacity int    `json:"available_capacity"` // percent
}

// OverloadedDeveloper carries more assigned effort than capacity
type OverloadedDeveloper struct {
	Name                      string   `json:"name"`
	OverloadPercentage        int      `json:"overload_percentage"`
	RedistributionSuggestions []string `json:"redistribution_suggestions"`
}

// SkillMismatch flags a developer assigned work outside their preferred task types
type SkillMismatch struct {
	Name string `json:"name"`
}

// PerformanceOptimization is the workload analyzer output
type PerformanceOptimization struct {
	Underutilized   []UnderutilizedDeveloper `json:"underutilized"`
	Overloaded      []OverloadedDeveloper    `json:"overloaded"`
	SkillMismatches []SkillMismatch          `json:"skill_mismatches"`
}

// TieredRecommendations groups action items by horizon
type TieredRecommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// TeamOptimizationAnalysis is the full engine output, recomputed each call
type TeamOptimizationAnalysis struct {
	TeamComposition         TeamComposition         `json:"team_composition"`
	SkillGaps               SkillGaps               `json:"skill_gaps"`
	CollaborationInsights   CollaborationInsights   `json:"collaboration_insights"`
	PerformanceOptimization PerformanceOptimization `json:"performance_optimization"`
	Recommendations         TieredRecommendations   `json:"recommendations"`
}

// TeamHealthMetrics holds the four headline scores plus narrative findings
type TeamHealthMetrics struct {
	OverallHealth      float64  `json:"overall_health"`
	SkillCoverage      float64  `json:"skill_coverage"`
	WorkloadBalance    float64  `json:"workload_balance"`
	CollaborationScore float64  `json:"collaboration_score"`
	Strengths          []string `json:"strengths"`
	RiskFactors        []string `json:"risk_factors"`
}

// AnalyzeInput is the request body for the analysis endpoints
type AnalyzeInput struct {
	Developers   []Developer `json:"developers"`
	Tasks        []Task      `json:"tasks"`
	Requirements []string    `json:"requirements"`
}

// HealthInput is the request body for the team-health endpoint
type HealthInput struct {
	Developers    []Developer    `json:"developers"`
	Tasks         []Task         `json:"tasks"`
	Requirements  []string       `json:"requirements"`
	SprintHistory []SprintRecord `json:"sprint_history,omitempty"`
}
