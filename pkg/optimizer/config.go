package optimizer

// Config collects every heuristic constant used by the analyzers. The values
// are tunable without changing any algorithm shape; DefaultConfig documents the
// shipped calibration.
type Config struct {
	// HoursPerStoryPoint converts sprint velocity into an hour budget.
	HoursPerStoryPoint float64

	// Experience bucketing runs on the composite velocity + 2*codeQuality.
	LeadCompositeMin   int
	SeniorCompositeMin int
	MidCompositeMin    int

	// Collaboration tiers (1-10 scale).
	ConnectorCollabMin int // connectors score at or above this
	IsolatedCollabMax  int // isolated score at or below this

	// ConnectorClusterMin is how many other developers a connector must share a
	// strength with.
	ConnectorClusterMin int

	// BottleneckMaxCoverage is the holder count at or below which a skill is
	// considered scarce enough to make a low-sharing holder a bottleneck.
	BottleneckMaxCoverage int

	// UnderutilizedRatio flags developers loaded below this fraction of capacity.
	UnderutilizedRatio float64

	// PairingBenefitCutoff is the minimum benefit for a pairing opportunity to
	// surface as a short-term recommendation.
	PairingBenefitCutoff float64

	// Health score weights; they should sum to 1.
	SkillCoverageWeight   float64
	WorkloadBalanceWeight float64
	CollaborationWeight   float64

	// Thresholds for templated strength / risk statements.
	HealthStrengthMin float64
	HealthRiskMax     float64

	// SprintTrendTolerance is the relative change in completed points below
	// which the trend counts as stable.
	SprintTrendTolerance float64
}

// DefaultConfig returns the shipped calibration.
func DefaultConfig() Config {
	return Config{
		HoursPerStoryPoint:    4,
		LeadCompositeMin:      28,
		SeniorCompositeMin:    22,
		MidCompositeMin:       14,
		ConnectorCollabMin:    8,
		IsolatedCollabMax:     3,
		ConnectorClusterMin:   2,
		BottleneckMaxCoverage: 2,
		UnderutilizedRatio:    0.5,
		PairingBenefitCutoff:  5.0,
		SkillCoverageWeight:   0.35,
		WorkloadBalanceWeight: 0.35,
		CollaborationWeight:   0.30,
		HealthStrengthMin:     75,
		HealthRiskMax:         40,
		SprintTrendTolerance:  0.1,
	}
}

// Experience level names used in TeamComposition.ExperienceLevels.
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelLead   = "lead"
)
