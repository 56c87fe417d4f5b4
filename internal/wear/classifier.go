package wear

// HealthState is the discrete health of one consumable, ordered by severity
// so that aggregation is simply "take the maximum".
type HealthState int

const (
	Good HealthState = iota
	Warning
	Critical
	FailureImminent
)

func (s HealthState) String() string {
	switch s {
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	case FailureImminent:
		return "failure_imminent"
	default:
		return "good"
	}
}

// ThresholdRule maps an upper bound on remaining life to a state.
type ThresholdRule struct {
	MaxRemaining float64
	State        HealthState
}

// ThresholdProfile is an ordered rule list, severest bound first; the first
// rule whose bound covers the remaining life wins, and no match means Good.
// The three dashboard call sites historically used different cutoffs for
// nominally the same concept, so the profile is always an explicit parameter
// rather than a package default.
type ThresholdProfile struct {
	Name  string
	Rules []ThresholdRule
}

var (
	// ProfileRollup drives the alert badge on company and zone selectors.
	ProfileRollup = ThresholdProfile{
		Name: "rollup",
		Rules: []ThresholdRule{
			{MaxRemaining: 1, State: FailureImminent},
			{MaxRemaining: 10, State: Warning},
		},
	}

	// ProfileListBadge drives the badge next to each equipment in a zone list.
	ProfileListBadge = ThresholdProfile{
		Name: "list_badge",
		Rules: []ThresholdRule{
			{MaxRemaining: 192, State: Critical},
			{MaxRemaining: 360, State: Warning},
		},
	}

	// ProfileDetail drives the per-consumable panel on the equipment page.
	ProfileDetail = ThresholdProfile{
		Name: "detail",
		Rules: []ThresholdRule{
			{MaxRemaining: 0.5, State: FailureImminent},
			{MaxRemaining: 10, State: Critical},
			{MaxRemaining: 360, State: Warning},
		},
	}
)

// Assessment is the classification of one consumable.
type Assessment struct {
	State            HealthState
	RemainingHours   float64
	ConsumedFraction float64 // in [0,1]; 0 when the rated life is unusable
}

// Classify judges accumulated hours against a rated life under a profile.
// Remaining life floors at zero, and a zero or negative rated life yields a
// consumed fraction of 0 instead of an arithmetic fault.
func Classify(usedHours, ratedHours float64, profile ThresholdProfile) Assessment {
	remaining := ratedHours - usedHours
	if remaining < 0 {
		remaining = 0
	}

	var fraction float64
	if ratedHours > 0 {
		fraction = usedHours / ratedHours
		if fraction > 1 {
			fraction = 1
		}
	}

	state := Good
	for _, rule := range profile.Rules {
		if remaining <= rule.MaxRemaining {
			state = rule.State
			break
		}
	}

	return Assessment{
		State:            state,
		RemainingHours:   remaining,
		ConsumedFraction: fraction,
	}
}

// Rollup aggregates many states into one: the most severe wins. An empty
// input is Good, which is how "no equipment in this scope" renders.
func Rollup(states ...HealthState) HealthState {
	worst := Good
	for _, s := range states {
		if s > worst {
			worst = s
		}
	}
	return worst
}
