package spas

// Constants tuning the control loop. These describe the scheduler's own
// tuned behavior rather than a per-run choice, so nothing in the core
// reads them from a config file or a CLI flag.
const (
	// LoadPeriod is the number of timer ticks per sampling period.
	LoadPeriod = 10

	// HistorySize is the depth of the moving-average ring buffer.
	HistorySize = 10

	// HeatingFactor is the heat units added per 100% load per period.
	HeatingFactor = 10

	// CoolingFactor is the heat units removed per period.
	CoolingFactor = 3

	// AmbientTemp is the floor for VirtualTemp, in tenths of a degree.
	AmbientTemp = 250

	// TempThrottleLimit forces LOW frequency once exceeded.
	TempThrottleLimit = 750

	// OscillationWindow is the tick horizon past which a transition burst
	// is considered stale.
	OscillationWindow = 100

	// MaxOscillation is the number of transitions within the window that
	// trigger threshold widening.
	MaxOscillation = 3

	// AdaptationPeriod is the tick interval between narrowing evaluations.
	AdaptationPeriod = 500

	// adaptationPeriodSamples is AdaptationPeriod expressed in sampling
	// periods, since adaptationCounter advances once per period.
	adaptationPeriodSamples = AdaptationPeriod / LoadPeriod

	// Initial and floor values for the decision thresholds (percent).
	initialThreshLowToMed   = 30
	initialThreshMedToHigh  = 70
	threshLowToMedFloor     = 20
	threshMedToHighFloor    = 40
	threshMedToHighCeiling  = 90
	thresholdWidenStep      = 5
	thresholdNarrowStep     = 2
	thresholdMinGap         = 10
	narrowingLoadCeiling    = 20

	// QMax is the quantum assigned for HIGH frequency with neutral
	// priority; the upper bound every quantum_remaining must respect.
	QMax = 4

	// MinPriority and MaxPriority bound per-process priority (0 preferred).
	MinPriority = 0
	MaxPriority = 20

	// DefaultPriority is assigned to a process on fork.
	DefaultPriority = 10
)
