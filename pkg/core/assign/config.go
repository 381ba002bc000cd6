package assign

// EngineConfig contains the tunable thresholds for the assignment engine.
// All values that used to be magic literals in the algorithm live here so
// they can be adjusted or tested independently of the algorithm itself.
type EngineConfig struct {
	// SoftTarget is the desired number of volunteers per shift. Once a shift
	// reaches this headcount within a pass, the pass moves on to the next
	// shift; later passes may still grow it up to HardCeiling.
	SoftTarget int

	// HardCeiling is the maximum number of volunteers a shift may ever hold.
	HardCeiling int

	// MaxPasses bounds the number of sweeps over the shift list. The
	// algorithm normally stops earlier, when a full pass makes no new
	// assignments.
	MaxPasses int

	// SplitWeekday is the weekday index (0 = Sunday) whose shifts split into
	// independent morning and evening waves.
	SplitWeekday int

	// EveningStartHour is the start hour (0-23) at or after which a shift on
	// the split weekday counts as the evening wave.
	EveningStartHour int
}

// DefaultEngineConfig returns the production thresholds: target 3 volunteers
// per shift with a ceiling of 5, at most 10 passes, and Tuesday split into
// waves at 16:00.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SoftTarget:       3,
		HardCeiling:      5,
		MaxPasses:        10,
		SplitWeekday:     2,
		EveningStartHour: 16,
	}
}
