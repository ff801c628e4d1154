package gate

// #region violation
// ViolationType enumerates precondition failure categories.
type ViolationType string

const (
	ViolationBounds    ViolationType = "bounds"
	ViolationEmptyCore ViolationType = "empty_core"
	ViolationListSize  ViolationType = "list_size"
)

// Violation is one detected precondition failure.
type Violation struct {
	Type   ViolationType
	Field  string
	Reason string
}

// #endregion violation

// #region gate-config
// GateConfig holds precondition thresholds for snapshot admission.
type GateConfig struct {
	MaxListItems     int  `yaml:"maxListItems"`     // cap on entries per list field
	RequireIdentity  bool `yaml:"requireIdentity"`  // reject snapshots with an empty frame
	RejectOutOfRange bool `yaml:"rejectOutOfRange"` // reject weights outside [0, 100] instead of relying on clamping
}

// DefaultGateConfig returns the standard admission thresholds.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		MaxListItems:     64,
		RequireIdentity:  true,
		RejectOutOfRange: true,
	}
}

// #endregion gate-config

// #region gate-decision
// GateDecision is the output of the precondition check.
type GateDecision struct {
	Action     string // "commit" | "reject"
	Reason     string
	Violations []Violation // non-empty when rejected
}

// #endregion gate-decision
