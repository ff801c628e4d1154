package diff

import (
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region change
// ChangeType labels how a field differs. The schema is fixed, so the engine
// only ever emits Modified; Added and Removed exist for hosts that persist
// and re-render diffs.
type ChangeType string

const (
	Added    ChangeType = "added"
	Removed  ChangeType = "removed"
	Modified ChangeType = "modified"
)

// Change is one field-level difference between two snapshots.
type Change struct {
	Field  string
	Ref    stance.FieldRef
	Path   string
	Type   ChangeType
	Old    any
	New    any
	Impact impact.Impact
}

// #endregion change

// #region risk
// Risk is the coarse conflict-risk estimate for a whole diff.
type Risk string

const (
	RiskNone   Risk = "none"
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// #endregion risk

// #region summary
// Summary aggregates a change list by magnitude. Breaking counts changes that
// are major and touch identity or behavior.
type Summary struct {
	Total       int
	Minor       int
	Moderate    int
	Major       int
	Breaking    int
	Description string
}

// SemanticDiff is the derived comparison of two versions. It is computed on
// demand and never stored.
type SemanticDiff struct {
	VersionA     string
	VersionB     string
	Changes      []Change
	Summary      Summary
	ConflictRisk Risk
}

// #endregion summary
