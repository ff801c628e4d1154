package merge

import (
	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region strategy
// Strategy names how a conflict should be (or was) resolved.
type Strategy string

const (
	UseSource   Strategy = "use-source"
	UseTarget   Strategy = "use-target"
	UseBase     Strategy = "use-base"
	MergeValues Strategy = "merge-values"
	Manual      Strategy = "manual"
)

// #endregion strategy

// #region conflict
// Conflict is a change too significant to auto-merge. The suggested
// resolution defaults to the source value; callers may override it via
// Resolve before committing a hand-built snapshot.
type Conflict struct {
	Field               string
	Ref                 stance.FieldRef
	Path                string
	SourceValue         any
	TargetValue         any
	BaseValue           any // unset: two-way merge has no ancestor
	SuggestedResolution any
	Strategy            Strategy
}

// #endregion conflict

// #region result
// Result is the outcome of a merge attempt. On conflict, Merged holds the
// partially-applied candidate for inspection only; nothing was committed.
type Result struct {
	Success        bool
	Merged         stance.Snapshot
	Version        *graph.Version // merge commit, set only on success
	Conflicts      []Conflict
	AutoResolved   []string // field paths applied automatically
	RequiresManual []string // field paths awaiting a resolution
	Message        string
}

// #endregion result
