// Package merge applies one branch head's changes onto another. It diffs the
// two heads directly — no common-ancestor detection. That two-way semantics
// can attribute target-only edits to the source; hosts depend on the simpler
// behavior, so it is preserved deliberately.
package merge

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/diff"
	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
)

// TagMerge marks versions created by a successful merge.
const TagMerge = "merge"

// #region merge
// Merge computes what source adds relative to target's head, auto-applies
// every non-major change to a copy of the target snapshot, and collects major
// changes as conflicts. Conflict-free merges commit onto the target branch;
// otherwise nothing is committed and the candidate comes back for inspection.
func Merge(store *graph.Store, cfg impact.Config, source, target string) Result {
	if target == "" {
		target = store.CurrentBranch()
	}

	srcBranch, ok := store.Branch(source)
	if !ok {
		return failed(fmt.Sprintf("source branch %q not found", source))
	}
	tgtBranch, ok := store.Branch(target)
	if !ok {
		return failed(fmt.Sprintf("target branch %q not found", target))
	}
	srcHead, ok := store.Version(srcBranch.Head)
	if !ok {
		return failed(fmt.Sprintf("source branch %q has no head version", source))
	}
	tgtHead, ok := store.Version(tgtBranch.Head)
	if !ok {
		return failed(fmt.Sprintf("target branch %q has no head version", target))
	}

	// "What does source change relative to target": diff target -> source.
	d, err := diff.Between(store, cfg, tgtHead.ID, srcHead.ID)
	if err != nil {
		return failed(fmt.Sprintf("diff failed: %v", err))
	}

	candidate := tgtHead.Snapshot.Clone()
	var conflicts []Conflict
	var auto []string

	for _, c := range d.Changes {
		if c.Impact.Magnitude == impact.MagnitudeMajor {
			conflicts = append(conflicts, Conflict{
				Field:               c.Field,
				Ref:                 c.Ref,
				Path:                c.Path,
				SourceValue:         c.New,
				TargetValue:         c.Old,
				SuggestedResolution: c.New,
				Strategy:            UseSource,
			})
			continue
		}
		if err := candidate.Apply(c.Ref, c.New); err != nil {
			conflicts = append(conflicts, Conflict{
				Field:               c.Field,
				Ref:                 c.Ref,
				Path:                c.Path,
				SourceValue:         c.New,
				TargetValue:         c.Old,
				SuggestedResolution: c.New,
				Strategy:            Manual,
			})
			continue
		}
		auto = append(auto, c.Path)
	}

	if len(conflicts) > 0 {
		paths := make([]string, len(conflicts))
		for i, cf := range conflicts {
			paths[i] = cf.Path
		}
		return Result{
			Merged:         candidate,
			Conflicts:      conflicts,
			AutoResolved:   auto,
			RequiresManual: paths,
			Message:        fmt.Sprintf("%d conflicts require manual resolution", len(conflicts)),
		}
	}

	msg := fmt.Sprintf("Merge %s into %s", source, target)
	v, err := store.CommitTo(target, candidate, msg, "", TagMerge)
	if err != nil {
		return failed(fmt.Sprintf("commit merge: %v", err))
	}
	return Result{
		Success:      true,
		Merged:       candidate,
		Version:      &v,
		AutoResolved: auto,
		Message:      fmt.Sprintf("merged %d changes", len(auto)),
	}
}

func failed(msg string) Result {
	return Result{Message: msg}
}

// #endregion merge

// #region resolve
// Resolve records a caller-chosen value on the conflict and marks it manual.
// It does not re-attempt the merge; the caller applies resolutions to a
// snapshot and commits that directly.
func Resolve(c *Conflict, resolution any) {
	c.SuggestedResolution = resolution
	c.Strategy = Manual
}

// #endregion resolve
