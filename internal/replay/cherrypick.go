// Package replay rebuilds historical change-sets onto the current head:
// cherry-picking a single version's own changes, and rolling the head forward
// to a past snapshot. History is append-only in both cases.
package replay

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/diff"
	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
	"github.com/danielpatrickdp/stance-vcs/internal/merge"
)

// TagCherryPick marks versions created by a successful cherry-pick.
const TagCherryPick = "cherry-pick"

// #region result
// CherryPickResult reports which of the replayed changes landed. Applied and
// Skipped together always cover the full change-set of the picked version.
type CherryPickResult struct {
	Success   bool
	Version   *graph.Version // new commit, set only on success
	Applied   []string       // field paths applied to the head snapshot
	Skipped   []string       // field paths that failed to apply
	Conflicts []merge.Conflict
	Message   string
}

// #endregion result

// #region cherry-pick
// CherryPick replays the change-set a version introduced relative to its own
// parent onto the current head. Apply failures become skipped changes with
// manual conflicts; any conflict suppresses the commit.
func CherryPick(store *graph.Store, cfg impact.Config, versionID string) CherryPickResult {
	v, ok := store.Version(versionID)
	if !ok {
		return CherryPickResult{Message: fmt.Sprintf("version %s not found", versionID)}
	}
	if v.ParentID == "" {
		return CherryPickResult{Message: fmt.Sprintf("version %s is a root commit, nothing to replay", ShortID(versionID))}
	}

	d, err := diff.Between(store, cfg, v.ParentID, v.ID)
	if err != nil {
		return CherryPickResult{Message: fmt.Sprintf("diff against parent failed: %v", err)}
	}

	head, ok := store.Head()
	if !ok {
		return CherryPickResult{Message: "current branch has no head to apply onto"}
	}

	candidate := head.Snapshot.Clone()
	var applied, skipped []string
	var conflicts []merge.Conflict

	for _, c := range d.Changes {
		if err := candidate.Apply(c.Ref, c.New); err != nil {
			skipped = append(skipped, c.Path)
			conflicts = append(conflicts, merge.Conflict{
				Field:       c.Field,
				Ref:         c.Ref,
				Path:        c.Path,
				SourceValue: c.New,
				TargetValue: c.Old,
				Strategy:    merge.Manual,
			})
			continue
		}
		applied = append(applied, c.Path)
	}

	if len(conflicts) > 0 {
		return CherryPickResult{
			Applied:   applied,
			Skipped:   skipped,
			Conflicts: conflicts,
			Message:   fmt.Sprintf("%d changes could not be applied", len(skipped)),
		}
	}

	msg := fmt.Sprintf("Cherry-pick %s: %s", ShortID(v.ID), v.Message)
	nv := store.Commit(candidate, msg, "", TagCherryPick)
	return CherryPickResult{
		Success: true,
		Version: &nv,
		Applied: applied,
		Message: fmt.Sprintf("applied %d changes", len(applied)),
	}
}

// #endregion cherry-pick

// #region short-id
// ShortID abbreviates a version id for commit messages and display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// #endregion short-id
