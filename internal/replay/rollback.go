package replay

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
)

// TagRollback marks versions created by a rollback.
const TagRollback = "rollback"

// #region result
// RollbackResult reports a forward rollback: a new commit whose snapshot
// equals the target's. RolledBack lists the ids the new head supersedes;
// they all remain in history.
type RollbackResult struct {
	Success    bool
	Version    *graph.Version
	RolledBack []string
	Message    string
}

// #endregion result

// #region rollback
// Rollback walks parent links back from the current head looking for toID.
// If found, the target's own snapshot is committed as a brand-new version;
// nothing is truncated or rewritten. Targets outside the current chain fail.
func Rollback(store *graph.Store, toID string) RollbackResult {
	target, ok := store.Version(toID)
	if !ok {
		return RollbackResult{Message: fmt.Sprintf("version %s not found", toID)}
	}

	head, ok := store.Head()
	if !ok {
		return RollbackResult{Message: "current branch has no head"}
	}

	var superseded []string
	found := false
	for id := head.ID; id != ""; {
		if id == toID {
			found = true
			break
		}
		v, ok := store.Version(id)
		if !ok {
			break
		}
		superseded = append(superseded, id)
		id = v.ParentID
	}
	if !found {
		return RollbackResult{
			Message: fmt.Sprintf("version %s is not in the history chain of %s", ShortID(toID), store.CurrentBranch()),
		}
	}

	msg := fmt.Sprintf("Rollback to %s", ShortID(toID))
	nv := store.Commit(target.Snapshot, msg, "", TagRollback)
	return RollbackResult{
		Success:    true,
		Version:    &nv,
		RolledBack: superseded,
		Message:    fmt.Sprintf("rolled back %d versions", len(superseded)),
	}
}

// #endregion rollback
