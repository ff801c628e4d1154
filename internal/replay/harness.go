package replay

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
	"github.com/danielpatrickdp/stance-vcs/internal/merge"
)

// #region types
// StepResult captures the outcome of replaying one fixture step.
type StepResult struct {
	Step      int
	Op        string
	Success   bool
	VersionID string // version created by the step, if any
	Conflicts int
	Reason    string
}

// RunSummary provides aggregate stats from a harness run.
type RunSummary struct {
	TotalSteps int
	Succeeded  int
	Failed     int
	HeadID     string
}

// #endregion types

// #region harness
// Run replays fixture steps against a fresh store. The run is deterministic
// with respect to the fixture: identical fixtures yield identical step
// outcomes (ids differ, outcomes do not).
func Run(f *Fixture, cfg impact.Config) (*graph.Store, []StepResult) {
	store := graph.NewStore()
	labels := make(map[string]string) // step label -> version id
	results := make([]StepResult, 0, len(f.Steps))

	for i, step := range f.Steps {
		r := StepResult{Step: i, Op: step.Op}

		switch step.Op {
		case "commit":
			if step.Snapshot == nil {
				r.Reason = "commit step has no snapshot"
				break
			}
			v := store.Commit(*step.Snapshot, step.Message, step.Author)
			r.Success = true
			r.VersionID = v.ID
			if step.Label != "" {
				labels[step.Label] = v.ID
			}

		case "branch":
			fromID := labels[step.VersionRef]
			_, err := store.CreateBranch(step.Branch, fromID, "")
			r.Success = err == nil
			if err != nil {
				r.Reason = err.Error()
			}

		case "checkout":
			err := store.Checkout(step.Branch)
			r.Success = err == nil
			if err != nil {
				r.Reason = err.Error()
			}

		case "merge":
			mr := merge.Merge(store, cfg, step.Source, step.Branch)
			r.Success = mr.Success
			r.Conflicts = len(mr.Conflicts)
			r.Reason = mr.Message
			if mr.Version != nil {
				r.VersionID = mr.Version.ID
				if step.Label != "" {
					labels[step.Label] = mr.Version.ID
				}
			}

		case "cherry-pick":
			cr := CherryPick(store, cfg, labels[step.VersionRef])
			r.Success = cr.Success
			r.Conflicts = len(cr.Conflicts)
			r.Reason = cr.Message
			if cr.Version != nil {
				r.VersionID = cr.Version.ID
			}

		case "rollback":
			rr := Rollback(store, labels[step.VersionRef])
			r.Success = rr.Success
			r.Reason = rr.Message
			if rr.Version != nil {
				r.VersionID = rr.Version.ID
			}

		case "tag":
			err := store.Tag(labels[step.VersionRef], step.Tag)
			r.Success = err == nil
			if err != nil {
				r.Reason = err.Error()
			}

		default:
			r.Reason = fmt.Sprintf("unknown op %q", step.Op)
		}

		results = append(results, r)
	}

	return store, results
}

// Verify compares results against the fixture's expected outcomes.
func Verify(f *Fixture, results []StepResult) []string {
	var mismatches []string
	for _, exp := range f.Expected {
		if exp.Step < 0 || exp.Step >= len(results) {
			mismatches = append(mismatches, fmt.Sprintf("expected step %d out of range", exp.Step))
			continue
		}
		got := results[exp.Step]
		if got.Success != exp.Success {
			mismatches = append(mismatches, fmt.Sprintf("step %d (%s): success=%v, want %v", exp.Step, got.Op, got.Success, exp.Success))
		}
		if got.Conflicts != exp.Conflicts {
			mismatches = append(mismatches, fmt.Sprintf("step %d (%s): conflicts=%d, want %d", exp.Step, got.Op, got.Conflicts, exp.Conflicts))
		}
	}
	return mismatches
}

// Summarize computes aggregate stats from a run.
func Summarize(store *graph.Store, results []StepResult) RunSummary {
	s := RunSummary{TotalSteps: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	if head, ok := store.Head(); ok {
		s.HeadID = head.ID
	}
	return s
}

// #endregion harness
