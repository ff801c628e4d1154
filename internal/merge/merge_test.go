package merge

import (
	"reflect"
	"strings"
	"testing"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

func baseSnapshot() stance.Snapshot {
	return stance.Snapshot{
		Frame:       "pragmatic",
		SelfModel:   "assistant",
		Objective:   "help",
		Metaphors:   []string{"lens"},
		Constraints: []string{"stay factual"},
		Dimensions:  map[string]float64{"curiosity": 50, "caution": 40},
		Awareness: stance.Awareness{
			Depth:   30,
			Clarity: 60,
			Themes:  []string{"history"},
		},
	}
}

// storeWithBranches commits base on main, branches experiment, and commits
// the edited snapshot there. Current branch stays main.
func storeWithBranches(t *testing.T, edit func(*stance.Snapshot)) *graph.Store {
	t.Helper()
	s := graph.NewStore()
	s.Commit(baseSnapshot(), "init", "tester")
	if _, err := s.CreateBranch("experiment", "", ""); err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	edited := baseSnapshot()
	edit(&edited)
	if _, err := s.CommitTo("experiment", edited, "experiment change", "tester"); err != nil {
		t.Fatalf("CommitTo: %v", err)
	}
	return s
}

func TestMergeMajorChangeConflicts(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {
		sn.Dimensions["curiosity"] = 85
	})

	res := Merge(s, impact.DefaultConfig(), "experiment", "main")

	if res.Success {
		t.Fatal("major change must not auto-merge")
	}
	if res.Version != nil {
		t.Fatal("conflicted merge must not commit")
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("conflicts %d, want 1", len(res.Conflicts))
	}
	c := res.Conflicts[0]
	if c.Path != "values.curiosity" {
		t.Fatalf("conflict path %q, want values.curiosity", c.Path)
	}
	if c.SourceValue != 85.0 || c.TargetValue != 50.0 {
		t.Fatalf("conflict values source=%v target=%v", c.SourceValue, c.TargetValue)
	}
	if c.Strategy != UseSource {
		t.Fatalf("strategy %q, want %q", c.Strategy, UseSource)
	}
	if c.SuggestedResolution != 85.0 {
		t.Fatalf("suggested %v, want 85", c.SuggestedResolution)
	}
	if len(res.RequiresManual) != 1 || res.RequiresManual[0] != "values.curiosity" {
		t.Fatalf("requiresManual %v", res.RequiresManual)
	}

	// Nothing committed: main's history is untouched.
	hist, _ := s.History("main")
	if len(hist) != 1 {
		t.Fatalf("main history %d, want 1", len(hist))
	}
}

func TestMergeModerateChangeAutoMerges(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {
		sn.Dimensions["curiosity"] = 59
	})
	// Nudge the base so the delta is 10, not 9.
	// 49 -> 59 keeps the shift below the major threshold.
	mainHead, _ := s.Head()
	base := mainHead.Snapshot
	base.Dimensions["curiosity"] = 49
	s.Commit(base, "retune", "tester")

	res := Merge(s, impact.DefaultConfig(), "experiment", "main")

	if !res.Success {
		t.Fatalf("moderate change must auto-merge: %s", res.Message)
	}
	if len(res.Conflicts) != 0 {
		t.Fatalf("conflicts %v, want none", res.Conflicts)
	}
	if res.Version == nil {
		t.Fatal("successful merge must commit")
	}
	if res.Version.Message != "Merge experiment into main" {
		t.Fatalf("message %q", res.Version.Message)
	}
	if len(res.Version.Tags) != 1 || res.Version.Tags[0] != TagMerge {
		t.Fatalf("tags %v, want [merge]", res.Version.Tags)
	}
	if res.Version.Branch != "main" {
		t.Fatalf("branch %q, want main", res.Version.Branch)
	}
	if res.Merged.Dimensions["curiosity"] != 59 {
		t.Fatalf("merged curiosity %v, want 59", res.Merged.Dimensions["curiosity"])
	}
	if len(res.AutoResolved) != 1 || res.AutoResolved[0] != "values.curiosity" {
		t.Fatalf("autoResolved %v", res.AutoResolved)
	}

	// Merge commit extends main's chain.
	head, _ := s.Head()
	if head.ID != res.Version.ID {
		t.Fatal("main head must be the merge version")
	}
}

func TestMergeDefaultsTargetToCurrent(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {
		sn.Metaphors = []string{"lens", "mirror"}
	})

	res := Merge(s, impact.DefaultConfig(), "experiment", "")
	if !res.Success {
		t.Fatalf("merge failed: %s", res.Message)
	}
	if res.Version.Branch != "main" {
		t.Fatalf("branch %q, want main (current)", res.Version.Branch)
	}
}

func TestMergeMixedChanges(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {
		sn.Frame = "exploratory"                // identity -> major
		sn.Constraints = []string{"be concise"} // list -> minor
		sn.Dimensions["caution"] = 45           // delta 5 -> moderate
	})

	res := Merge(s, impact.DefaultConfig(), "experiment", "main")

	if res.Success {
		t.Fatal("identity change must block the merge")
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].Path != "frame" {
		t.Fatalf("conflicts %v, want one on frame", res.Conflicts)
	}
	// Non-major changes still land in the candidate snapshot.
	if !reflect.DeepEqual(res.Merged.Constraints, []string{"be concise"}) {
		t.Fatalf("constraints %v", res.Merged.Constraints)
	}
	if res.Merged.Dimensions["caution"] != 45 {
		t.Fatalf("caution %v, want 45", res.Merged.Dimensions["caution"])
	}
	// The candidate keeps the target value on the conflicted field.
	if res.Merged.Frame != "pragmatic" {
		t.Fatalf("frame %q, want pragmatic", res.Merged.Frame)
	}
	if len(res.AutoResolved) != 2 {
		t.Fatalf("autoResolved %v, want 2 paths", res.AutoResolved)
	}
}

func TestMergeDeterministic(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {
		sn.Frame = "exploratory"
		sn.Dimensions["curiosity"] = 90
		sn.Awareness.Depth = 80
	})

	first := Merge(s, impact.DefaultConfig(), "experiment", "main")
	second := Merge(s, impact.DefaultConfig(), "experiment", "main")

	if !reflect.DeepEqual(first.Conflicts, second.Conflicts) {
		t.Fatalf("conflicts differ between runs:\n%v\n%v", first.Conflicts, second.Conflicts)
	}
	if !reflect.DeepEqual(first.AutoResolved, second.AutoResolved) {
		t.Fatalf("autoResolved differ: %v vs %v", first.AutoResolved, second.AutoResolved)
	}
}

func TestMergeIdenticalHeads(t *testing.T) {
	s := storeWithBranches(t, func(sn *stance.Snapshot) {})

	res := Merge(s, impact.DefaultConfig(), "experiment", "main")
	if !res.Success {
		t.Fatalf("identical heads must merge cleanly: %s", res.Message)
	}
	if len(res.AutoResolved) != 0 {
		t.Fatalf("autoResolved %v, want none", res.AutoResolved)
	}
}

func TestMergeMissingBranches(t *testing.T) {
	s := graph.NewStore()
	s.Commit(baseSnapshot(), "init", "")

	res := Merge(s, impact.DefaultConfig(), "ghost", "main")
	if res.Success || !strings.Contains(res.Message, `source branch "ghost"`) {
		t.Fatalf("unexpected result for missing source: %+v", res)
	}

	s.CreateBranch("experiment", "", "")
	res = Merge(s, impact.DefaultConfig(), "experiment", "ghost")
	if res.Success || !strings.Contains(res.Message, `target branch "ghost"`) {
		t.Fatalf("unexpected result for missing target: %+v", res)
	}
}

func TestMergeEmptySourceHead(t *testing.T) {
	s := graph.NewStore()

	res := Merge(s, impact.DefaultConfig(), "main", "main")
	if res.Success || !strings.Contains(res.Message, "no head version") {
		t.Fatalf("unexpected result for empty head: %+v", res)
	}
}

func TestResolve(t *testing.T) {
	c := Conflict{
		Path:                "values.curiosity",
		SourceValue:         85.0,
		TargetValue:         50.0,
		SuggestedResolution: 85.0,
		Strategy:            UseSource,
	}

	Resolve(&c, 70.0)

	if c.SuggestedResolution != 70.0 {
		t.Fatalf("resolution %v, want 70", c.SuggestedResolution)
	}
	if c.Strategy != Manual {
		t.Fatalf("strategy %q, want %q", c.Strategy, Manual)
	}
}
