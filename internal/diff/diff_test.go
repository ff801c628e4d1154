package diff

import (
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
		Objective:   "be useful",
		Metaphors:   []string{"bridge"},
		Constraints: []string{"no speculation"},
		Dimensions:  map[string]float64{"curiosity": 50, "directness": 70},
		Awareness:   stance.Awareness{Depth: 40, Clarity: 60, Themes: []string{"growth"}},
	}
}

func TestCompareIdentical(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()

	changes := Compare(a, a.Clone(), cfg)
	if len(changes) != 0 {
		t.Fatalf("expected no changes, got %d", len(changes))
	}
	if risk := AssessRisk(changes, cfg); risk != RiskNone {
		t.Fatalf("expected risk none, got %s", risk)
	}
}

func TestCompareSingleDimension(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()
	b := a.Clone()
	b.Dimensions["curiosity"] = 85

	changes := Compare(a, b, cfg)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	c := changes[0]
	if c.Path != "values.curiosity" {
		t.Fatalf("path %q, want values.curiosity", c.Path)
	}
	if c.Type != Modified {
		t.Fatalf("type %s, want modified", c.Type)
	}
	if c.Old.(float64) != 50 || c.New.(float64) != 85 {
		t.Fatalf("old/new %v/%v, want 50/85", c.Old, c.New)
	}
	if c.Impact.Magnitude != impact.MagnitudeMajor {
		t.Fatalf("delta 35 must be major, got %s", c.Impact.Magnitude)
	}
	if c.Impact.Category != impact.CategoryValues {
		t.Fatalf("category %s, want values", c.Impact.Category)
	}
}

func TestCompareAllFieldKinds(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()
	b := a.Clone()
	b.Frame = "playful"
	b.Metaphors = []string{"mirror"}
	b.Dimensions["curiosity"] = 60
	b.Awareness.Depth = 45
	b.Awareness.Themes = []string{"renewal"}

	changes := Compare(a, b, cfg)
	if len(changes) != 5 {
		t.Fatalf("expected 5 changes, got %d: %+v", len(changes), changes)
	}

	// Schema order: identity, lists, dimensions, metrics, themes.
	wantPaths := []string{"frame", "metaphors", "values.curiosity", "awareness.depth", "awareness.themes"}
	for i, want := range wantPaths {
		if changes[i].Path != want {
			t.Errorf("change %d path %q, want %q", i, changes[i].Path, want)
		}
	}
}

func TestCompareDimensionOnlyInOneSnapshot(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()
	b := a.Clone()
	b.Dimensions["warmth"] = 20

	changes := Compare(a, b, cfg)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Old.(float64) != 0 {
		t.Fatalf("absent dimension must read as zero, got %v", changes[0].Old)
	}
}

func TestSummarizeBreaking(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()
	b := a.Clone()
	b.Frame = "playful"              // identity/major -> breaking
	b.Dimensions["curiosity"] = 85   // values/major -> not breaking
	b.Metaphors = []string{"mirror"} // presentation/minor

	s := Summarize(Compare(a, b, cfg))
	if s.Total != 3 || s.Major != 2 || s.Minor != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Breaking != 1 {
		t.Fatalf("breaking %d, want 1 (identity/major only)", s.Breaking)
	}
	if !strings.Contains(s.Description, "1 breaking") {
		t.Fatalf("description must mention breaking count: %q", s.Description)
	}
}

func TestSummarizeNoBreakingOmitsCount(t *testing.T) {
	cfg := impact.DefaultConfig()
	a := baseSnapshot()
	b := a.Clone()
	b.Metaphors = []string{"mirror"}

	s := Summarize(Compare(a, b, cfg))
	if strings.Contains(s.Description, "breaking") {
		t.Fatalf("description must not mention breaking: %q", s.Description)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Description != "no changes" {
		t.Fatalf("description %q, want 'no changes'", s.Description)
	}
}

func TestAssessRiskLevels(t *testing.T) {
	cfg := impact.DefaultConfig()

	major := Change{Impact: impact.Impact{Magnitude: impact.MagnitudeMajor}}
	minor := Change{Impact: impact.Impact{Magnitude: impact.MagnitudeMinor}}

	if r := AssessRisk([]Change{major, major, major}, cfg); r != RiskHigh {
		t.Fatalf("3 majors: %s, want high", r)
	}
	if r := AssessRisk([]Change{major}, cfg); r != RiskMedium {
		t.Fatalf("1 major: %s, want medium", r)
	}
	if r := AssessRisk([]Change{minor, minor, minor, minor, minor, minor}, cfg); r != RiskLow {
		t.Fatalf("6 minors: %s, want low", r)
	}
	if r := AssessRisk([]Change{minor, minor}, cfg); r != RiskNone {
		t.Fatalf("2 minors: %s, want none", r)
	}
}

func TestBetween(t *testing.T) {
	cfg := impact.DefaultConfig()
	store := graph.NewStore()

	v1 := store.Commit(baseSnapshot(), "init", "tester")
	b := baseSnapshot()
	b.Dimensions["curiosity"] = 85
	v2 := store.Commit(b, "bump curiosity", "tester")

	d, err := Between(store, cfg, v1.ID, v2.ID)
	if err != nil {
		t.Fatalf("Between: %v", err)
	}
	if d.VersionA != v1.ID || d.VersionB != v2.ID {
		t.Fatal("diff must carry both version ids")
	}
	if len(d.Changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(d.Changes))
	}
	if d.ConflictRisk != RiskMedium {
		t.Fatalf("one major change: risk %s, want medium", d.ConflictRisk)
	}
}

func TestBetweenSelfDiff(t *testing.T) {
	cfg := impact.DefaultConfig()
	store := graph.NewStore()
	v := store.Commit(baseSnapshot(), "init", "")

	d, err := Between(store, cfg, v.ID, v.ID)
	if err != nil {
		t.Fatalf("Between: %v", err)
	}
	if len(d.Changes) != 0 {
		t.Fatalf("self diff must be empty, got %d changes", len(d.Changes))
	}
	if d.ConflictRisk != RiskNone {
		t.Fatalf("self diff risk %s, want none", d.ConflictRisk)
	}
}

func TestBetweenMissingVersion(t *testing.T) {
	cfg := impact.DefaultConfig()
	store := graph.NewStore()
	v := store.Commit(baseSnapshot(), "init", "")

	if _, err := Between(store, cfg, v.ID, "missing"); err == nil {
		t.Fatal("expected error for missing version")
	}
	if _, err := Between(store, cfg, "missing", v.ID); err == nil {
		t.Fatal("expected error for missing version")
	}
}
