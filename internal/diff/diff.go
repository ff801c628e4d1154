// Package diff compares stance snapshots field-by-field against the fixed
// schema and classifies every difference by semantic impact.
package diff

import (
	"fmt"
	"sort"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region between
// Between resolves two version ids in the store and diffs their snapshots.
func Between(store *graph.Store, cfg impact.Config, idA, idB string) (SemanticDiff, error) {
	va, ok := store.Version(idA)
	if !ok {
		return SemanticDiff{}, fmt.Errorf("diff %s..%s: %w", idA, idB, graph.ErrVersionNotFound)
	}
	vb, ok := store.Version(idB)
	if !ok {
		return SemanticDiff{}, fmt.Errorf("diff %s..%s: %w", idA, idB, graph.ErrVersionNotFound)
	}

	changes := Compare(va.Snapshot, vb.Snapshot, cfg)
	return SemanticDiff{
		VersionA:     idA,
		VersionB:     idB,
		Changes:      changes,
		Summary:      Summarize(changes),
		ConflictRisk: AssessRisk(changes, cfg),
	}, nil
}

// #endregion between

// #region compare
// Compare walks the fixed schema and emits one Modified change per differing
// field, in schema order (identity, lists, sorted dimensions, metrics,
// themes) so results are deterministic.
func Compare(a, b stance.Snapshot, cfg impact.Config) []Change {
	var changes []Change

	emit := func(ref stance.FieldRef, oldVal, newVal any) {
		changes = append(changes, Change{
			Field:  ref.Name,
			Ref:    ref,
			Path:   ref.Path(),
			Type:   Modified,
			Old:    oldVal,
			New:    newVal,
			Impact: impact.Classify(ref, oldVal, newVal, cfg),
		})
	}

	for _, name := range stance.IdentityFields {
		ref := stance.FieldRef{Kind: stance.KindIdentity, Name: name}
		oldV, _ := a.Value(ref)
		newV, _ := b.Value(ref)
		if oldV != newV {
			emit(ref, oldV, newV)
		}
	}

	for _, name := range stance.ListFields {
		ref := stance.FieldRef{Kind: stance.KindList, Name: name}
		oldV, _ := a.Value(ref)
		newV, _ := b.Value(ref)
		if !equalStrings(oldV.([]string), newV.([]string)) {
			emit(ref, oldV, newV)
		}
	}

	for _, key := range dimensionKeys(a, b) {
		ref := stance.FieldRef{Kind: stance.KindDimension, Name: key}
		oldV := a.Dimensions[key] // absent key reads as zero intensity
		newV := b.Dimensions[key]
		if oldV != newV {
			emit(ref, oldV, newV)
		}
	}

	for _, name := range stance.MetricFields {
		ref := stance.FieldRef{Kind: stance.KindMetric, Name: name}
		oldV, _ := a.Value(ref)
		newV, _ := b.Value(ref)
		if oldV != newV {
			emit(ref, oldV, newV)
		}
	}

	themesRef := stance.FieldRef{Kind: stance.KindMetricList, Name: stance.MetricThemes}
	if !equalStrings(a.Awareness.Themes, b.Awareness.Themes) {
		oldV, _ := a.Value(themesRef)
		newV, _ := b.Value(themesRef)
		emit(themesRef, oldV, newV)
	}

	return changes
}

// #endregion compare

// #region summarize
// Summarize counts changes by magnitude and flags breaking changes.
func Summarize(changes []Change) Summary {
	s := Summary{Total: len(changes)}
	for _, c := range changes {
		switch c.Impact.Magnitude {
		case impact.MagnitudeMajor:
			s.Major++
		case impact.MagnitudeModerate:
			s.Moderate++
		default:
			s.Minor++
		}
		if c.Impact.Magnitude == impact.MagnitudeMajor &&
			(c.Impact.Category == impact.CategoryIdentity || c.Impact.Category == impact.CategoryBehavior) {
			s.Breaking++
		}
	}

	switch {
	case s.Total == 0:
		s.Description = "no changes"
	case s.Breaking > 0:
		s.Description = fmt.Sprintf("%d changes (%d major, %d moderate, %d minor), %d breaking",
			s.Total, s.Major, s.Moderate, s.Minor, s.Breaking)
	default:
		s.Description = fmt.Sprintf("%d changes (%d major, %d moderate, %d minor)",
			s.Total, s.Major, s.Moderate, s.Minor)
	}
	return s
}

// #endregion summarize

// #region risk
// AssessRisk applies the heuristic threshold table from cfg. The cutoffs are
// tuning constants, not derived measures.
func AssessRisk(changes []Change, cfg impact.Config) Risk {
	majors := 0
	for _, c := range changes {
		if c.Impact.Magnitude == impact.MagnitudeMajor {
			majors++
		}
	}
	switch {
	case majors >= cfg.HighRiskMajors:
		return RiskHigh
	case majors >= cfg.MediumRiskMajors:
		return RiskMedium
	case len(changes) > cfg.LowRiskChanges:
		return RiskLow
	default:
		return RiskNone
	}
}

// #endregion risk

// #region helpers
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dimensionKeys(a, b stance.Snapshot) []string {
	seen := make(map[string]bool, len(a.Dimensions)+len(b.Dimensions))
	for k := range a.Dimensions {
		seen[k] = true
	}
	for k := range b.Dimensions {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion helpers
