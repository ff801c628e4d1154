// Package gate runs precondition checks on a snapshot before it is committed.
// The commit graph itself never validates; callers that want admission control
// run the gate first.
package gate

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region gate
// Gate evaluates whether a proposed snapshot is admissible for commit.
type Gate struct {
	config GateConfig
}

// NewGate creates a gate with the given configuration.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// Evaluate checks the snapshot against schema bounds and structural caps.
// Any violation rejects; there is no soft scoring for a stance record.
func (g *Gate) Evaluate(snap stance.Snapshot) GateDecision {
	var violations []Violation

	if g.config.RequireIdentity && snap.Frame == "" {
		violations = append(violations, Violation{
			Type:   ViolationEmptyCore,
			Field:  stance.FieldFrame,
			Reason: "frame must not be empty",
		})
	}

	if g.config.RejectOutOfRange {
		for key, v := range snap.Dimensions {
			if v < stance.WeightMin || v > stance.WeightMax {
				violations = append(violations, Violation{
					Type:   ViolationBounds,
					Field:  "values." + key,
					Reason: fmt.Sprintf("weight %.1f outside [%.0f, %.0f]", v, stance.WeightMin, stance.WeightMax),
				})
			}
		}
		for _, m := range []struct {
			name string
			val  float64
		}{
			{stance.MetricDepth, snap.Awareness.Depth},
			{stance.MetricClarity, snap.Awareness.Clarity},
		} {
			if m.val < stance.WeightMin || m.val > stance.WeightMax {
				violations = append(violations, Violation{
					Type:   ViolationBounds,
					Field:  "awareness." + m.name,
					Reason: fmt.Sprintf("metric %.1f outside [%.0f, %.0f]", m.val, stance.WeightMin, stance.WeightMax),
				})
			}
		}
	}

	if g.config.MaxListItems > 0 {
		for _, l := range []struct {
			name  string
			items []string
		}{
			{stance.FieldMetaphors, snap.Metaphors},
			{stance.FieldConstraints, snap.Constraints},
			{"awareness." + stance.MetricThemes, snap.Awareness.Themes},
		} {
			if len(l.items) > g.config.MaxListItems {
				violations = append(violations, Violation{
					Type:   ViolationListSize,
					Field:  l.name,
					Reason: fmt.Sprintf("%d items exceeds cap %d", len(l.items), g.config.MaxListItems),
				})
			}
		}
	}

	if len(violations) > 0 {
		return GateDecision{
			Action:     "reject",
			Reason:     fmt.Sprintf("precondition failed: %s", violations[0].Reason),
			Violations: violations,
		}
	}
	return GateDecision{Action: "commit", Reason: "passed preconditions"}
}

// #endregion gate
