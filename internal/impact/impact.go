// Package impact classifies single-field stance changes by behavioral
// significance. Pure functions, no dependencies beyond the schema types.
package impact

import (
	"fmt"

	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region categories
// Category groups a change by the aspect of behavior it touches.
type Category string

const (
	CategoryIdentity     Category = "identity"
	CategoryBehavior     Category = "behavior"
	CategoryValues       Category = "values"
	CategoryPresentation Category = "presentation"
)

// Magnitude is the qualitative size of a single field's change.
type Magnitude string

const (
	MagnitudeMinor    Magnitude = "minor"
	MagnitudeModerate Magnitude = "moderate"
	MagnitudeMajor    Magnitude = "major"
)

// Impact is the classifier output for one changed field.
type Impact struct {
	Category    Category
	Magnitude   Magnitude
	Description string
}

// #endregion categories

// #region config
// FieldImpact is a static table entry for a named identity or list field.
type FieldImpact struct {
	Category  Category
	Magnitude Magnitude
}

// Config holds the classifier and risk thresholds. These are heuristic
// defaults, not domain truths, and every one of them is overridable.
type Config struct {
	// MajorDelta is the absolute numeric change above which a weighted
	// dimension or awareness metric counts as major.
	MajorDelta float64 `yaml:"majorDelta"`

	// HighRiskMajors is the major-change count at which conflict risk
	// becomes high; MediumRiskMajors the count for medium.
	HighRiskMajors   int `yaml:"highRiskMajors"`
	MediumRiskMajors int `yaml:"mediumRiskMajors"`

	// LowRiskChanges is the total-change count above which an all-minor
	// diff still registers low risk instead of none.
	LowRiskChanges int `yaml:"lowRiskChanges"`

	// FieldImpacts maps identity/list field names to their static impact.
	// Fields absent from the table default to behavior/minor.
	FieldImpacts map[string]FieldImpact `yaml:"-"`
}

// DefaultConfig returns the standard threshold table.
func DefaultConfig() Config {
	return Config{
		MajorDelta:       30,
		HighRiskMajors:   3,
		MediumRiskMajors: 1,
		LowRiskChanges:   5,
		FieldImpacts: map[string]FieldImpact{
			stance.FieldFrame:       {CategoryIdentity, MagnitudeMajor},
			stance.FieldSelfModel:   {CategoryIdentity, MagnitudeMajor},
			stance.FieldObjective:   {CategoryIdentity, MagnitudeMajor},
			stance.FieldMetaphors:   {CategoryPresentation, MagnitudeMinor},
			stance.FieldConstraints: {CategoryPresentation, MagnitudeMinor},
		},
	}
}

// #endregion config

// #region classify
// Classify maps one changed field and its old/new values to an Impact.
// Structural fields use the static table; numeric fields use the delta
// threshold. old and new are only inspected for numeric kinds.
func Classify(ref stance.FieldRef, oldVal, newVal any, cfg Config) Impact {
	switch ref.Kind {
	case stance.KindDimension:
		return classifyDelta(ref, CategoryValues, oldVal, newVal, cfg)
	case stance.KindMetric:
		return classifyDelta(ref, CategoryIdentity, oldVal, newVal, cfg)
	case stance.KindMetricList:
		return Impact{
			Category:    CategoryIdentity,
			Magnitude:   MagnitudeMinor,
			Description: fmt.Sprintf("%s updated", ref.Path()),
		}
	default:
		if fi, ok := cfg.FieldImpacts[ref.Name]; ok {
			return Impact{
				Category:    fi.Category,
				Magnitude:   fi.Magnitude,
				Description: fmt.Sprintf("%s changed", ref.Path()),
			}
		}
		return Impact{
			Category:    CategoryBehavior,
			Magnitude:   MagnitudeMinor,
			Description: fmt.Sprintf("%s changed", ref.Path()),
		}
	}
}

func classifyDelta(ref stance.FieldRef, cat Category, oldVal, newVal any, cfg Config) Impact {
	oldN, _ := oldVal.(float64)
	newN, _ := newVal.(float64)
	delta := newN - oldN

	mag := MagnitudeModerate
	if abs(delta) > cfg.MajorDelta {
		mag = MagnitudeMajor
	}
	return Impact{
		Category:    cat,
		Magnitude:   mag,
		Description: fmt.Sprintf("%s shifted by %+.1f", ref.Path(), delta),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion classify
