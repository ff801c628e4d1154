package stance

// #region snapshot
// Snapshot is the versioned stance record: identity fields, list fields,
// bounded weighted dimensions, and derived awareness metrics.
type Snapshot struct {
	Frame     string `json:"frame"`
	SelfModel string `json:"selfModel"`
	Objective string `json:"objective"`

	Metaphors   []string `json:"metaphors"`
	Constraints []string `json:"constraints"`

	// Dimensions maps value names to intensities bounded to [0, 100].
	Dimensions map[string]float64 `json:"dimensions"`

	Awareness Awareness `json:"awareness"`
}
// #endregion snapshot

// #region awareness
// Awareness is the derived-metrics sub-record: bounded numerics plus themes.
type Awareness struct {
	Depth   float64  `json:"depth"`
	Clarity float64  `json:"clarity"`
	Themes  []string `json:"themes"`
}
// #endregion awareness

// #region field-names
// Canonical field names used by the diff schema walk and FieldRef paths.
const (
	FieldFrame     = "frame"
	FieldSelfModel = "selfModel"
	FieldObjective = "objective"

	FieldMetaphors   = "metaphors"
	FieldConstraints = "constraints"

	MetricDepth   = "depth"
	MetricClarity = "clarity"
	MetricThemes  = "themes"
)

// IdentityFields lists the identity string fields in schema order.
var IdentityFields = []string{FieldFrame, FieldSelfModel, FieldObjective}

// ListFields lists the string-array fields in schema order.
var ListFields = []string{FieldMetaphors, FieldConstraints}

// MetricFields lists the numeric awareness sub-fields in schema order.
var MetricFields = []string{MetricDepth, MetricClarity}
// #endregion field-names

// #region bounds
// WeightMin and WeightMax bound every weighted dimension and awareness numeric.
const (
	WeightMin = 0.0
	WeightMax = 100.0
)

// ClampWeight forces v into the [WeightMin, WeightMax] range.
func ClampWeight(v float64) float64 {
	if v < WeightMin {
		return WeightMin
	}
	if v > WeightMax {
		return WeightMax
	}
	return v
}
// #endregion bounds

// #region clone
// Clone returns a structural deep copy. Cloning is explicit rather than a
// serialization round-trip so cost stays bounded and nothing is dropped.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Metaphors = append([]string(nil), s.Metaphors...)
	out.Constraints = append([]string(nil), s.Constraints...)
	out.Awareness.Themes = append([]string(nil), s.Awareness.Themes...)
	if s.Dimensions != nil {
		out.Dimensions = make(map[string]float64, len(s.Dimensions))
		for k, v := range s.Dimensions {
			out.Dimensions[k] = v
		}
	}
	return out
}
// #endregion clone
