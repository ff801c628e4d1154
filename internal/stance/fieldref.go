package stance

import "fmt"

// #region field-kind
// FieldKind enumerates the closed set of schema field classes. Using a tagged
// reference instead of dot-path strings makes invalid paths unrepresentable.
type FieldKind string

const (
	KindIdentity   FieldKind = "identity"   // identity string field
	KindList       FieldKind = "list"       // string-array field
	KindDimension  FieldKind = "dimension"  // weighted dimension key
	KindMetric     FieldKind = "metric"     // awareness numeric sub-field
	KindMetricList FieldKind = "metricList" // awareness string-list sub-field
)

// #endregion field-kind

// #region field-ref
// FieldRef identifies exactly one addressable field in the snapshot schema.
type FieldRef struct {
	Kind FieldKind
	Name string
}

// Path renders the conventional dot path for display and journaling.
func (f FieldRef) Path() string {
	switch f.Kind {
	case KindDimension:
		return "values." + f.Name
	case KindMetric, KindMetricList:
		return "awareness." + f.Name
	default:
		return f.Name
	}
}

// #endregion field-ref

// #region apply
// Apply sets the referenced field to v. Numeric writes are clamped to the
// weight bounds. Unknown names and type mismatches return an error; callers
// convert those into structured conflicts rather than letting them propagate.
func (s *Snapshot) Apply(ref FieldRef, v any) error {
	switch ref.Kind {
	case KindIdentity:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("apply %s: want string, got %T", ref.Path(), v)
		}
		switch ref.Name {
		case FieldFrame:
			s.Frame = str
		case FieldSelfModel:
			s.SelfModel = str
		case FieldObjective:
			s.Objective = str
		default:
			return fmt.Errorf("apply: unknown identity field %q", ref.Name)
		}
	case KindList:
		list, ok := v.([]string)
		if !ok {
			return fmt.Errorf("apply %s: want []string, got %T", ref.Path(), v)
		}
		switch ref.Name {
		case FieldMetaphors:
			s.Metaphors = append([]string(nil), list...)
		case FieldConstraints:
			s.Constraints = append([]string(nil), list...)
		default:
			return fmt.Errorf("apply: unknown list field %q", ref.Name)
		}
	case KindDimension:
		num, ok := v.(float64)
		if !ok {
			return fmt.Errorf("apply %s: want float64, got %T", ref.Path(), v)
		}
		if s.Dimensions == nil {
			s.Dimensions = make(map[string]float64)
		}
		s.Dimensions[ref.Name] = ClampWeight(num)
	case KindMetric:
		num, ok := v.(float64)
		if !ok {
			return fmt.Errorf("apply %s: want float64, got %T", ref.Path(), v)
		}
		switch ref.Name {
		case MetricDepth:
			s.Awareness.Depth = ClampWeight(num)
		case MetricClarity:
			s.Awareness.Clarity = ClampWeight(num)
		default:
			return fmt.Errorf("apply: unknown awareness metric %q", ref.Name)
		}
	case KindMetricList:
		list, ok := v.([]string)
		if !ok {
			return fmt.Errorf("apply %s: want []string, got %T", ref.Path(), v)
		}
		if ref.Name != MetricThemes {
			return fmt.Errorf("apply: unknown awareness list %q", ref.Name)
		}
		s.Awareness.Themes = append([]string(nil), list...)
	default:
		return fmt.Errorf("apply: unknown field kind %q", ref.Kind)
	}
	return nil
}

// #endregion apply

// #region value
// Value reads the referenced field. The second return is false for refs that
// do not name a schema field.
func (s Snapshot) Value(ref FieldRef) (any, bool) {
	switch ref.Kind {
	case KindIdentity:
		switch ref.Name {
		case FieldFrame:
			return s.Frame, true
		case FieldSelfModel:
			return s.SelfModel, true
		case FieldObjective:
			return s.Objective, true
		}
	case KindList:
		switch ref.Name {
		case FieldMetaphors:
			return append([]string(nil), s.Metaphors...), true
		case FieldConstraints:
			return append([]string(nil), s.Constraints...), true
		}
	case KindDimension:
		v, ok := s.Dimensions[ref.Name]
		return v, ok
	case KindMetric:
		switch ref.Name {
		case MetricDepth:
			return s.Awareness.Depth, true
		case MetricClarity:
			return s.Awareness.Clarity, true
		}
	case KindMetricList:
		if ref.Name == MetricThemes {
			return append([]string(nil), s.Awareness.Themes...), true
		}
	}
	return nil, false
}

// #endregion value
