// Package render formats semantic diffs for terminal display. List-field
// changes come out as classic unified hunks via go-difflib; scalar changes as
// -/+ value lines.
package render

import (
	"fmt"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/danielpatrickdp/stance-vcs/internal/diff"
)

// #region render-diff
// Diff renders the full diff: one block per change plus a summary footer.
func Diff(d diff.SemanticDiff) string {
	var b strings.Builder

	if len(d.Changes) == 0 {
		fmt.Fprintf(&b, "no changes between %s and %s\n", short(d.VersionA), short(d.VersionB))
		return b.String()
	}

	for _, c := range d.Changes {
		fmt.Fprintf(&b, "%s [%s/%s] %s\n", c.Path, c.Impact.Category, c.Impact.Magnitude, c.Impact.Description)
		b.WriteString(Change(c))
	}

	fmt.Fprintf(&b, "\n%s, conflict risk: %s\n", d.Summary.Description, d.ConflictRisk)
	return b.String()
}

// #endregion render-diff

// #region render-change
// Change renders one change body. String lists get a unified diff; everything
// else gets -/+ lines.
func Change(c diff.Change) string {
	oldList, oldOK := c.Old.([]string)
	newList, newOK := c.New.([]string)
	if oldOK && newOK {
		u := difflib.UnifiedDiff{
			A:        withNL(oldList),
			B:        withNL(newList),
			FromFile: "a/" + c.Path,
			ToFile:   "b/" + c.Path,
			Context:  2,
		}
		s, err := difflib.GetUnifiedDiffString(u)
		if err != nil || s == "" {
			return ""
		}
		return s
	}
	return fmt.Sprintf("- %s\n+ %s\n", formatValue(c.Old), formatValue(c.New))
}

// #endregion render-change

// #region helpers
func withNL(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.1f", x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// #endregion helpers
