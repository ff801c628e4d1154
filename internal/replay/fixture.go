package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scripted-operations fixture:
// a sequence of engine operations replayed against a fresh store, plus the
// expected outcome per step. Version ids are fresh every run, so steps refer
// to earlier commits by label.
type Fixture struct {
	Description string         `json:"description"`
	Steps       []FixtureStep  `json:"steps"`
	Expected    []ExpectedStep `json:"expected_results"`
}

// FixtureStep is one scripted operation.
type FixtureStep struct {
	// Op is one of "commit", "branch", "checkout", "merge", "cherry-pick",
	// "rollback", "tag".
	Op string `json:"op"`

	// Label names the version this step creates, for later reference.
	Label string `json:"label,omitempty"`

	// VersionRef is the label of an earlier step's version (cherry-pick,
	// rollback, tag, branch-from).
	VersionRef string `json:"version_ref,omitempty"`

	Branch   string           `json:"branch,omitempty"` // branch/checkout name, merge target
	Source   string           `json:"source,omitempty"` // merge source branch
	Message  string           `json:"message,omitempty"`
	Author   string           `json:"author,omitempty"`
	Tag      string           `json:"tag,omitempty"`
	Snapshot *stance.Snapshot `json:"snapshot,omitempty"` // commit payload
}

// ExpectedStep captures the expected outcome for one step, by index.
type ExpectedStep struct {
	Step      int  `json:"step"`
	Success   bool `json:"success"`
	Conflicts int  `json:"conflicts,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader
