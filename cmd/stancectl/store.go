package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/config"
	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/logging"
	"github.com/danielpatrickdp/stance-vcs/internal/persist"
	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region env
// cliEnv bundles the opened store, its journal, and the loaded thresholds for
// one command invocation.
type cliEnv struct {
	persist *persist.Store
	graph   *graph.Store
	journal *logging.Journal
	cfg     config.Config
}

// openEnv opens the database from the --db flag, loads the graph, and loads
// threshold overrides from --config.
func openEnv(cmd *cobra.Command) (*cliEnv, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	ps, err := persist.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	g, err := ps.Load()
	if err != nil {
		ps.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}

	j, err := logging.NewJournal(ps.DB())
	if err != nil {
		ps.Close()
		return nil, err
	}

	return &cliEnv{persist: ps, graph: g, journal: j, cfg: cfg}, nil
}

func (e *cliEnv) close() {
	e.persist.Close()
}

// saveAndLog persists the mutated graph and journals the operation.
func (e *cliEnv) saveAndLog(entry logging.OperationEntry) error {
	if err := e.persist.Save(e.graph); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	if err := e.journal.Log(entry); err != nil {
		return err
	}
	return nil
}

// #endregion env

// #region snapshot-io
// readSnapshot parses a snapshot JSON file.
func readSnapshot(path string) (stance.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return stance.Snapshot{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var snap stance.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return stance.Snapshot{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// #endregion snapshot-io

// #region short-id
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// #endregion short-id
