// Command inspect dumps a persisted stance store for debugging: version list,
// branch table, or a single version in detail.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/persist"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to stance.db")
	last := flag.Int("last", 20, "show N most recent versions")
	version := flag.String("version", "", "show single version detail")
	branches := flag.Bool("branches", false, "show the branch table")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/stance.db [--last N] [--version id] [--branches] [--json]")
		os.Exit(2)
	}

	ps, err := persist.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer ps.Close()

	g, err := ps.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load store: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *version != "":
		err = runDetailMode(g, *version, *jsonOut)
	case *branches:
		err = runBranchMode(g, *jsonOut)
	default:
		err = runListMode(g, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string   `json:"version_id"`
	ParentID  string   `json:"parent_id,omitempty"`
	Branch    string   `json:"branch"`
	Message   string   `json:"message"`
	Author    string   `json:"author,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at"`
}

func runListMode(g *graph.Store, last int, jsonOut bool) error {
	versions := g.Versions()
	if len(versions) > last {
		versions = versions[len(versions)-last:]
	}

	rows := make([]listRow, 0, len(versions))
	// Newest first, matching log output.
	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		rows = append(rows, listRow{
			VersionID: v.ID,
			ParentID:  v.ParentID,
			Branch:    v.Branch,
			Message:   v.Message,
			Author:    v.Author,
			Tags:      v.Tags,
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	for _, r := range rows {
		line := fmt.Sprintf("%-8.8s  %-12s  %s", r.VersionID, r.Branch, r.Message)
		if len(r.Tags) > 0 {
			line += "  [" + strings.Join(r.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(g *graph.Store, id string, jsonOut bool) error {
	v, ok := g.Version(id)
	if !ok {
		return fmt.Errorf("version %s not found", id)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(v)
	}

	fmt.Printf("version:  %s\n", v.ID)
	fmt.Printf("parent:   %s\n", v.ParentID)
	fmt.Printf("branch:   %s\n", v.Branch)
	fmt.Printf("message:  %s\n", v.Message)
	fmt.Printf("author:   %s\n", v.Author)
	fmt.Printf("created:  %s\n", v.CreatedAt.Format(time.RFC3339))
	fmt.Printf("tags:     %s\n", strings.Join(v.Tags, ", "))

	snap, err := json.MarshalIndent(v.Snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	fmt.Printf("snapshot:\n%s\n", snap)
	return nil
}

// #endregion detail-mode

// #region branch-mode

func runBranchMode(g *graph.Store, jsonOut bool) error {
	brs := g.Branches()
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(brs)
	}
	current := g.CurrentBranch()
	for _, br := range brs {
		marker := " "
		if br.Name == current {
			marker = "*"
		}
		fmt.Printf("%s %-20s %-8.8s protected=%v %s\n", marker, br.Name, br.Head, br.Protected, br.Description)
	}
	return nil
}

// #endregion branch-mode
