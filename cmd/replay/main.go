// Command replay runs a scripted-operations fixture against a fresh store and
// checks the per-step outcomes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/stance-vcs/internal/config"
	"github.com/danielpatrickdp/stance-vcs/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	configPath := flag.String("config", "", "optional thresholds YAML")
	verbose := flag.Bool("v", false, "print every step result")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--config thresholds.yaml] [-v]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	store, results := replay.Run(f, cfg.Impact)

	if *verbose {
		for _, r := range results {
			status := "ok"
			if !r.Success {
				status = "FAIL"
			}
			fmt.Printf("step %2d  %-12s %-4s conflicts=%d %s\n", r.Step, r.Op, status, r.Conflicts, r.Reason)
		}
	}

	summary := replay.Summarize(store, results)
	fmt.Printf("%s: %d steps, %d succeeded, %d failed, head=%.8s\n",
		f.Description, summary.TotalSteps, summary.Succeeded, summary.Failed, summary.HeadID)

	mismatches := replay.Verify(f, results)
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "mismatch: %s\n", m)
		}
		os.Exit(1)
	}
}

// #endregion main
