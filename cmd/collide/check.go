package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/collide/internal/scenario"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Evaluate a collision scenario",
	Long: `Evaluate every query of a YAML scenario file against the collision
library and report which ones match their expected outcome. Without a
file the built-in reference scenario is checked.

Scenario format:
  name: example
  queries:
    - name: overlapping rects
      a: {rectangle: {origin: [1, 1], size: [4, 4]}}
      b: {rectangle: {origin: [2, 2], size: [5, 5]}}
      expect: true

Shape keys: point, line, segment, circle, rectangle, oriented.

Examples:
  collide check
  collide check ./scenarios/rects.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := scenario.Reference()
	if len(args) == 1 {
		var err error
		if s, err = scenario.Load(args[0]); err != nil {
			return err
		}
	}

	report := scenario.Evaluate(s)
	logger.Debug("scenario evaluated", "scenario", report.Scenario, "queries", len(report.Results))

	out := newPrinter(cmd.OutOrStdout())
	fmt.Fprintln(out, out.title("Scenario: "+report.Scenario))
	fmt.Fprintln(out)

	for _, res := range report.Results {
		status := out.pass("PASS")
		if !res.Pass {
			status = out.fail("FAIL")
		}

		detail := fmt.Sprintf("collides=%t expected=%t", res.Collides, res.Expected)
		if res.Err != nil {
			detail = res.Err.Error()
		}
		fmt.Fprintf(out, "  %s  %s %s\n", status, res.Query, out.dim("("+detail+")"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed, report.Failed)

	if !report.OK() {
		return fmt.Errorf("scenario %q: %d of %d queries failed", report.Scenario, report.Failed, len(report.Results))
	}
	return nil
}
