package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	span      string // total span as measurement text
	thickness string // baluster thickness as measurement text
	json      bool   // emit JSON instead of styled text
	all       bool   // list every accepted layout, not just the best one
	noCache   bool   // skip the result cache entirely
	refresh   bool   // recompute and overwrite the cached result
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the baluster count and spacing for a span",
		Long: `Find how many balusters fit a span with every gap between 3 and 4 inches.

Layouts whose gaps are whole sixteenths are preferred. When none exists the
gaps are rounded to sixteenths and the remainder is split between the two
end gaps, as long as they stay within a quarter inch of the other gaps.`,
		Example: `  balustrade solve --span 42 --thickness 1½
  balustrade solve --span "96 1/4" --thickness "1 1/2" --all
  balustrade solve --span 36 --thickness 1.5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.thickness == "" {
				opts.thickness = c.Config.Thickness
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.span, "span", "s", "", "total span in inches, e.g. 42 or \"42 1/2\"")
	cmd.Flags().StringVarP(&opts.thickness, "thickness", "t", "", "baluster thickness in inches, e.g. 1½ (default from config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output JSON")
	cmd.Flags().BoolVar(&opts.all, "all", false, "list every accepted layout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")
	_ = cmd.MarkFlagRequired("span")

	return cmd
}

// solveOutput is the JSON shape of the solve command.
type solveOutput struct {
	*pipeline.Response
	Candidates *pipeline.Candidates `json:"candidates,omitempty"`
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, opts solveOpts) error {
	format := c.Config.Format
	if opts.json {
		format = "json"
	}
	if err := errors.ValidateFormat(format); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	req := pipeline.Request{
		SpanText:  opts.span,
		Thickness: opts.thickness,
		MinSpan:   c.Config.MinSpan,
		Refresh:   opts.refresh,
	}

	resp, err := runner.Solve(ctx, req)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	var cands *pipeline.Candidates
	if opts.all {
		list, err := runner.Candidates(ctx, req)
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}
		cands = &list
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{Response: resp, Candidates: cands})
	}

	printLayout(w, resp)
	if cands != nil {
		n := len(cands.Exact) + len(cands.Approximate)
		if n == 0 {
			return nil
		}
		fmt.Fprintln(w)
		printInfo(w, "%d accepted layouts (%d exact, %d approximate)", n, len(cands.Exact), len(cands.Approximate))
		fmt.Fprintln(w, renderCandidates(*cands))
	}
	return nil
}
