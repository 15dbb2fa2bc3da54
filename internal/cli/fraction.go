package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/fraction"
)

// fractionCommand creates the fraction command and its subcommands.
func (c *CLI) fractionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fraction",
		Short: "Convert between measurement text and decimal inches",
		Long: `Convert between measurement text and decimal inches.

Accepted input forms:
  1.5  2,125  1½  1 1/2  1-1/2  1½ with a space  3/4  ¾  2¼`,
	}

	cmd.AddCommand(c.fractionParseCommand())
	cmd.AddCommand(c.fractionFormatCommand())

	return cmd
}

// parsedValue is one line of "fraction parse --json" output.
type parsedValue struct {
	Input string  `json:"input"`
	Value float64 `json:"value"`
	Form  string  `json:"form,omitempty"`
	Error string  `json:"error,omitempty"`
}

func (c *CLI) fractionParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "parse <text>...",
		Short:   "Parse measurement text to decimal inches",
		Example: `  balustrade fraction parse "1 1/2" 2¼ 2,125`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFractionParse(cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func runFractionParse(w io.Writer, inputs []string, asJSON bool) error {
	out := make([]parsedValue, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		pv := parsedValue{Input: in}
		v, err := fraction.Parse(in)
		if err != nil {
			pv.Error = errors.UserMessage(err)
			failed++
		} else {
			pv.Value = v
			pv.Form = fraction.Classify(in)
		}
		out = append(out, pv)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		for _, pv := range out {
			if pv.Error != "" {
				printError(w, "%s", pv.Error)
				continue
			}
			printConversion(w, pv.Input, strconv.FormatFloat(pv.Value, 'f', -1, 64))
			printDetail(w, "%s form", pv.Form)
		}
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeParse, "%d of %d inputs could not be parsed", failed, len(inputs))
	}
	return nil
}

func (c *CLI) fractionFormatCommand() *cobra.Command {
	var unit int

	cmd := &cobra.Command{
		Use:     "format <decimal>...",
		Short:   "Format decimal inches as a carpenter fraction",
		Example: `  balustrade fraction format 2.125 4.4375
  balustrade fraction format --unit 8 0.3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFractionFormat(cmd.OutOrStdout(), args, unit)
		},
	}

	cmd.Flags().IntVarP(&unit, "unit", "u", fraction.DefaultUnit, "rounding unit in parts per inch")
	return cmd
}

func runFractionFormat(w io.Writer, inputs []string, unit int) error {
	if unit <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "unit must be positive, got %d", unit)
	}
	for _, in := range inputs {
		v, err := fraction.Parse(in)
		if err != nil {
			return fmt.Errorf("format %q: %w", in, err)
		}
		printConversion(w, in, fraction.FormatUnit(v, unit))
	}
	return nil
}
