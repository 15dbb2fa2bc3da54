package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/balustrade/pkg/fraction"
	"github.com/matzehuels/balustrade/pkg/pipeline"
	"github.com/matzehuels/balustrade/pkg/spacing"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success, exact matches
	colorYellow = lipgloss.Color("220") // Amber - warnings, approximate matches
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints an indented, dimmed detail line.
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printConversion prints "input → output".
func printConversion(w io.Writer, in, out string) {
	fmt.Fprintln(w, StyleValue.Render(in)+" "+StyleDim.Render(iconArrow)+" "+StyleNumber.Render(out))
}

// =============================================================================
// Layout Output
// =============================================================================

// printLayout prints the chosen layout, or the failure message.
func printLayout(w io.Writer, resp *pipeline.Response) {
	if !resp.Success {
		printWarning(w, "%s", resp.Message)
		return
	}

	printSuccess(w, "%s", StyleTitle.Render(fmt.Sprintf("%d balusters", resp.Posts)))
	printKeyValue(w, "First center", resp.EdgeOffset+"\"")
	printKeyValue(w, "On center", resp.Pitch+"\"")
	printKeyValue(w, "Gap", fraction.Format(resp.Spacing)+"\"")
	printKeyValue(w, "Match", matchStyle(resp.Candidate).Render(resp.MatchType))
	if len(resp.Centers) > 0 {
		marks := make([]string, len(resp.Centers))
		for i, m := range resp.Centers {
			marks[i] = m + "\""
		}
		printKeyValue(w, "Marks", strings.Join(marks, ", "))
	}
	printStatus(w, resp)
}

// printStatus prints whether the result was cached, on a single dim line.
func printStatus(w io.Writer, resp *pipeline.Response) {
	status := iconFresh
	statusStyle := styleComputed
	if resp.Cached {
		status = iconCached
		statusStyle = styleCached
	}
	line := "  " + StyleDim.Render(fmt.Sprintf("thickness %s\"", fraction.Format(resp.Thickness)))
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Fprintln(w, line)
}

func matchStyle(c *spacing.Candidate) lipgloss.Style {
	if c != nil && c.Kind == spacing.Exact {
		return StyleSuccess
	}
	return StyleWarning
}

// =============================================================================
// Candidate Table
// =============================================================================

// renderCandidates renders every accepted layout of both phases as a table,
// marking the one the search picks.
func renderCandidates(c pipeline.Candidates) string {
	chosen, hasChosen := c.Chosen()
	all := append(append([]spacing.Candidate{}, c.Exact...), c.Approximate...)

	rows := make([][]string, 0, len(all))
	for _, cand := range all {
		mark := ""
		if hasChosen && cand.Kind == chosen.Kind && cand.Posts == chosen.Posts {
			mark = "▸"
		}
		diff := ""
		if cand.Kind == spacing.Approximate {
			diff = fraction.Format(cand.Diff)
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(cand.Posts),
			fraction.Format(cand.Spacing),
			fraction.Format(cand.EdgeOffset),
			fraction.Format(cand.Pitch),
			cand.Kind.String(),
			diff,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Posts", "Gap", "First", "On center", "Match", "Diff").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(all) {
				return lipgloss.NewStyle()
			}
			cand := all[row]
			base := lipgloss.NewStyle().Padding(0, 1)
			if hasChosen && cand.Kind == chosen.Kind && cand.Posts == chosen.Posts {
				return base.Foreground(colorCyan).Bold(true)
			}
			if cand.Kind == spacing.Exact {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorGray)
		})

	return t.Render()
}
