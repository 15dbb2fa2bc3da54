package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/pipeline"
)

// Form styles
var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	formFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formInputStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	formErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	formResultBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// Form fields, in tab order.
const (
	fieldSpan = iota
	fieldThickness
	fieldCount
)

var fieldLabels = [fieldCount]string{"Total span", "Baluster width"}

// =============================================================================
// FormModel - Interactive calculator
// =============================================================================

// solvedMsg carries the outcome of a calculation back into the model.
type solvedMsg struct {
	seq  int
	resp *pipeline.Response
	err  error
}

// FormModel is the bubbletea model for the interactive calculator. It edits
// the span and thickness as text and calculates when enter is pressed on the
// last field.
type FormModel struct {
	Fields [fieldCount]string
	Focus  int

	Result *pipeline.Response
	Err    error

	runner  *pipeline.Runner
	minSpan float64
	ctx     context.Context

	// seq identifies the latest calculation; replies for older ones are dropped.
	seq int
}

// NewFormModel creates a form that solves through runner. thickness
// pre-fills the thickness field.
func NewFormModel(ctx context.Context, runner *pipeline.Runner, minSpan float64, thickness string) FormModel {
	m := FormModel{runner: runner, minSpan: minSpan, ctx: ctx}
	m.Fields[fieldThickness] = thickness
	return m
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solvedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.Result, m.Err = msg.resp, msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.Focus = (m.Focus + 1) % fieldCount
		case tea.KeyShiftTab, tea.KeyUp:
			m.Focus = (m.Focus + fieldCount - 1) % fieldCount
		case tea.KeyEnter:
			if m.Focus < fieldCount-1 {
				m.Focus++
				return m, nil
			}
			m.seq++
			return m, m.solve()
		case tea.KeyBackspace:
			r := []rune(m.Fields[m.Focus])
			if len(r) > 0 {
				m.Fields[m.Focus] = string(r[:len(r)-1])
			}
			m.clear()
		case tea.KeyCtrlU:
			m.Fields[m.Focus] = ""
			m.clear()
		case tea.KeySpace:
			m.Fields[m.Focus] += " "
			m.clear()
		case tea.KeyRunes:
			m.Fields[m.Focus] += string(msg.Runes)
			m.clear()
		}
	}
	return m, nil
}

// clear drops the shown result and any calculation still in flight.
func (m *FormModel) clear() {
	m.Result, m.Err = nil, nil
	m.seq++
}

// solve returns a command that runs the current inputs through the runner.
func (m FormModel) solve() tea.Cmd {
	req := pipeline.Request{
		SpanText:  m.Fields[fieldSpan],
		Thickness: m.Fields[fieldThickness],
		MinSpan:   m.minSpan,
	}
	seq := m.seq
	if strings.TrimSpace(req.SpanText) == "" {
		return func() tea.Msg {
			return solvedMsg{seq: seq, err: errors.New(errors.ErrCodeInvalidInput, "please enter a valid positive number for total distance")}
		}
	}
	runner, ctx := m.runner, m.ctx
	return func() tea.Msg {
		resp, err := runner.Solve(ctx, req)
		return solvedMsg{seq: seq, resp: resp, err: err}
	}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Baluster Spacing"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab next field  ⏎ calculate  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		cursor := "  "
		value := formInputStyle.Render(m.Fields[i])
		if i == m.Focus {
			cursor = formFocusStyle.Render("▸ ")
			value += formFocusStyle.Render("█")
		}
		b.WriteString(cursor + formLabelStyle.Render(label) + value + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(formErrorStyle.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	case m.Result != nil && !m.Result.Success:
		b.WriteString(formErrorStyle.Render(m.Result.Message))
		b.WriteString("\n")
	case m.Result != nil:
		b.WriteString(formResultBorder.Render(m.resultView()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m FormModel) resultView() string {
	r := m.Result
	lines := []string{
		formLabelStyle.Render("Balusters") + StyleNumber.Render(fmt.Sprint(r.Posts)),
		formLabelStyle.Render("First center") + StyleValue.Render(r.EdgeOffset+"\""),
		formLabelStyle.Render("On center") + StyleValue.Render(r.Pitch+"\""),
		formLabelStyle.Render("Match") + matchStyle(r.Candidate).Render(r.MatchType),
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// Command
// =============================================================================

// interactiveCommand creates the interactive calculator command.
func (c *CLI) interactiveCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Open the interactive spacing calculator",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			// Logs would tear the alternate screen.
			runner.Logger = newLogger(io.Discard, LogInfo)

			ctx := cmd.Context()
			model := NewFormModel(ctx, runner, c.Config.MinSpan, c.Config.Thickness)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("interactive: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
