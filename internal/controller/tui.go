package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "textaug.dev/pkg/textaug/internal/model"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	unchangedStyle = lipgloss.NewStyle().Faint(true)
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	footerStyle    = lipgloss.NewStyle().Faint(true)
)

// pagerChrome is the number of lines taken by the pager title and footer.
const pagerChrome = 4

// TUI implements UI using Bubble Tea for interactive display.
// Output is collected while the workflow runs and shown by Wait; when it fits
// on screen it is printed directly instead of opening the pager.
type TUI struct {
	output   io.Writer
	config   StartConfig
	title    string
	sections []string
	width    int
	height   int
	run      func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{output: output, config: newStartConfig(nil)}
	tui.run = tui.runProgram

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			tui.width = width
			tui.height = height
		}
	}

	return tui
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options)
	p.sections = nil

	switch p.config.mode {
	case ModeStats:
		p.title = "textaug - table statistics"
	default:
		p.title = "textaug - augmentation results"
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.sections = nil
}

// Wait shows the collected output and blocks until the user quits the pager.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	content := strings.Join(p.sections, "\n")
	if content == "" {
		return
	}

	if !p.needsPagination(content) {
		_, _ = fmt.Fprintln(p.output, titleStyle.Render(p.title))
		_, _ = fmt.Fprint(p.output, content)

		return
	}

	if err := p.run(newPagerModel(p.title, content, p.width, p.height)); err != nil {
		_, _ = fmt.Fprint(p.output, content)
	}
}

func (p *TUI) needsPagination(content string) bool {
	if p.height == 0 {
		return false
	}

	return strings.Count(content, "\n")+pagerChrome > p.height
}

func (p *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

// DisplayRunInfo records the run settings as the pager subtitle.
func (p *TUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.sections = append(p.sections, sourceStyle.Render(strings.TrimSuffix(renderRunInfo(info), "\n"))+"\n")
}

// DisplayVariants records the variants, highlighting changed ones.
func (p *TUI) DisplayVariants(ctx context.Context, variants []Variant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	for _, variant := range variants {
		if p.config.diff {
			text, err := renderVariants([]Variant{variant}, true)
			if err != nil {
				return err
			}

			b.WriteString(colorDiff(text))

			continue
		}

		style := unchangedStyle
		if variant.Changed() {
			style = changedStyle
		}

		fmt.Fprintf(&b, "%s %s\n", sourceStyle.Render(variant.Source), style.Render(variant.Augmented))
	}

	p.sections = append(p.sections, b.String())

	return nil
}

// DisplayTableStats records the shape of a substitution table.
func (p *TUI) DisplayTableStats(ctx context.Context, name string, stats m.TableStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.sections = append(p.sections, renderTableStats(name, stats))

	return nil
}

// DisplaySummary records the run totals.
func (p *TUI) DisplaySummary(ctx context.Context, summary Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.sections = append(p.sections, renderSummary(summary))
}

func colorDiff(text string) string {
	lines := strings.SplitAfter(text, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = sourceStyle.Render(trimmed) + "\n"
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(trimmed) + "\n"
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(trimmed) + "\n"
		}
	}

	return strings.Join(lines, "")
}

// pagerModel is the Bubble Tea model scrolling the collected output.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(1, height-pagerChrome))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		viewport: vp,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(1, msg.Height-pagerChrome)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%3.f%% | ↑/k ↓/j scroll | g top | G bottom | q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
