package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"organizer/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConfirm
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	PlanReadyMsg struct {
		Plan domain.MovePlan
	}
	MoveProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	ExecDoneMsg struct {
		Stats domain.RunStats
	}
	ErrorMsg struct {
		Err error
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ExecuteFunc starts the move execution in the background and feeds
// MoveProgressMsg / ExecDoneMsg back into the program.
type ExecuteFunc func(plan domain.MovePlan) tea.Cmd

// Config for the TUI
type Config struct {
	TargetDir string
	DryRun    bool
	Verbose   bool
	Execute   ExecuteFunc
}

// Model is the main TUI model
type Model struct {
	config           Config
	Phase            Phase
	Plan             domain.MovePlan
	Stats            domain.RunStats
	spinner          spinner.Model
	progress         progress.Model
	moveProgress     int
	moveTotal        int
	currentFile      string
	confirmSelection bool // true = yes, false = no
	Declined         bool
	Err              error
	Quitting         bool
	width            int
	height           int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:           cfg,
		Phase:            PhaseScanning,
		spinner:          s,
		progress:         p,
		confirmSelection: false, // default to No
		width:            80,
		height:           24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h", "y", "Y":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = true
			}
		case "right", "l", "n", "N":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = false
			}
		case "enter":
			if m.Phase == PhaseConfirm {
				return m, func() tea.Msg {
					return ConfirmMsg{Confirmed: m.confirmSelection}
				}
			}
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case PlanReadyMsg:
		m.Plan = msg.Plan
		if m.config.DryRun || len(m.Plan.Items) == 0 {
			m.Phase = PhaseDone
		} else {
			m.Phase = PhaseConfirm
		}
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			m.Declined = true
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseExecuting
		if m.config.Execute != nil {
			return m, tea.Batch(tickCmd(), m.config.Execute(m.Plan))
		}
		return m, nil

	case MoveProgressMsg:
		m.moveProgress = msg.Current
		m.moveTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case ExecDoneMsg:
		m.Stats = msg.Stats
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.moveTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.moveProgress)/float64(m.moveTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning directory...", m.spinner.View()))
	case PhaseConfirm:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseExecuting:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderExecution())
	case PhaseDone:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🗂  Organizer")
	subtitle := subtitleStyle.Render("Sort files into category folders")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, m.config.TargetDir)),
	)
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Planned Moves"))
	b.WriteString("\n\n")

	if len(m.Plan.Items) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No files to organize"))
		b.WriteString("\n")
	} else {
		for _, line := range formatItemList(m.Plan.Items, 6) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderCategorySummary())

	return b.String()
}

func (m Model) renderCategorySummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Categories"))
	b.WriteString("\n\n")

	names := make([]string, 0, len(m.Plan.CategoryCounts))
	for name := range m.Plan.CategoryCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			statLabelStyle.Render(name+":"),
			statValueStyle.Render(fmt.Sprintf("%d files", m.Plan.CategoryCounts[name])),
		))
	}

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were moved"))
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	prompt := confirmPromptStyle.Render(
		fmt.Sprintf("Move %d files into %d folders?", len(m.Plan.Items), len(m.Plan.CategoryCounts)))

	var yesBtn, noBtn string
	if m.confirmSelection {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Moving Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.moveTotal > 0 {
		percent = float64(m.moveProgress) / float64(m.moveTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Moving...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.moveProgress, m.moveTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.currentFile),
		))
	}

	return b.String()
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	if m.config.DryRun {
		return b.String()
	}

	b.WriteString(sectionStyle.Render("Result"))
	b.WriteString("\n\n")

	if m.Declined {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			warningStyle.Render(iconSkipped),
			warningStyle.Render("Cancelled, nothing was moved."),
		))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		successStyle.Render(iconSuccess),
		successStyle.Render("Organization complete!"),
	))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Moved:"), statValueStyle.Render(fmt.Sprintf("%d files", m.Stats.Moved))))
	if m.Stats.Skipped > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped:"), warningStyle.Render(fmt.Sprintf("%d files", m.Stats.Skipped))))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseExecuting:
		help = "Moving files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatItemList formats planned moves for display, truncating long plans.
func formatItemList(items []domain.MoveItem, maxItems int) []string {
	if len(items) == 0 {
		return []string{}
	}

	lines := make([]string, 0, min(len(items), maxItems+1))

	if len(items) > maxItems {
		half := maxItems / 2
		for i := 0; i < half; i++ {
			lines = append(lines, formatItem(items[i]))
		}
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... %d more files ...", len(items)-maxItems)))
		for i := len(items) - half; i < len(items); i++ {
			lines = append(lines, formatItem(items[i]))
		}
	} else {
		for i := 0; i < len(items); i++ {
			lines = append(lines, formatItem(items[i]))
		}
	}

	return lines
}

func formatItem(item domain.MoveItem) string {
	name := fileNameStyle.Render(item.Name)
	category := categoryStyle.Render(item.Category)
	line := fmt.Sprintf("%s %s %s %s", iconFile, name, iconArrow, category)
	if item.Renamed {
		line += " " + warningStyle.Render("(renamed)")
	}
	return line
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
