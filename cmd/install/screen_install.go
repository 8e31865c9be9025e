// SPDX-License-Identifier: Apache-2.0
package install

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/ui"
)

const installLogLines = 10

// installScreen streams backend events into the step list and log tail.
// The event channel is the only source of progress truth.
type installScreen struct {
	settings *installer.Settings
	steps    []string
	events   <-chan installer.StepEvent
	cancelFn context.CancelFunc

	running   int
	completed int
	logs      *ui.LogBuffer
	spin      spinner.Model
	bar       progress.Model
	width     int
}

func newInstallScreen(settings *installer.Settings, backend installer.Backend, width int) *installScreen {
	ctx, cancel := context.WithCancel(context.Background())
	steps := installer.Steps(settings.Mode)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = config.CurrentTheme.InfoStyle()

	return &installScreen{
		settings: settings,
		steps:    steps,
		events:   backend.Execute(ctx, settings.Clone(), steps),
		cancelFn: cancel,
		running:  -1,
		logs:     ui.NewLogBuffer(installLogLines),
		spin:     sp,
		bar:      progress.New(progress.WithDefaultGradient()),
		width:    width,
	}
}

// cancel stops the backend. Safe to call more than once.
func (s *installScreen) cancel() {
	if s.cancelFn != nil {
		s.cancelFn()
	}
}

// waitForEvent blocks on the event channel and hands the result back to
// the update loop. Re-issued after every received event.
func waitForEvent(events <-chan installer.StepEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return stepEventMsg{Event: ev, OK: ok}
	}
}

func (s *installScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, waitForEvent(s.events))
}

func (s *installScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.bar.Width = msg.Width - 8

	case tea.KeyMsg:
		// the wizard tears the backend down before quitting, so the only
		// key honored here is an explicit quit
		if msg.String() == "q" {
			s.cancel()
			return s, quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case progress.FrameMsg:
		bar, cmd := s.bar.Update(msg)
		if b, ok := bar.(progress.Model); ok {
			s.bar = b
		}
		return s, cmd

	case stepEventMsg:
		if !msg.OK {
			// channel closed: success iff every step finished
			if s.completed == len(s.steps) {
				return s, func() tea.Msg { return installDoneMsg{} }
			}
			return s, nil
		}

		ev := msg.Event
		if ev.Log != "" {
			s.logs.Add(ev.Log)
		}
		switch ev.Status {
		case installer.StepStarted:
			s.running = ev.StepIndex
		case installer.StepCompleted:
			s.completed = ev.StepIndex + 1
			s.running = -1
		case installer.StepFailed:
			s.cancel()
			idx, reason := ev.StepIndex, ev.Err
			return s, func() tea.Msg {
				return installFailedMsg{StepIndex: idx, Reason: reason}
			}
		}
		pct := float64(s.completed) / float64(len(s.steps))
		return s, tea.Batch(waitForEvent(s.events), s.bar.SetPercent(pct))
	}
	return s, nil
}

func (s *installScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Installing"))
	b.WriteString("\n\n")

	for i, step := range s.steps {
		var indicator, text string
		switch {
		case i < s.completed:
			indicator = theme.PassIndicator()
			text = step
		case i == s.running:
			indicator = s.spin.View()
			text = theme.TitleStyle().Render(step)
		default:
			indicator = theme.PendingIndicator()
			text = theme.SubtleStyle().Render(step)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", indicator, text))
	}

	b.WriteString("\n  ")
	b.WriteString(s.bar.View())
	b.WriteString(fmt.Sprintf("\n\n%s\n", theme.SubtleStyle().Render(
		fmt.Sprintf("  %d/%d steps complete", s.completed, len(s.steps)))))

	if lines := s.logs.Lines(); len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(ui.Rule(s.width, theme.SubtleStyle()))
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString(theme.SubtleStyle().Render("  " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.WarningStyle().Render("  Do not power off the machine."))
	b.WriteString("\n")
	return b.String()
}
