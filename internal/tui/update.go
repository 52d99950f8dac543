package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.resolving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resolvedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.resolving = false
		switch {
		case !msg.ok:
			m.result = msg.result
		case msg.result.Err != nil:
			m.err = msg.result.Err
		default:
			m.result = msg.result
		}
		return m, nil

	case newLogEntryMsg:
		m.appendTrace(formatEntry(msg))
		return m, listenForLogEntriesCmd(m.opts.LogChannel)

	case logChannelClosedMsg:
		m.opts.LogChannel = nil
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("copied %s", msg.hex)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Copy):
		if m.resolving || !m.result.Found {
			return m, nil
		}
		hex := m.result.Color.Hex()
		return m, func() tea.Msg {
			return copiedMsg{hex: hex, err: clipboardWriteAll(hex)}
		}

	case key.Matches(msg, m.keys.Refresh):
		if m.resolving {
			return m, nil
		}
		m.trace = nil
		m.startResolve()
		return m, tea.Batch(m.spinner.Tick, waitForResultCmd(m.generation, m.results))
	}
	return m, nil
}

func (m *model) appendTrace(line string) {
	m.trace = append(m.trace, line)
	if len(m.trace) > maxTraceLines {
		m.trace = m.trace[len(m.trace)-maxTraceLines:]
	}
}

func formatEntry(msg newLogEntryMsg) string {
	e := msg.entry
	line := fmt.Sprintf("%s [%s] %s", e.Timestamp.Format("15:04:05.000"), e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}
