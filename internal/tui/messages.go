package tui

import (
	"appcolors/internal/resolver"
	"appcolors/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// resolvedMsg carries the outcome of one resolution. ok is false when the
// resolver closed its channel without a result.
type resolvedMsg struct {
	generation int
	result     resolver.Result
	ok         bool
}

// newLogEntryMsg carries one entry from the logging TUI channel.
type newLogEntryMsg struct {
	entry logging.LogEntry
}

// logChannelClosedMsg is sent once the logging TUI channel is closed.
type logChannelClosedMsg struct{}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	hex string
	err error
}

// waitForResultCmd waits for the single value of a resolver channel.
func waitForResultCmd(generation int, ch <-chan resolver.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		return resolvedMsg{generation: generation, result: res, ok: ok}
	}
}

// listenForLogEntriesCmd waits for the next log entry.
func listenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return newLogEntryMsg{entry: entry}
	}
}
