package tui

import (
	"context"

	"appcolors/internal/color"
	"appcolors/internal/resolver"
	"appcolors/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxTraceLines bounds the log trace kept for display.
const maxTraceLines = 50

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// Options configures the preview.
type Options struct {
	Package  string
	Resolver *resolver.Resolver
	// Fallback, when set, is shown if no source yields a color.
	Fallback *color.RGB
	// LogChannel receives the resolver's log entries, usually from
	// logging.InitForTUI. May be nil.
	LogChannel <-chan logging.LogEntry
}

type model struct {
	opts Options
	keys KeyMap

	parent context.Context
	cancel context.CancelFunc
	// generation identifies the current resolution so results of a
	// cancelled one are ignored.
	generation int
	results    <-chan resolver.Result

	spinner   spinner.Model
	resolving bool
	result    resolver.Result
	err       error

	trace  []string
	status string

	width  int
	height int
}

// newModel builds the preview and starts resolving. Resolution stops when
// ctx is cancelled or the user quits.
func newModel(ctx context.Context, opts Options) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := model{
		opts:    opts,
		keys:    DefaultKeyMap(),
		parent:  ctx,
		spinner: s,
	}
	m.startResolve()
	return m
}

// startResolve cancels any running resolution and starts a new one.
func (m *model) startResolve() {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel
	m.generation++
	m.resolving = true
	m.result = resolver.Result{}
	m.err = nil
	m.status = ""

	if m.opts.Fallback != nil {
		m.results = m.opts.Resolver.ResolveAsyncWithFallback(ctx, m.opts.Package, *m.opts.Fallback)
	} else {
		m.results = m.opts.Resolver.ResolveAsync(ctx, m.opts.Package)
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForResultCmd(m.generation, m.results),
		listenForLogEntriesCmd(m.opts.LogChannel),
	)
}

// Run shows the preview until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := newModel(ctx, opts)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
