package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"appcolors/internal/color"
	"appcolors/internal/registry"
	"appcolors/internal/registry/registrytest"
	"appcolors/internal/resolver"
	"appcolors/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, pkg string, fallback *color.RGB) model {
	t.Helper()
	root := t.TempDir()
	registrytest.WritePackage(t, root, "com.example.mail",
		registrytest.ThemedManifest("com.example.mail", 0x3F51B5), nil)

	r := resolver.New(registry.NewFilesystem(root), resolver.Options{})
	m := newModel(context.Background(), Options{Package: pkg, Resolver: r, Fallback: fallback})
	t.Cleanup(m.cancel)
	return m
}

// resolve feeds the pending resolution result into m.
func resolve(t *testing.T, m model) model {
	t.Helper()
	msg := waitForResultCmd(m.generation, m.results)()
	updated, _ := m.Update(msg)
	return updated.(model)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(m model) model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return updated.(model)
}

func TestModel_Resolves(t *testing.T) {
	m := sized(newTestModel(t, "com.example.mail", nil))
	assert.True(t, m.resolving)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Resolving")

	m = resolve(t, m)
	assert.False(t, m.resolving)
	assert.True(t, m.result.Found)
	assert.Equal(t, color.RGB(0x3F51B5), m.result.Color)
	assert.Contains(t, m.View(), "#3F51B5")
	assert.Contains(t, m.View(), "activity-theme")
}

func TestModel_NotFound(t *testing.T) {
	m := resolve(t, sized(newTestModel(t, "com.example.none", nil)))
	assert.False(t, m.result.Found)
	assert.Contains(t, m.View(), "No color found")
}

func TestModel_Fallback(t *testing.T) {
	fb := color.RGB(0xFFFFFF)
	m := resolve(t, sized(newTestModel(t, "com.example.none", &fb)))
	assert.True(t, m.result.Found)
	assert.Equal(t, resolver.SourceFallback, m.result.Source)
	assert.Contains(t, m.View(), "#FFFFFF")
}

func TestModel_ResolveError(t *testing.T) {
	m := sized(newTestModel(t, "com.example.mail", nil))
	updated, _ := m.Update(resolvedMsg{
		generation: m.generation,
		result:     resolver.Result{Err: errors.New("corrupt metadata")},
		ok:         true,
	})
	m = updated.(model)
	assert.Contains(t, m.View(), "Error: corrupt metadata")
}

func TestModel_IgnoresStaleResult(t *testing.T) {
	m := newTestModel(t, "com.example.mail", nil)
	updated, _ := m.Update(resolvedMsg{
		generation: m.generation - 1,
		result:     resolver.Result{Color: 0x123456, Found: true},
		ok:         true,
	})
	m = updated.(model)
	assert.True(t, m.resolving)
	assert.False(t, m.result.Found)
}

func TestModel_InitializingView(t *testing.T) {
	m := newTestModel(t, "com.example.mail", nil)
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, "com.example.mail", nil)
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, "key %s", k)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_QuitCancelsResolution(t *testing.T) {
	m := newTestModel(t, "com.example.mail", nil)
	_, _ = m.Update(keyMsg("q"))

	select {
	case <-m.results:
	case <-time.After(5 * time.Second):
		t.Fatal("resolution did not finish after quit")
	}
}

func TestModel_Copy(t *testing.T) {
	var copied string
	original := clipboardWriteAll
	defer func() { clipboardWriteAll = original }()
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}

	m := newTestModel(t, "com.example.mail", nil)
	_, cmd := m.Update(keyMsg("y"))
	assert.Nil(t, cmd, "nothing to copy while resolving")

	m = sized(resolve(t, m))
	_, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "#3F51B5", copied)

	updated, _ := m.Update(msg)
	assert.Contains(t, updated.(model).View(), "copied #3F51B5")
}

func TestModel_CopyFailure(t *testing.T) {
	original := clipboardWriteAll
	defer func() { clipboardWriteAll = original }()
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }

	m := sized(resolve(t, newTestModel(t, "com.example.mail", nil)))
	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	assert.Contains(t, updated.(model).View(), "copy failed: no clipboard")
}

func TestModel_Refresh(t *testing.T) {
	m := resolve(t, newTestModel(t, "com.example.mail", nil))
	gen := m.generation

	updated, cmd := m.Update(keyMsg("r"))
	m = updated.(model)
	assert.NotNil(t, cmd)
	assert.True(t, m.resolving)
	assert.Equal(t, gen+1, m.generation)

	m = resolve(t, m)
	assert.Equal(t, color.RGB(0x3F51B5), m.result.Color)
}

func TestModel_LogTrace(t *testing.T) {
	logChan := make(chan logging.LogEntry, 1)
	m := newTestModel(t, "com.example.mail", nil)
	m.opts.LogChannel = logChan

	for i := 0; i < maxTraceLines+5; i++ {
		updated, cmd := m.Update(newLogEntryMsg{entry: logging.LogEntry{
			Timestamp: time.Now(),
			Level:     logging.LevelDebug,
			Subsystem: "Resolver",
			Message:   fmt.Sprintf("step %d", i),
		}})
		m = updated.(model)
		assert.NotNil(t, cmd)
	}
	assert.Len(t, m.trace, maxTraceLines)
	assert.True(t, strings.HasSuffix(m.trace[len(m.trace)-1], fmt.Sprintf("step %d", maxTraceLines+4)))

	close(logChan)
	msg := listenForLogEntriesCmd(logChan)()
	assert.Equal(t, logChannelClosedMsg{}, msg)
	updated, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Nil(t, updated.(model).opts.LogChannel)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
