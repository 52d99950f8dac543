package mcpserver

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"appcolors/internal/registry"
	"appcolors/internal/registry/registrytest"
	"appcolors/internal/resolver"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTools(t *testing.T) (*Tools, string) {
	t.Helper()
	root := t.TempDir()
	registrytest.WritePackage(t, root, "com.example.mail",
		registrytest.ThemedManifest("com.example.mail", 0x3F51B5), nil)
	registrytest.WritePackage(t, root, "com.example.bare",
		registrytest.IconOnlyManifest("com.example.bare"), nil)

	reg := registry.NewFilesystem(root)
	return NewTools(resolver.New(reg, resolver.Options{}), reg, 16, nil), root
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestServerTools(t *testing.T) {
	tools, _ := newTestTools(t)

	names := make(map[string]bool)
	for _, st := range tools.ServerTools() {
		names[st.Tool.Name] = true
		assert.NotNil(t, st.Handler)
	}
	assert.True(t, names["resolve_app_color"])
	assert.True(t, names["extract_palette"])
	assert.True(t, names["list_packages"])

	noLister := NewTools(tools.resolver, nil, 0, nil)
	assert.Len(t, noLister.ServerTools(), 2)
}

func TestHandleResolve(t *testing.T) {
	tools, _ := newTestTools(t)
	ctx := context.Background()

	result, err := tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{
		"package": "com.example.mail",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, true, got["found"])
	assert.Equal(t, "#3F51B5", got["color"])
	assert.Equal(t, "activity-theme", got["source"])
}

func TestHandleResolve_Fallback(t *testing.T) {
	tools, _ := newTestTools(t)
	ctx := context.Background()

	result, err := tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{
		"package": "com.example.bare",
	}))
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, false, got["found"])
	assert.NotContains(t, got, "color")

	result, err = tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{
		"package":  "com.example.bare",
		"fallback": "#ffffff",
	}))
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "#FFFFFF", got["color"])
	assert.Equal(t, "fallback", got["source"])
}

func TestHandleResolve_BadArguments(t *testing.T) {
	tools, _ := newTestTools(t)
	ctx := context.Background()

	result, err := tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{
		"package":  "com.example.mail",
		"fallback": "blue",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Invalid fallback")
}

func TestHandleResolve_Cancelled(t *testing.T) {
	tools, _ := newTestTools(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := tools.HandleResolve(ctx, callRequest("resolve_app_color", map[string]interface{}{
		"package": "com.example.mail",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleExtractPalette(t *testing.T) {
	tools, root := newTestTools(t)
	path := filepath.Join(root, "swatch.png")
	registrytest.WriteIcon(t, path, registrytest.SolidIcon(0x8899AA, 8))

	result, err := tools.HandleExtractPalette(context.Background(), callRequest("extract_palette", map[string]interface{}{
		"path": path,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got struct {
		Best     string `json:"best"`
		Swatches []struct {
			RGB        string `json:"rgb"`
			Population int    `json:"population"`
		} `json:"swatches"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "#8899AA", got.Best)
	require.Len(t, got.Swatches, 1)
	assert.Equal(t, 16*16, got.Swatches[0].Population)
}

func TestHandleExtractPalette_Errors(t *testing.T) {
	tools, root := newTestTools(t)
	ctx := context.Background()

	result, err := tools.HandleExtractPalette(ctx, callRequest("extract_palette", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = tools.HandleExtractPalette(ctx, callRequest("extract_palette", map[string]interface{}{
		"path": filepath.Join(root, "missing.png"),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleListPackages(t *testing.T) {
	tools, _ := newTestTools(t)

	result, err := tools.HandleListPackages(context.Background(), callRequest("list_packages", nil))
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.ElementsMatch(t, []string{"com.example.mail", "com.example.bare"}, got)
}

func TestHandleListPackages_Empty(t *testing.T) {
	reg := registry.NewFilesystem(t.TempDir())
	tools := NewTools(resolver.New(reg, resolver.Options{}), reg, 0, nil)

	result, err := tools.HandleListPackages(context.Background(), callRequest("list_packages", nil))
	require.NoError(t, err)
	assert.Equal(t, "No packages available", resultText(t, result))
}

func TestNew(t *testing.T) {
	reg := registry.NewFilesystem(t.TempDir())
	s := New(Config{Resolver: resolver.New(reg, resolver.Options{}), Lister: reg})
	require.NotNil(t, s)
	assert.NotNil(t, s.MCPServer())
}
