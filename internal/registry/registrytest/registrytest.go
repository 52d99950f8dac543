// Package registrytest builds filesystem registries for tests.
package registrytest

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"appcolors/internal/color"
	"appcolors/internal/registry"

	"github.com/stretchr/testify/require"
)

// ThemedManifest declares a package whose launch activity theme sets
// colorPrimary to primary and whose icon is icon.png.
func ThemedManifest(pkg string, primary color.RGB) string {
	return `package: ` + pkg + `
icon: icon.png
application:
  theme: AppTheme
activities:
  - name: .MainActivity
    theme: MainTheme
    launcher: true
attrs: [colorPrimary, "android:colorPrimary"]
styles:
  AppTheme: {}
  MainTheme:
    items:
      colorPrimary: "` + primary.Hex() + `"
`
}

// IconOnlyManifest declares a package with no themes and an icon.png.
func IconOnlyManifest(pkg string) string {
	return "package: " + pkg + "\nicon: icon.png\n"
}

// WritePackage writes manifest, and icon when non-nil, into root/pkg.
func WritePackage(t *testing.T, root, pkg, manifest string, icon image.Image) {
	t.Helper()
	dir := filepath.Join(root, pkg)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, registry.ManifestFileName), []byte(manifest), 0644))
	if icon == nil {
		return
	}
	WriteIcon(t, filepath.Join(dir, "icon.png"), icon)
}

// WriteIcon encodes img as PNG at path.
func WriteIcon(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// SolidIcon returns a size x size opaque image filled with c.
func SolidIcon(c color.RGB, size int) *image.NRGBA {
	r, g, b := c.RGB255()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}
