package registry

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"appcolors/internal/palette"
)

// ManifestFileName is the per-package manifest file name.
const ManifestFileName = "package.yaml"

// Filesystem is a PackageRegistry reading packages from a directory tree.
// Manifests are read on every call; nothing is cached.
type Filesystem struct {
	root string
}

// NewFilesystem returns a registry rooted at root.
func NewFilesystem(root string) *Filesystem {
	return &Filesystem{root: filepath.Clean(root)}
}

// Root returns the registry root directory.
func (f *Filesystem) Root() string {
	return f.root
}

func (f *Filesystem) packageDir(pkg string) (string, error) {
	if pkg == "" || pkg == "." || pkg == ".." || strings.ContainsAny(pkg, `/\`) {
		return "", fmt.Errorf("invalid package name %q: %w", pkg, ErrPackageNotFound)
	}
	return filepath.Join(f.root, pkg), nil
}

func (f *Filesystem) load(ctx context.Context, pkg string) (*Manifest, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	dir, err := f.packageDir(pkg)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%s: %w", pkg, ErrPackageNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w: %v", pkg, ErrResourcesUnavailable, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w: %v", pkg, ErrResourcesUnavailable, err)
	}
	if m.Package != pkg {
		return nil, "", fmt.Errorf("%s: manifest declares package %q: %w", pkg, m.Package, ErrResourcesUnavailable)
	}
	return m, dir, nil
}

// ResourcesForApplication implements PackageRegistry.
func (f *Filesystem) ResourcesForApplication(ctx context.Context, pkg string) (Resources, error) {
	m, _, err := f.load(ctx, pkg)
	if err != nil {
		return nil, err
	}
	return newResources(m), nil
}

// LaunchActivity implements PackageRegistry. The first activity marked as
// launcher wins.
func (f *Filesystem) LaunchActivity(ctx context.Context, pkg string) (ComponentName, bool, error) {
	m, _, err := f.load(ctx, pkg)
	if err != nil {
		return ComponentName{}, false, err
	}
	for _, a := range m.Activities {
		if a.Launcher {
			return ComponentName{Package: pkg, Class: m.className(a.Name)}, true, nil
		}
	}
	return ComponentName{}, false, nil
}

// ActivityInfo implements PackageRegistry.
func (f *Filesystem) ActivityInfo(ctx context.Context, component ComponentName) (ActivityInfo, error) {
	m, _, err := f.load(ctx, component.Package)
	if err != nil {
		return ActivityInfo{}, err
	}
	for _, a := range m.Activities {
		if m.className(a.Name) != component.Class {
			continue
		}
		info := ActivityInfo{Component: component}
		if a.Theme != "" {
			info.Theme = newResources(m).Identifier(a.Theme, TypeStyle, m.Package)
		}
		return info, nil
	}
	return ActivityInfo{}, fmt.Errorf("activity %s: %w", component, ErrNotFound)
}

// ApplicationInfo implements PackageRegistry.
func (f *Filesystem) ApplicationInfo(ctx context.Context, pkg string) (ApplicationInfo, error) {
	m, _, err := f.load(ctx, pkg)
	if err != nil {
		return ApplicationInfo{}, err
	}
	info := ApplicationInfo{Package: pkg}
	if m.Application.Theme != "" {
		info.Theme = newResources(m).Identifier(m.Application.Theme, TypeStyle, pkg)
	}
	return info, nil
}

// ApplicationIcon implements PackageRegistry.
func (f *Filesystem) ApplicationIcon(ctx context.Context, pkg string) (image.Image, error) {
	m, dir, err := f.load(ctx, pkg)
	if err != nil {
		return nil, err
	}
	if m.Icon == "" {
		return nil, fmt.Errorf("%s icon: %w", pkg, ErrNotFound)
	}

	rel := filepath.Clean(m.Icon)
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%s icon path %q leaves the package directory: %w", pkg, m.Icon, ErrUnavailable)
	}

	file, err := os.Open(filepath.Join(dir, rel))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s icon: %w", pkg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s icon: %w: %v", pkg, ErrUnavailable, err)
	}
	defer file.Close()

	img, err := palette.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s icon: %w: %v", pkg, ErrUnavailable, err)
	}
	return img, nil
}

// Packages lists the package directories under the root that contain a
// manifest, in directory order.
func (f *Filesystem) Packages() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", f.root, err)
	}
	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(f.root, e.Name(), ManifestFileName)); err == nil {
			pkgs = append(pkgs, e.Name())
		}
	}
	return pkgs, nil
}
