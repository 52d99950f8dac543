package resolver

import (
	"context"
	"errors"
	"image"
	"sync"

	"appcolors/internal/color"
	"appcolors/internal/palette"
	"appcolors/internal/registry"
)

const (
	testPkg         = "com.example.app"
	activityThemeID = 10
	appThemeID      = 20
)

type themeAttr struct {
	theme int
	attr  string
}

type fakeResources struct {
	attrs  map[string]int
	colors map[themeAttr]color.RGB
	errs   map[themeAttr]error
	reads  []themeAttr
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		attrs: map[string]int{AttrColorPrimary: 1, AttrAndroidColorPrimary: 2},
		colors: make(map[themeAttr]color.RGB),
		errs:   make(map[themeAttr]error),
	}
}

func (f *fakeResources) Identifier(name, resourceType, pkg string) int {
	if resourceType != registry.TypeAttr || pkg != testPkg {
		return 0
	}
	return f.attrs[name]
}

func (f *fakeResources) ThemeColor(themeID, attrID int) (color.RGB, bool, error) {
	var attr string
	for name, id := range f.attrs {
		if id == attrID {
			attr = name
		}
	}
	key := themeAttr{theme: themeID, attr: attr}
	f.reads = append(f.reads, key)
	if err := f.errs[key]; err != nil {
		return color.Unset, false, err
	}
	c, ok := f.colors[key]
	return c, ok, nil
}

type fakeRegistry struct {
	mu sync.Mutex

	res    registry.Resources
	resErr error

	launch      bool
	activity    registry.ActivityInfo
	activityErr error
	app         registry.ApplicationInfo
	appErr      error
	icon        image.Image
	iconErr     error

	calls map[string]int
	// hook runs at the start of every call.
	hook func(method string)
}

func newFakeRegistry(res *fakeResources) *fakeRegistry {
	return &fakeRegistry{
		res:      res,
		launch:   true,
		activity: registry.ActivityInfo{Component: registry.ComponentName{Package: testPkg, Class: testPkg + ".Main"}, Theme: activityThemeID},
		app:      registry.ApplicationInfo{Package: testPkg, Theme: appThemeID},
		iconErr:  registry.ErrNotFound,
		calls:    make(map[string]int),
	}
}

func (f *fakeRegistry) record(method string) {
	f.mu.Lock()
	f.calls[method]++
	hook := f.hook
	f.mu.Unlock()
	if hook != nil {
		hook(method)
	}
}

func (f *fakeRegistry) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeRegistry) ResourcesForApplication(ctx context.Context, pkg string) (registry.Resources, error) {
	f.record("resources")
	if f.resErr != nil {
		return nil, f.resErr
	}
	if pkg != testPkg {
		return nil, registry.ErrPackageNotFound
	}
	return f.res, nil
}

func (f *fakeRegistry) LaunchActivity(ctx context.Context, pkg string) (registry.ComponentName, bool, error) {
	f.record("launch")
	if !f.launch {
		return registry.ComponentName{}, false, nil
	}
	return f.activity.Component, true, nil
}

func (f *fakeRegistry) ActivityInfo(ctx context.Context, component registry.ComponentName) (registry.ActivityInfo, error) {
	f.record("activity")
	return f.activity, f.activityErr
}

func (f *fakeRegistry) ApplicationInfo(ctx context.Context, pkg string) (registry.ApplicationInfo, error) {
	f.record("application")
	return f.app, f.appErr
}

func (f *fakeRegistry) ApplicationIcon(ctx context.Context, pkg string) (image.Image, error) {
	f.record("icon")
	return f.icon, f.iconErr
}

type fakeGenerator struct {
	palette *palette.Palette
	err     error
	sizes   []image.Rectangle
}

func (g *fakeGenerator) Generate(img image.Image) (*palette.Palette, error) {
	g.sizes = append(g.sizes, img.Bounds())
	return g.palette, g.err
}

var errBroken = errors.New("metadata is corrupt")
