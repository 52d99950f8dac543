package resolver

import (
	"context"
	"fmt"

	"appcolors/internal/color"
	"appcolors/internal/palette"
	"appcolors/internal/registry"
)

// session holds the per-request lookups shared between attempts. It is
// used by a single goroutine.
type session struct {
	resolver *Resolver
	pkg      string
	res      registry.Resources

	activityLoaded bool
	activityTheme  int
	activityErr    error

	appLoaded bool
	appTheme  int
	appErr    error
}

func (s *session) attempts() []attempt {
	return []attempt{
		{SourceActivityModern, s.fromActivity(AttrColorPrimary)},
		{SourceActivityLegacy, s.fromActivity(AttrAndroidColorPrimary)},
		{SourceApplicationModern, s.fromApplication(AttrColorPrimary)},
		{SourceApplicationLegacy, s.fromApplication(AttrAndroidColorPrimary)},
		{SourceIcon, s.fromIcon},
	}
}

func (s *session) fromActivity(attr string) func(context.Context) (color.RGB, bool, error) {
	return func(ctx context.Context) (color.RGB, bool, error) {
		theme, err := s.loadActivityTheme(ctx)
		if err != nil {
			return color.Unset, false, err
		}
		return s.themeColor(theme, attr)
	}
}

func (s *session) fromApplication(attr string) func(context.Context) (color.RGB, bool, error) {
	return func(ctx context.Context) (color.RGB, bool, error) {
		theme, err := s.loadApplicationTheme(ctx)
		if err != nil {
			return color.Unset, false, err
		}
		return s.themeColor(theme, attr)
	}
}

// loadActivityTheme returns the launch activity's theme id, 0 when the
// package has no launch activity.
func (s *session) loadActivityTheme(ctx context.Context) (int, error) {
	if s.activityLoaded {
		return s.activityTheme, s.activityErr
	}
	s.activityLoaded = true

	component, ok, err := s.resolver.registry.LaunchActivity(ctx, s.pkg)
	if err != nil {
		s.activityErr = fmt.Errorf("launch activity: %w", err)
		return 0, s.activityErr
	}
	if !ok {
		return 0, nil
	}
	info, err := s.resolver.registry.ActivityInfo(ctx, component)
	if err != nil {
		s.activityErr = fmt.Errorf("activity %s: %w", component, err)
		return 0, s.activityErr
	}
	s.activityTheme = info.Theme
	return s.activityTheme, nil
}

func (s *session) loadApplicationTheme(ctx context.Context) (int, error) {
	if s.appLoaded {
		return s.appTheme, s.appErr
	}
	s.appLoaded = true

	info, err := s.resolver.registry.ApplicationInfo(ctx, s.pkg)
	if err != nil {
		s.appErr = fmt.Errorf("application info: %w", err)
		return 0, s.appErr
	}
	s.appTheme = info.Theme
	return s.appTheme, nil
}

// themeColor reads attr from theme. A missing theme or an attribute the
// package does not declare is a miss without touching the theme.
func (s *session) themeColor(theme int, attr string) (color.RGB, bool, error) {
	if theme <= 0 {
		return color.Unset, false, nil
	}
	id := s.res.Identifier(attr, registry.TypeAttr, s.pkg)
	if id <= 0 {
		return color.Unset, false, nil
	}
	return s.res.ThemeColor(theme, id)
}

func (s *session) fromIcon(ctx context.Context) (color.RGB, bool, error) {
	icon, err := s.resolver.registry.ApplicationIcon(ctx, s.pkg)
	if err != nil {
		return color.Unset, false, fmt.Errorf("icon: %w", err)
	}
	if icon == nil {
		return color.Unset, false, nil
	}

	p, err := s.resolver.generator.Generate(palette.Rasterize(icon, s.resolver.iconSize))
	if err != nil {
		return color.Unset, false, fmt.Errorf("icon palette: %w: %v", registry.ErrUnavailable, err)
	}
	return palette.SelectBestColor(p, color.Unset), true, nil
}
