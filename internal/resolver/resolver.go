package resolver

import (
	"context"
	"errors"
	"fmt"

	"appcolors/internal/color"
	"appcolors/internal/palette"
	"appcolors/internal/registry"
	"appcolors/pkg/logging"
)

const subsystem = "Resolver"

// Request identifies the application to resolve and an optional fallback.
type Request struct {
	Package  string
	Fallback *color.RGB
}

// Result is the outcome of one resolution. Found is false when no source
// produced a valid color and no fallback was requested.
type Result struct {
	Package string    `json:"package"`
	Color   color.RGB `json:"color"`
	Source  Source    `json:"source"`
	Found   bool      `json:"found"`
	Err     error     `json:"-"`
}

// Options configures a Resolver.
type Options struct {
	// IconSize is the edge length icons are rasterized to.
	IconSize int
	// Generator builds the icon palette. Defaults to a MedianCut.
	Generator palette.Generator
}

// Resolver resolves application colors from a package registry.
type Resolver struct {
	registry  registry.PackageRegistry
	iconSize  int
	generator palette.Generator
}

// New returns a Resolver reading from reg.
func New(reg registry.PackageRegistry, opts Options) *Resolver {
	if opts.IconSize <= 0 {
		opts.IconSize = palette.DefaultIconSize
	}
	if opts.Generator == nil {
		opts.Generator = palette.NewMedianCut(palette.DefaultMaxColors)
	}
	return &Resolver{
		registry:  reg,
		iconSize:  opts.IconSize,
		generator: opts.Generator,
	}
}

// ResolveOptional returns the color of pkg, or ok == false when no source
// yields a valid color.
func (r *Resolver) ResolveOptional(ctx context.Context, pkg string) (c color.RGB, ok bool, err error) {
	res, err := r.Resolve(ctx, Request{Package: pkg})
	if err != nil {
		return color.Unset, false, err
	}
	return res.Color, res.Found, nil
}

// ResolveWithFallback returns the color of pkg, or fallback when no source
// yields a valid color.
func (r *Resolver) ResolveWithFallback(ctx context.Context, pkg string, fallback color.RGB) (color.RGB, error) {
	res, err := r.Resolve(ctx, Request{Package: pkg, Fallback: &fallback})
	if err != nil {
		return color.Unset, err
	}
	return res.Color, nil
}

// Resolve runs the source chain for req. It returns ctx.Err() if ctx is
// cancelled before a result is produced.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	res, err := r.resolve(ctx, req.Package)
	if err != nil {
		return Result{}, err
	}
	if !res.Found && req.Fallback != nil {
		res = Result{Package: req.Package, Color: *req.Fallback, Source: SourceFallback, Found: true}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// ResolveAsync resolves pkg on its own goroutine. The channel carries at
// most one Result and is then closed: a found color, a Result with Err set
// on unexpected failure, or nothing when no color was found or ctx was
// cancelled.
func (r *Resolver) ResolveAsync(ctx context.Context, pkg string) <-chan Result {
	return r.async(ctx, Request{Package: pkg})
}

// ResolveAsyncWithFallback is ResolveAsync with a fallback color, so a
// Result is always delivered unless ctx is cancelled.
func (r *Resolver) ResolveAsyncWithFallback(ctx context.Context, pkg string, fallback color.RGB) <-chan Result {
	return r.async(ctx, Request{Package: pkg, Fallback: &fallback})
}

func (r *Resolver) async(ctx context.Context, req Request) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		res, err := r.Resolve(ctx, req)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			out <- Result{Package: req.Package, Err: err}
			return
		}
		if res.Found {
			out <- res
		}
	}()
	return out
}

type attempt struct {
	source Source
	run    func(ctx context.Context) (color.RGB, bool, error)
}

func (r *Resolver) resolve(ctx context.Context, pkg string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res, err := r.registry.ResourcesForApplication(ctx, pkg)
	if errors.Is(err, registry.ErrPackageNotFound) || errors.Is(err, registry.ErrResourcesUnavailable) {
		logging.Debug(subsystem, "%s: resources unavailable: %v", pkg, err)
		return Result{Package: pkg}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to load resources for %s: %w", pkg, err)
	}
	if res == nil {
		logging.Debug(subsystem, "%s: resources unavailable", pkg)
		return Result{Package: pkg}, nil
	}

	s := &session{resolver: r, pkg: pkg, res: res}
	for _, a := range s.attempts() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		c, ok, err := a.run(ctx)
		switch {
		case err != nil && isMiss(err):
			logging.Debug(subsystem, "%s: %s miss: %v", pkg, a.source, err)
			continue
		case err != nil:
			return Result{}, fmt.Errorf("%s lookup for %s: %w", a.source, pkg, err)
		case !ok:
			logging.Debug(subsystem, "%s: %s not set", pkg, a.source)
			continue
		case !c.IsValid():
			logging.Debug(subsystem, "%s: %s gave reserved color %s", pkg, a.source, c)
			continue
		}

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		logging.Debug(subsystem, "%s: using %s color %s", pkg, a.source, c)
		return Result{Package: pkg, Color: c, Source: a.source, Found: true}, nil
	}

	logging.Debug(subsystem, "%s: no source produced a color", pkg)
	return Result{Package: pkg}, nil
}

func isMiss(err error) bool {
	return errors.Is(err, registry.ErrNotFound) || errors.Is(err, registry.ErrUnavailable)
}
