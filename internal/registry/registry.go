package registry

import (
	"context"
	"errors"
	"fmt"
	"image"

	"appcolors/internal/color"
)

// Resource types understood by Resources.Identifier.
const (
	TypeAttr  = "attr"
	TypeStyle = "style"
	TypeColor = "color"
)

var (
	// ErrNotFound marks a lookup that found nothing.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable marks metadata that exists but cannot be read.
	ErrUnavailable = errors.New("unavailable")

	// ErrPackageNotFound is returned when the registry does not know the package.
	ErrPackageNotFound = fmt.Errorf("package %w", ErrNotFound)
	// ErrResourcesUnavailable is returned when a package's resources cannot be loaded.
	ErrResourcesUnavailable = fmt.Errorf("resources %w", ErrUnavailable)
)

// ComponentName identifies an activity inside a package.
type ComponentName struct {
	Package string
	Class   string
}

func (c ComponentName) String() string {
	return c.Package + "/" + c.Class
}

// ActivityInfo is the metadata of one activity.
type ActivityInfo struct {
	Component ComponentName
	// Theme is the style resource id of the activity theme, 0 when unset.
	Theme int
}

// ApplicationInfo is the metadata of an application.
type ApplicationInfo struct {
	Package string
	// Theme is the style resource id of the application theme, 0 when unset.
	Theme int
}

// PackageRegistry provides read-only access to installed applications.
type PackageRegistry interface {
	// ResourcesForApplication returns the resource bundle of pkg. It fails
	// with ErrPackageNotFound or ErrResourcesUnavailable when the package
	// cannot be introspected.
	ResourcesForApplication(ctx context.Context, pkg string) (Resources, error)

	// LaunchActivity returns the default launchable activity of pkg, if any.
	LaunchActivity(ctx context.Context, pkg string) (ComponentName, bool, error)

	ActivityInfo(ctx context.Context, component ComponentName) (ActivityInfo, error)
	ApplicationInfo(ctx context.Context, pkg string) (ApplicationInfo, error)
	ApplicationIcon(ctx context.Context, pkg string) (image.Image, error)
}

// Resources is the resource bundle of one application.
type Resources interface {
	// Identifier returns the id of the named resource, or 0 when the
	// package does not declare it.
	Identifier(name, resourceType, pkg string) int

	// ThemeColor resolves the color attribute attrID against the theme
	// themeID. ok is false when the theme does not define the attribute.
	ThemeColor(themeID, attrID int) (c color.RGB, ok bool, err error)
}
