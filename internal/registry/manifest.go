package registry

import (
	"fmt"
	"sort"
	"strings"

	"appcolors/internal/color"

	"gopkg.in/yaml.v3"
)

// maxReferenceDepth bounds @color and ?attr indirections.
const maxReferenceDepth = 16

// Manifest is the package.yaml of one application.
type Manifest struct {
	Package     string                   `yaml:"package"`
	Icon        string                   `yaml:"icon,omitempty"`
	Application ApplicationManifest      `yaml:"application,omitempty"`
	Activities  []ActivityManifest       `yaml:"activities,omitempty"`
	Attrs       []string                 `yaml:"attrs,omitempty"`
	Colors      map[string]string        `yaml:"colors,omitempty"`
	Styles      map[string]StyleManifest `yaml:"styles,omitempty"`
}

// ApplicationManifest holds application-level settings.
type ApplicationManifest struct {
	Theme string `yaml:"theme,omitempty"`
}

// ActivityManifest declares one activity.
type ActivityManifest struct {
	Name     string `yaml:"name"`
	Theme    string `yaml:"theme,omitempty"`
	Launcher bool   `yaml:"launcher,omitempty"`
}

// StyleManifest declares a style and the attribute values it sets.
type StyleManifest struct {
	Parent string            `yaml:"parent,omitempty"`
	Items  map[string]string `yaml:"items,omitempty"`
}

// ParseManifest decodes and validates a package.yaml document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if strings.TrimSpace(m.Package) == "" {
		return nil, fmt.Errorf("manifest has no package name")
	}
	for i, a := range m.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("activity %d has no name", i)
		}
	}
	return &m, nil
}

// className expands a leading-dot activity name against the package.
func (m *Manifest) className(name string) string {
	if strings.HasPrefix(name, ".") {
		return m.Package + name
	}
	return name
}

// resources indexes a manifest. Ids are 1-based positions in a stable
// ordering: declaration order for attrs, sorted names for styles and colors.
type resources struct {
	manifest *Manifest
	attrs    []string
	styles   []string
	colors   []string
}

func newResources(m *Manifest) *resources {
	r := &resources{manifest: m}

	seen := make(map[string]bool, len(m.Attrs))
	for _, a := range m.Attrs {
		if !seen[a] {
			seen[a] = true
			r.attrs = append(r.attrs, a)
		}
	}
	for name := range m.Styles {
		r.styles = append(r.styles, name)
	}
	sort.Strings(r.styles)
	for name := range m.Colors {
		r.colors = append(r.colors, name)
	}
	sort.Strings(r.colors)
	return r
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i + 1
		}
	}
	return 0
}

func nameOf(names []string, id int) (string, bool) {
	if id <= 0 || id > len(names) {
		return "", false
	}
	return names[id-1], true
}

// Identifier implements Resources.
func (r *resources) Identifier(name, resourceType, pkg string) int {
	if pkg != r.manifest.Package {
		return 0
	}
	switch resourceType {
	case TypeAttr:
		return indexOf(r.attrs, name)
	case TypeStyle:
		return indexOf(r.styles, strings.TrimPrefix(name, "@style/"))
	case TypeColor:
		return indexOf(r.colors, strings.TrimPrefix(name, "@color/"))
	default:
		return 0
	}
}

// ThemeColor implements Resources.
func (r *resources) ThemeColor(themeID, attrID int) (color.RGB, bool, error) {
	theme, ok := nameOf(r.styles, themeID)
	if !ok {
		return color.Unset, false, nil
	}
	attr, ok := nameOf(r.attrs, attrID)
	if !ok {
		return color.Unset, false, nil
	}
	return r.themeValue(theme, attr, 0)
}

func (r *resources) themeValue(theme, attr string, depth int) (color.RGB, bool, error) {
	raw, ok, err := r.lookupItem(theme, attr)
	if err != nil || !ok {
		return color.Unset, ok, err
	}
	return r.resolveValue(theme, raw, depth)
}

// lookupItem walks the style inheritance chain for attr.
func (r *resources) lookupItem(theme, attr string) (string, bool, error) {
	visited := make(map[string]bool)
	for name := theme; name != ""; name = r.parentOf(name) {
		if visited[name] {
			return "", false, fmt.Errorf("style %q inherits from itself: %w", name, ErrUnavailable)
		}
		visited[name] = true

		style, ok := r.manifest.Styles[name]
		if !ok {
			return "", false, nil
		}
		if v, ok := style.Items[attr]; ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// parentOf returns the explicit parent of a style, or the implicit parent
// given by its dotted name prefix.
func (r *resources) parentOf(name string) string {
	style := r.manifest.Styles[name]
	if parent := strings.TrimPrefix(strings.TrimSpace(style.Parent), "@style/"); parent != "" {
		return parent
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		if _, ok := r.manifest.Styles[name[:i]]; ok {
			return name[:i]
		}
	}
	return ""
}

func (r *resources) resolveValue(theme, raw string, depth int) (color.RGB, bool, error) {
	if depth > maxReferenceDepth {
		return color.Unset, false, fmt.Errorf("reference chain too deep at %q: %w", raw, ErrUnavailable)
	}

	value := strings.TrimSpace(raw)
	switch {
	case value == "@null":
		return color.Unset, true, nil
	case strings.HasPrefix(value, "#"):
		c, err := color.ParseHex(value)
		if err != nil {
			return color.Unset, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return c, true, nil
	case strings.HasPrefix(value, "@color/"):
		name := strings.TrimPrefix(value, "@color/")
		ref, ok := r.manifest.Colors[name]
		if !ok {
			return color.Unset, false, fmt.Errorf("color %q: %w", name, ErrNotFound)
		}
		return r.resolveValue(theme, ref, depth+1)
	case strings.HasPrefix(value, "?"):
		name := strings.TrimPrefix(strings.TrimPrefix(value, "?"), "attr/")
		return r.themeValue(theme, name, depth+1)
	default:
		return color.Unset, false, fmt.Errorf("unsupported value %q: %w", value, ErrUnavailable)
	}
}
