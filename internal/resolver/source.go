package resolver

// Theme attribute names holding an application's primary color.
const (
	AttrColorPrimary        = "colorPrimary"
	AttrAndroidColorPrimary = "android:colorPrimary"
)

// Source identifies where a resolved color came from.
type Source int

const (
	SourceNone Source = iota
	SourceActivityModern
	SourceActivityLegacy
	SourceApplicationModern
	SourceApplicationLegacy
	SourceIcon
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceActivityModern:
		return "activity-theme"
	case SourceActivityLegacy:
		return "activity-theme-legacy"
	case SourceApplicationModern:
		return "application-theme"
	case SourceApplicationLegacy:
		return "application-theme-legacy"
	case SourceIcon:
		return "icon"
	case SourceFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Attr returns the theme attribute a theme source reads, or "" for
// non-theme sources.
func (s Source) Attr() string {
	switch s {
	case SourceActivityModern, SourceApplicationModern:
		return AttrColorPrimary
	case SourceActivityLegacy, SourceApplicationLegacy:
		return AttrAndroidColorPrimary
	default:
		return ""
	}
}

// MarshalText encodes the source name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
