// Package resolver derives a representative color for an installed
// application.
//
// Sources are tried in a fixed order and the first valid color wins:
//
//  1. launch activity theme, colorPrimary
//  2. launch activity theme, android:colorPrimary
//  3. application theme, colorPrimary
//  4. application theme, android:colorPrimary
//  5. palette extracted from the application icon
//
// A color is valid unless it is unset or one of the placeholder greys (see
// color.RGB.IsValid). Missing attributes, missing themes and unreadable
// icons are misses that move on to the next source. A package whose
// resources cannot be loaded at all resolves to nothing immediately. Any
// other registry failure is returned to the caller.
//
// Resolution only reads from the registry and holds no state between
// calls, so one Resolver can serve concurrent requests for different
// packages.
package resolver
