// Package registry describes the platform services appcolors reads
// application metadata from, and provides a filesystem-backed
// implementation of them.
//
// # Services
//
//   - [PackageRegistry]: application resources, launch activity, activity
//     and application metadata, and the application icon
//   - [Resources]: resource identifier lookup and theme attribute
//     resolution
//
// # Filesystem layout
//
// [Filesystem] expects one directory per package under a root directory,
// each containing a package.yaml manifest:
//
//	root/
//	  com.example.mail/
//	    package.yaml
//	    icon.png
//
// The manifest declares the application and activity themes, the attribute
// resources the package knows about, named colors, and styles with their
// items. Style items may hold a literal color (#RGB, #RRGGBB, #AARRGGBB),
// a color reference (@color/name), a theme attribute reference
// (?attr/name) or @null. Styles inherit from an explicit parent, or
// implicitly from the dotted prefix of their name.
//
// # Errors
//
// Lookups that find nothing wrap [ErrNotFound]; metadata that exists but
// cannot be read wraps [ErrUnavailable]. [ErrPackageNotFound] and
// [ErrResourcesUnavailable] mark the cases where the package cannot be
// introspected at all.
package registry
