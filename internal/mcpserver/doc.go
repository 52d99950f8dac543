// Package mcpserver exposes color resolution and palette extraction as MCP
// tools over stdio.
//
// Tools:
//
//   - resolve_app_color: resolve the primary color of a package, with an
//     optional fallback hex color
//   - extract_palette: quantize an image file and report its swatches
//   - list_packages: list the packages known to the registry
//
// Results are returned as indented JSON text content.
package mcpserver
