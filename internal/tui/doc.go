// Package tui implements the full-screen color preview.
//
// The preview resolves a package's color off the UI loop and fills the
// terminal with the result once it arrives. While resolution runs a spinner
// is shown together with the resolver's log trace, which is received from
// the logging package's TUI channel.
//
// Keys:
//
//	q, ctrl+c  cancel resolution and quit
//	y          copy the resolved hex color to the clipboard
//	r          resolve again
//
// Usage:
//
//	logChan := logging.InitForTUI(logging.LevelDebug)
//	defer logging.CloseTUIChannel()
//	err := tui.Run(ctx, tui.Options{Package: pkg, Resolver: r, LogChannel: logChan})
package tui
