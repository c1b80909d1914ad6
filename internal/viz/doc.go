// Package viz is the terminal front end of kinelab.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: home screen with navigation boxes, one screen per scenario,
//     and the theory pages
//   - [Canvas]: Braille-based pixel canvas the scenes are drawn on
//   - [DrawCatapult], [DrawPendulum]: scene renderers for a single frame
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	R       - Reset to the launch position
//	Tab     - Select parameter
//	Up/Down - Step the selected parameter within its slider range
//	Esc     - Back to the home screen
//	T       - Cycle color themes
//	Q       - Quit
package viz
