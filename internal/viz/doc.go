// Package viz renders trajectory playback in the terminal.
//
// The package implements a timer-driven player on top of the Bubble Tea
// framework:
//
//   - [Player]: one playback session owning the sample table, the frame
//     index table and the draw surface
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first frame
//	T     - Cycle color themes
//	[]    - Step one frame back/forward while paused
//	?     - Show help overlay
//	Q     - Quit
package viz
