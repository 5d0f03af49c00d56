// Package viz renders solved projectile flights in the terminal.
//
// The package implements an animated TUI using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas with dashed lines and text overlay
//   - [Mapper]: physics-to-pixel coordinate mapping with uniform scale
//   - [Timeline]: wall-clock playback over trajectory samples
//   - [Scene]: grid, axes, traced path, rotated actor, and info overlay
//   - [Model]: playback component driving the scene at 60 frames per second
//   - [RunInteractive]: full-screen app with free flight and practice modes
//
// # Key Bindings
//
//	J/K   - Move cursor
//	Enter - Select / edit value
//	S     - Launch flight / submit answers
//	R     - Replay animation
//	T     - Cycle color themes
//	Esc   - Back to menu
//
// # Practice Mode
//
// Practice playback masks all numeric results: the overlay and stats
// panel show placeholders until the player has answered the level's
// questions, so the animation alone carries the qualitative story.
package viz
