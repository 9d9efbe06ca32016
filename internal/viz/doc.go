// Package viz is the terminal viewer for the gravity simulation.
//
// It is built on Bubble Tea:
//
//   - [Model]: ticks a simulator at 60 fps and draws its frames
//   - [Canvas]: Braille-based pixel canvas, eight dots per cell
//   - [App]: preset picker that launches a [Model]
//
// # Key Bindings
//
//	Arrows/WASD - Pan
//	+ / -       - Zoom
//	P           - Print the angles between the first two particles
//	Space       - Pause/Resume simulation
//	R           - Reset to a freshly generated population
//	T           - Cycle color themes
//	G           - Toggle GIF recording
//	?           - Show help overlay
//
// Debug output from the simulator is shown at the bottom of the stats panel.
package viz
