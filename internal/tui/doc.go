// Package tui is the live terminal view of a running simulation.
//
// [Model] drives one [sim.Simulator] from bubbletea tick messages, one
// simulation tick per message, and renders the frame stream:
//
//   - top-down track of position, waypoints and launch on a braille [Canvas]
//   - control state, motor PWM bars and mission progress
//   - altitude and thrust history plotted with asciigraph
//
// # Key Bindings
//
//	Space  - Pause/Resume
//	R      - Restart the mission
//	Tab    - Cycle the selected gain
//	Up/K   - Increase gain (+10%)
//	Down/J - Decrease gain (-10%)
//	?      - Toggle help
//	Q      - Quit
package tui
