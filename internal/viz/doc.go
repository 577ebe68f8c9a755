// Package viz provides the interactive terminal host for the Ising
// simulator.
//
// The host is a Bubble Tea program: a tick message every frame calls
// [sim.Simulator.Tick], and key and mouse events are translated into
// simulator commands.
//
// # Key Bindings
//
//	Space - Start/Stop the simulation
//	S     - Single update
//	R     - Randomise the lattice
//	C     - Clear (all spins down)
//	+/-   - Raise/lower the temperature
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// Clicking a cell with the left mouse button flips its spin.
package viz
