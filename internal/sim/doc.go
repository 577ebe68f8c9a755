// Package sim provides the step-driven Ising simulator façade.
//
// A [Simulator] owns a lattice, a random source and the thermodynamic
// parameters. Hosts drive it by calling [Simulator.Tick] (or
// [Simulator.Burst]) from their frame loop and issue commands in response
// to input:
//
//	s, _ := sim.New(80, 80, sim.DefaultTemperature, sim.WithSeed(42))
//	s.Randomise()
//	for frame := 0; frame < 100; frame++ {
//		_ = s.Tick()
//		draw(s.Snapshot())
//	}
//
// # Running state
//
// A simulator starts Running. While Stopped, Burst, Sweep and Tick are
// no-ops; Step still performs a single update.
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. All methods must be called from a
// single owner, typically the host's event loop.
package sim
