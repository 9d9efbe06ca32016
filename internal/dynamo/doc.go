// Package dynamo drives the gravity simulation one tick at a time.
//
// A [Simulator] owns a [physics.Population] and a [Config]. Each call to
// [Simulator.Tick] takes an [Input] snapshot from the viewer and runs:
//
//   - input handling: pan, zoom and the edge-triggered debug print
//   - the pair pass: gravity accumulation interleaved with merges
//   - integration, boundary handling and the force reset
//   - compaction of merged-away slots, then metrics and observers
//
// After a tick, [Simulator.Frame] returns the zoomed positions and radii the
// viewer draws, followed by the boundary overlay.
//
// # Example
//
//	pop, _ := physics.Generate(physics.Outward{Mass: 0.005, Speed: 0.01}, 400, cfg.Params, rnd)
//	sim, _ := dynamo.New(pop, cfg)
//	for !done {
//		_ = sim.Tick(readKeys())
//		draw(sim.Frame())
//	}
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Tick and Frame must be called
// from the same goroutine.
package dynamo
