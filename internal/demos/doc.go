// Package demos registers the coordination_oru demos with the launcher.
// Importing it for side effects populates registry.Default. Each demo only
// reports the scenario it would simulate; the simulations themselves live
// outside this repository.
package demos
