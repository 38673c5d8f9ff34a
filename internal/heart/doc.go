// Package heart simulates the particle heart: target points sampled along
// three nested heart curves, a breathing scale applied to them every frame,
// and a swarm of emitters chasing those targets while dragging fading trails.
//
// The package draws through the Surface interface and takes its randomness
// from a Source, so hosts supply the drawing backend and tests supply
// deterministic draws.
package heart
