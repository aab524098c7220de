// Package oonetsim is a discrete-event network simulator built around a
// single idea: two pending events are safe to execute out of order if
// neither can possibly have seen the other's effects yet.
//
// 🚀 What is oooNetSim?
//
//	A single-process simulation kernel that turns a user-defined vertex
//	graph (stations, buffers, servers — anything with a read-set and a
//	write-set of shared state) into:
//
//	  • An Independence Time Limit table — a one-time, static bound on how
//	    far apart in time two vertices' events must be to be provably
//	    unaffected by each other (package itl, via all-pairs shortest paths).
//	  • A pending-event set ordered by (time, vertex) that uses that table
//	    to pick batches of mutually-independent events ready to fire in any
//	    order (package eventset).
//	  • A replaceable executor that fires those batches strictly in order,
//	    in fixed-size power-of-two chunks, or in randomized percentage
//	    batches — and compares the resulting trace against a known-good
//	    reference run (package executor).
//
// ✨ Why out-of-order execution is safe here
//
//   - The ITL table is derived once, from the graph's topology and
//     declared read/write sets — not from runtime behavior.
//   - Two pending events stay independent only while the elapsed time
//     between them is under their pair's ITL bound; once it isn't, they
//     serialize.
//   - State Variables are the only shared state a vertex can touch, and
//     every write is bounds-checked — a violated invariant is a modeling
//     bug, not silent corruption.
//
// Subpackages:
//
//	svreg/         — bounded State Variable registry
//	vgraph/        — vertex graph: Vertex contract, edges, read/write sets
//	matrix/        — dense matrices + Floyd-Warshall all-pairs shortest paths
//	itl/           — Independence Time Limit table builder, CSV cache
//	eventset/      — ordered pending-event multiset + independence oracle
//	executor/      — strict/OoO batch executors, reference-trace comparison
//	entity/        — simulation payloads threaded through events
//	distributions/ — random-variate generators for inter-arrival times
//	config/        — bespoke key/value model configuration format
//	topology/      — reusable topology builders (ring1d, ...)
//	cmd/oooNetSim/ — command-line entry point
//
//	go get github.com/ejensODU/PADS25-DDA-artifacts
package oonetsim
