// Package tncodes is your in-memory toolkit for building, transforming,
// and decoding tensor-network stabilizer codes — from Pauli primitives
// to surface-code patches and maximum-likelihood decoding.
//
// 🚀 What is tncodes?
//
//	A small, explicit library that brings together:
//		• Pauli algebra: integer-coded operators, products, commutation, parsing
//		• Stabilizer codes: construction, verification, syndromes, pure errors
//		• Tensor networks: codes as graphs of seed-code nodes with geometry
//		• Code surgery: combine, fusion and contraction with full bookkeeping
//		• Decoding: exact and MPS-approximate maximum-likelihood corrections
//		• Enumeration: weight histograms and code distance off the network
//		• Builders: five-qubit, Steane, Bell and both surface-code families
//
// ✨ Why choose tncodes?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit RNG everywhere, no global state
//   - Pure Go – no cgo; gonum under the tensor hood
//   - Composable – every factory output feeds every transform and the decoder
//
// Under the hood, everything is organized under five subpackages:
//
//	pauli/   — Pauli symbols and multi-qubit operators
//	code/    — stabilizer codes: build, verify, transform, randomize
//	tncode/  — tensor-network codes: graphs, seeds, surgery operations
//	decoder/ — maximum-likelihood decoding and weight enumerators
//	builder/ — ready-made example codes and surface-code lattices
//
// Quick ASCII example:
//
//	    five──wire
//	     │      │
//	    wire──wire
//
//	represents a five-qubit code stretched over a 2x2 lattice by three
//	Bell wires, ready for MPS decoding.
//
//	go get github.com/katalvlaran/tncodes
package tncodes
