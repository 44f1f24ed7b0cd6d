// Package qecutil is an analysis toolkit for quantum error correction
// experiments — from raw multi-round measurement records to decoder-ready
// graphs and fitted logical error rates.
//
// 🚀 What is qecutil?
//
//	A library that turns noisy syndrome-extraction data into the three
//	artifacts every matching-based QEC analysis needs:
//	  • Defect data: which detector fired between which rounds
//	  • A validated, weighted decoding graph for an external matcher
//	  • A fitted per-round logical error rate ε with bootstrap intervals
//
// ✨ Why qecutil?
//
//   - Fail-fast invariants — malformed traces, bad probabilities, and
//     broken graphs are rejected with the offending coordinate named
//   - Deterministic by construction — stable site orders, explicit seeds,
//     bit-reproducible bootstrap results at any worker count
//   - Immutable artifacts — each stage hands the next a read-only value
//
// The pipeline is organized under flat subpackages:
//
//	trace/    — labeled (shot, round, site) measurement store
//	defect/   — XOR-across-rounds defect extraction
//	decgraph/ — decoding-graph construction and invariant validation
//	lerfit/   — logical error-rate fitting with bootstrap intervals
//	layout/   — qubit layouts, surface-code generator, YAML round-trip
//	schedule/ — gate-schedule structural validation
//	batch/    — parallel many-experiment runner
//
// Data flows trace → defect → decgraph → (external decoder) → lerfit;
// layout and schedule supply the collaborator-side inputs, and batch
// fans the whole pipeline out over independent experiments.
//
//	go get github.com/qec-tools/qecutil
package qecutil
