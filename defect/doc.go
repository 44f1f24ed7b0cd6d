// Package defect converts measurement traces into defect indicators: a
// detector-site "fires" when its outcome changes parity between two
// consecutive syndrome-extraction rounds.
//
// 🚀 What is a defect?
//
//	A stabilizer measurement that repeats its previous value carries no new
//	error information. A flip between rounds — outcome[r] XOR outcome[r−1]
//	— signals that an error likely occurred between the two rounds. These
//	binary flips are the detectors a matching decoder works on.
//
// Two extraction forms:
//   - Extract          — defects for consecutive round pairs only; a trace
//     with R rounds yields R−1 defect rounds. A single-round trace yields
//     an empty Set, not an error.
//   - ExtractWithReference — additionally compares round 0 against a fixed
//     per-site baseline (the known initial state), yielding R defect rounds.
//
// Both are pure transforms: the input trace is read-only and the returned
// Set is immutable.
//
// Complexity: O(shots·rounds·sites) time, O(shots·rounds·sites) memory.
package defect
