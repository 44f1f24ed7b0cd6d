// Package trace stores raw QEC measurement outcomes as a dense, labeled,
// immutable array indexed by (shot, round, detector-site).
//
// 🚀 What is a measurement trace?
//
//	A QEC experiment repeats syndrome extraction over many rounds and many
//	shots. Each round produces one binary outcome per detector-site. The
//	trace is the complete record of those outcomes:
//	  • shot  — one full repetition of the experiment
//	  • round — one syndrome-extraction cycle inside a shot
//	  • site  — one tracked detector location (ancilla measurement)
//
// ✨ Guarantees:
//   - Completeness — every (shot, round, site) cell holds exactly one
//     outcome; a gap is ErrMalformedTrace with the offending coordinate,
//     never an implicit zero.
//   - Immutability — once constructed, a Trace is read-only; accessors
//     return copies, so downstream stages cannot reach back and mutate it.
//   - Stable site order — the order passed to New is the index order for
//     every downstream artifact (defect sets, decoding graphs).
//
// ⚙️ Usage:
//
//	tr, err := trace.New([]string{"X1", "X2"}, outcomes)
//	if err != nil {
//	  var ce *trace.CoordError
//	  if errors.As(err, &ce) { /* ce.Shot, ce.Round, ce.Site */ }
//	}
//	row, _ := tr.Row(0, 2) // site outcomes of shot 0, round 2
//
// Complexity: construction O(shots·rounds·sites); all accessors O(1)
// except Row/Sites which copy O(sites).
package trace
