// Package batch runs the defect-extraction → graph-build → validation
// pipeline over many independent experiments in parallel.
//
// Experiments carry no data dependency on each other, so the runner is a
// plain bounded fan-out: a per-item failure is recorded in that item's
// Outcome (and logged) and the batch continues; nothing short of context
// cancellation stops the run. Results preserve input order.
//
// ⚙️ Usage:
//
//	outcomes := batch.Run(ctx, experiments,
//	  batch.WithWorkers(8),
//	  batch.WithLogger(logger),
//	)
//	for _, out := range outcomes {
//	  if out.Err != nil { continue } // already logged
//	  decoderInput := out.Graph
//	}
package batch
