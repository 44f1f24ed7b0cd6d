package batch

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qec-tools/qecutil/decgraph"
	"github.com/qec-tools/qecutil/defect"
	"github.com/qec-tools/qecutil/trace"
)

// Experiment is one independent unit of work: a measurement trace plus
// the collaborator-supplied inputs its decoding graph needs.
type Experiment struct {
	// ID labels the experiment in outcomes and logs; an empty ID is
	// assigned a fresh UUID when the batch starts.
	ID string

	// Trace is the raw multi-round measurement record.
	Trace *trace.Trace

	// Reference is the per-site initial state; nil compares consecutive
	// rounds only (defect.Extract), non-nil prepends the round-0 row
	// (defect.ExtractWithReference).
	Reference []uint8

	// Layout is the detector adjacency of the code.
	Layout decgraph.SiteLayout

	// Model is the calibrated error-mechanism list.
	Model []decgraph.Mechanism

	// Parity is the boundary parity required by the logical-operator
	// structure.
	Parity decgraph.BoundaryParity

	// BuildOptions are forwarded to decgraph.Build.
	BuildOptions []decgraph.Option
}

// Outcome is one experiment's result: either all three artifacts, or the
// per-item error that stopped its pipeline.
type Outcome struct {
	ID      string
	Defects *defect.Set
	Graph   *decgraph.Graph
	Report  *decgraph.Report
	Err     error
}

// options collects runner configuration.
type options struct {
	workers int
	logger  *zap.Logger
}

// Option configures Run.
type Option func(*options)

// WithWorkers bounds the worker pool; values < 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger attaches a structured logger for per-item failures; the
// default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Run processes every experiment through defect extraction, graph
// construction, and validation. The returned slice matches exps in
// length and order. Per-item errors land in their Outcome; a canceled
// context marks the unstarted items with ctx.Err().
func Run(ctx context.Context, exps []Experiment, opts ...Option) []Outcome {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(exps))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, exp := range exps {
		id := exp.ID
		if id == "" {
			id = uuid.NewString()
		}
		outcomes[i].ID = id

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err

				return nil
			}

			outcomes[i] = runOne(id, exp)
			if outcomes[i].Err != nil {
				o.logger.Warn("experiment failed",
					zap.String("experiment", id),
					zap.Error(outcomes[i].Err),
				)
			} else {
				o.logger.Debug("experiment complete",
					zap.String("experiment", id),
					zap.Int("nodes", outcomes[i].Report.Nodes),
					zap.Int("edges", outcomes[i].Report.Edges),
				)
			}

			return nil
		})
	}
	_ = g.Wait() // item errors never abort the batch

	return outcomes
}

// runOne walks one experiment through the pipeline, stopping at the
// first failing stage.
func runOne(id string, exp Experiment) Outcome {
	out := Outcome{ID: id}

	var err error
	if exp.Reference != nil {
		out.Defects, err = defect.ExtractWithReference(exp.Trace, exp.Reference)
	} else {
		out.Defects, err = defect.Extract(exp.Trace)
	}
	if err != nil {
		out.Err = err

		return out
	}

	out.Graph, err = decgraph.Build(exp.Layout, exp.Model, exp.BuildOptions...)
	if err != nil {
		out.Err = err

		return out
	}

	out.Report, err = decgraph.Validate(out.Graph, exp.Parity)
	if err != nil {
		out.Graph = nil // an invalid graph must never reach a decoder
		out.Err = err
	}

	return out
}
