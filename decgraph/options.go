package decgraph

// WeightTransform selects the monotone decreasing map from merged
// probability to edge weight. The log-odds form is the reference
// convention; both satisfy: lower probability ⇒ higher traversal cost.
type WeightTransform int

const (
	// LogOdds weights edges as −ln(p/(1−p)). Default.
	LogOdds WeightTransform = iota

	// NegLog weights edges as −ln(p).
	NegLog
)

// DefaultBoundaryID is the label of the virtual boundary node unless
// overridden with WithBoundaryID.
const DefaultBoundaryID = "boundary"

// options collects Build configuration; fields stay unexported so the
// only mutation path is via Option values.
type options struct {
	transform WeightTransform
	boundary  string
}

// Option configures Build.
type Option func(*options)

// WithWeightTransform selects the probability→weight map.
func WithWeightTransform(t WeightTransform) Option {
	return func(o *options) { o.transform = t }
}

// WithBoundaryID overrides the virtual boundary node label. Useful when a
// layout legitimately contains a site named "boundary".
func WithBoundaryID(id string) Option {
	return func(o *options) { o.boundary = id }
}

// gatherOptions applies opts over the documented defaults and validates
// the result eagerly.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		transform: LogOdds,
		boundary:  DefaultBoundaryID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transform != LogOdds && o.transform != NegLog {
		return o, ErrUnknownTransform
	}
	if o.boundary == "" {
		return o, ErrEmptyBoundaryID
	}

	return o, nil
}
