package pregel

// Computation is the per-vertex algorithm contract a Runtime drives: a
// schema of node-value columns, an init function run once per vertex at
// superstep 0, and a compute function run per vertex per superstep
// thereafter.
type Computation interface {
	Schema() Schema
	Init(ctx *InitContext)
	Compute(ctx *ComputeContext, messages *MessageIterator)
}

// MasterComputation is an optional addition to Computation: a function run
// once per superstep, after every vertex's compute for that superstep has
// finished, with read/write access to all node values but no messaging. A
// Computation that also implements MasterComputation gets its
// MasterCompute invoked every superstep; returning true requests immediate
// termination regardless of the vote-to-halt/sent-message state.
type MasterComputation interface {
	MasterCompute(ctx *MasterContext) bool
}

// Config is the recognized set of options from spec.md §6's Pregel API
// table.
type Config struct {
	// MaxIterations upper-bounds the number of supersteps. Zero means run
	// zero supersteps (spec.md's named "zero-iteration termination"
	// boundary case: Run returns immediately with no vertex ever
	// computed). A negative value means unbounded — convergence or
	// cancellation is then the only way out.
	MaxIterations int64

	// Concurrency is the number of workers computing vertices
	// concurrently. Defaults to 1 if <= 0.
	Concurrency int

	// AsyncMode is not read by the runtime. A MasterCompute termination
	// request ends Run whether or not AsyncMode is set, and it is always
	// checked before the quiescence check (sent_message/vote_bits).
	AsyncMode bool

	// IsAsynchronous, if true, documents that Compute may read values it
	// wrote earlier in the same superstep; the runtime does not enforce
	// or special-case this, it is the algorithm's own responsibility.
	IsAsynchronous bool

	// RelationshipWeightProperty optionally names a relationship property
	// to use as the default edge weight. The runtime does not read it, and
	// no context exposes edge weights.
	RelationshipWeightProperty string

	// TrackSender, if true, attaches the sending vertex's id to every
	// message.
	TrackSender bool

	// LeafSize bounds how many vertices one partition leaf processes
	// sequentially before the runtime forks another task. Defaults to
	// 1000 if <= 0.
	LeafSize int64
}
