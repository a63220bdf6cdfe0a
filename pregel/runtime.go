package pregel

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/graphview"
)

const defaultLeafSize = 1000

// Runtime drives a Computation over a graphview.View through the
// bulk-synchronous superstep loop: reset sent_message, run every vertex's
// init/compute under a work-partitioned fork-join pool, run
// master-compute, advance the messenger, then check convergence.
type Runtime struct {
	view   *graphview.View
	values *NodeValues
	comp   Computation
	master MasterComputation
	cfg    Config

	voteBits    *VoteBits
	sentMessage sentMessageFlag
	messenger   *Messenger

	terminationFlag *atomic.Bool
}

// New builds a Runtime for comp over view. terminationFlag may be nil (no
// external cancellation); when non-nil, the runtime polls it at every
// superstep boundary.
func New(view *graphview.View, comp Computation, cfg Config, terminationFlag *atomic.Bool) *Runtime {
	n := view.NodeCount()
	r := &Runtime{
		view:            view,
		values:          NewNodeValues(n, comp.Schema()),
		comp:            comp,
		cfg:             cfg,
		voteBits:        NewVoteBits(n),
		messenger:       NewMessenger(n, cfg.TrackSender),
		terminationFlag: terminationFlag,
	}
	if m, ok := comp.(MasterComputation); ok {
		r.master = m
	}
	return r
}

// Values exposes the runtime's node-value storage, readable during and
// after Run.
func (r *Runtime) Values() *NodeValues { return r.values }

// Run executes supersteps until convergence (sent_message is false and
// every vertex has voted to halt), master-compute requests termination, or
// MaxIterations is reached. A MaxIterations of zero means Run performs no
// supersteps at all. It returns the number of supersteps executed and a
// non-nil error only on cancellation or a vertex panic.
func (r *Runtime) Run(ctx context.Context) (int64, error) {
	var superstep int64
	for {
		if r.cancelled() {
			return superstep, gdserrors.ErrCancelled
		}
		if r.cfg.MaxIterations >= 0 && superstep >= r.cfg.MaxIterations {
			return superstep, nil
		}

		r.sentMessage.reset()
		if err := r.runPartition(ctx, superstep); err != nil {
			return superstep, err
		}

		var terminateRequested bool
		if r.master != nil {
			mctx := &MasterContext{view: r.view, values: r.values, superstep: superstep}
			terminateRequested = r.master.MasterCompute(mctx)
		}

		r.messenger.Advance()
		superstep++

		if terminateRequested {
			return superstep, nil
		}
		if r.cancelled() {
			return superstep, gdserrors.ErrCancelled
		}
		if !r.sentMessage.load() && r.voteBits.AllHalted() {
			return superstep, nil
		}
	}
}

func (r *Runtime) cancelled() bool {
	return r.terminationFlag != nil && r.terminationFlag.Load()
}

// runPartition splits [0, node_count) into a flat list of fixed
// leaf-sized chunks and runs them concurrently, bounded by
// Config.Concurrency. There is no recursive subdivision and no work
// stealing: a bounded worker group takes one fixed chunk per task; see
// DESIGN.md.
func (r *Runtime) runPartition(parent context.Context, superstep int64) error {
	n := r.view.NodeCount()
	leaf := r.cfg.LeafSize
	if leaf <= 0 {
		leaf = defaultLeafSize
	}
	concurrency := r.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, _ := errgroup.WithContext(parent)
	g.SetLimit(concurrency)

	for start := int64(0); start < n; start += leaf {
		start := start
		end := start + leaf
		if end > n {
			end = n
		}
		g.Go(func() (ferr error) {
			defer func() {
				if rec := recover(); rec != nil {
					ferr = fmt.Errorf("%w: %v", gdserrors.ErrAlgorithmFailed, rec)
				}
			}()
			for v := start; v < end; v++ {
				r.computeVertex(v, superstep)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runtime) computeVertex(v, superstep int64) {
	halted := r.voteBits.IsHalted(v)
	hasMessages := r.messenger.HasMessages(v)
	if halted && !hasMessages {
		return
	}
	if hasMessages {
		r.voteBits.Clear(v)
	}

	if superstep == 0 {
		ictx := &InitContext{nodeCentricContext{view: r.view, values: r.values, node: v}}
		r.comp.Init(ictx)
		return
	}

	msgs := r.messenger.Messages(v)
	cctx := &ComputeContext{
		nodeCentricContext: nodeCentricContext{view: r.view, values: r.values, node: v},
		superstep:          superstep,
		messenger:          r.messenger,
		sentMessage:        &r.sentMessage,
		voteBits:           r.voteBits,
	}
	r.comp.Compute(cctx, msgs)
}
