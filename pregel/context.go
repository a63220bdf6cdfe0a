package pregel

import "github.com/katalvlaran/graphds/graphview"

// nodeCentricContext is the state shared by every per-vertex context: the
// view being traversed, the node-value storage, and the vertex currently
// being executed. It holds no default edge weight.
type nodeCentricContext struct {
	view   *graphview.View
	values *NodeValues
	node   int64
}

// Node returns the id of the vertex this context was built for.
func (c *nodeCentricContext) Node() int64 { return c.node }

// Degree returns the vertex's forward degree under the view's orientation.
func (c *nodeCentricContext) Degree() int64 { return c.view.Degree(c.node) }

// InDegree returns the vertex's inverse degree under the view's
// orientation. Panics if the view is not inverse-indexed.
func (c *nodeCentricContext) InDegree() int64 { return c.view.InDegree(c.node) }

// ForEachNeighbor calls consumer(target) for every forward neighbor,
// stopping early the first time consumer returns false.
func (c *nodeCentricContext) ForEachNeighbor(consumer func(target int64) bool) {
	c.view.ForEachNeighbor(c.node, func(_, tgt int64) bool { return consumer(tgt) })
}

// NodeCount returns the view's total vertex count.
func (c *nodeCentricContext) NodeCount() int64 { return c.view.NodeCount() }

// GetLong reads node value key for this context's vertex.
func (c *nodeCentricContext) GetLong(key string) int64 { return c.values.GetLong(key, c.node) }

// SetLong writes node value key for this context's vertex.
func (c *nodeCentricContext) SetLong(key string, v int64) { c.values.SetLong(key, c.node, v) }

// GetDouble reads node value key for this context's vertex.
func (c *nodeCentricContext) GetDouble(key string) float64 { return c.values.GetDouble(key, c.node) }

// SetDouble writes node value key for this context's vertex.
func (c *nodeCentricContext) SetDouble(key string, v float64) { c.values.SetDouble(key, c.node, v) }

// InitContext is given to Computation.Init, run once per vertex at
// superstep 0.
type InitContext struct {
	nodeCentricContext
}

// ComputeContext is given to Computation.Compute, run once per vertex per
// superstep from superstep 1 on; a vertex that voted to halt and has no
// incoming messages is skipped.
type ComputeContext struct {
	nodeCentricContext
	superstep   int64
	messenger   *Messenger
	sentMessage *sentMessageFlag
	voteBits    *VoteBits
}

// Superstep returns the current superstep index, starting at 0.
func (c *ComputeContext) Superstep() int64 { return c.superstep }

// SendTo enqueues value for target, to be visible in the next superstep.
func (c *ComputeContext) SendTo(target int64, value float64) {
	c.messenger.Send(c.node, target, value)
	c.sentMessage.set()
}

// SendToNeighbors sends value to every forward neighbor of this context's
// vertex.
func (c *ComputeContext) SendToNeighbors(value float64) {
	c.ForEachNeighbor(func(target int64) bool {
		c.SendTo(target, value)
		return true
	})
}

// VoteToHalt marks this context's vertex as halted for supersteps after
// this one, until it next receives a message.
func (c *ComputeContext) VoteToHalt() { c.voteBits.Vote(c.node) }

// MasterContext is given to MasterComputation.MasterCompute, run once per
// superstep after every vertex's compute has finished. It has read/write
// access to node values for every vertex but no messaging.
type MasterContext struct {
	view      *graphview.View
	values    *NodeValues
	superstep int64
}

// Superstep returns the superstep that just finished.
func (c *MasterContext) Superstep() int64 { return c.superstep }

// NodeCount returns the view's total vertex count.
func (c *MasterContext) NodeCount() int64 { return c.view.NodeCount() }

// GetLong reads node value key for node.
func (c *MasterContext) GetLong(key string, node int64) int64 { return c.values.GetLong(key, node) }

// SetLong writes node value key for node.
func (c *MasterContext) SetLong(key string, node int64, v int64) { c.values.SetLong(key, node, v) }

// GetDouble reads node value key for node.
func (c *MasterContext) GetDouble(key string, node int64) float64 {
	return c.values.GetDouble(key, node)
}

// SetDouble writes node value key for node.
func (c *MasterContext) SetDouble(key string, node int64, v float64) {
	c.values.SetDouble(key, node, v)
}
