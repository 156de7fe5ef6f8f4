package model

// Component is a handle on one node of a World: either a cell or a boundary sentinel.
// The zero Component stands for "no such component", which is what a sentinel
// answers when asked to look back across the edge of the plane.
type Component struct {
	world *World
	id    NodeID
}

// Valid reports whether the handle refers to a node.
func (c Component) Valid() bool {
	return c.world != nil && c.world.valid(c.id)
}

// ID returns the node's arena index.
func (c Component) ID() NodeID {
	if !c.Valid() {
		return noNode
	}
	return c.id
}

// IsCell reports whether this is a cell rather than a boundary sentinel.
func (c Component) IsCell() bool {
	return c.Valid() && c.world.isCell(c.id)
}

// Direction returns the direction a boundary sentinel is bound to.
func (c Component) Direction() (Direction, bool) {
	if !c.Valid() || c.world.isCell(c.id) {
		return 0, false
	}
	return c.world.nodes[c.id].dir, true
}

// Neighbor returns the component linked in dir.
func (c Component) Neighbor(dir Direction) Component {
	if !c.Valid() {
		return Component{}
	}
	return c.wrap(c.world.neighbor(c.id, dir))
}

// NeighborCell returns the cell in dir, growing the plane when dir currently
// points at a sentinel. Sentinels answer like Neighbor.
func (c Component) NeighborCell(dir Direction) Component {
	if !c.Valid() {
		return Component{}
	}
	return c.wrap(c.world.neighborCell(c.id, dir))
}

// Grow adds a ring of cells beyond an edge sentinel; a no-op for anything else.
func (c Component) Grow() {
	if c.Valid() {
		c.world.grow(c.id)
	}
}

// IsAlive reports the current state. Sentinels are never alive.
func (c Component) IsAlive() bool {
	return c.Valid() && c.world.isAlive(c.id)
}

// SetAlive sets both the current and the pending state of a cell.
// Sentinels reject it with ErrSentinelMutation.
func (c Component) SetAlive(alive bool) error {
	if c.world == nil {
		return ErrSentinelMutation
	}
	return c.world.setAlive(c.id, alive)
}

// CalculateNextState computes the pending state of a cell from its neighbours.
func (c Component) CalculateNextState() {
	if c.IsCell() {
		c.world.calculateNextState(c.id)
	}
}

// UpdateState commits the pending state of a cell.
func (c Component) UpdateState() {
	if c.IsCell() {
		c.world.updateState(c.id)
	}
}

// BuildCharRow renders this cell and everything to its right. Sentinels render as "".
func (c Component) BuildCharRow() string {
	if !c.IsCell() {
		return ""
	}
	return c.world.buildCharRow(c.id, DefaultGlyphs)
}

func (c Component) wrap(id NodeID) Component {
	if id == noNode {
		return Component{}
	}
	return c.world.component(id)
}
