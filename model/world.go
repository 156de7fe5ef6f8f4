package model

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-unbounded/rules"
)

// ErrSentinelMutation is returned when something tries to change the state of a boundary sentinel.
var ErrSentinelMutation = errors.New("model: boundary sentinels are permanently dead")

// World is the arena holding every cell and boundary sentinel of one simulation.
// Nodes are never freed; links between them are arena indices.
type World struct {
	nodes   []node
	origin  NodeID
	rule    rules.Rule
	history []string // Recent snapshot hashes for cycle detection
}

// Option configures a World.
type Option func(*World)

// WithRule replaces the default Conway rule.
func WithRule(rule rules.Rule) Option {
	return func(w *World) {
		w.rule = rule
	}
}

// NewWorld creates a world holding a single dead cell.
func NewWorld(opts ...Option) *World {
	w := &World{rule: rules.Conway}
	for _, opt := range opts {
		opt(w)
	}
	w.origin = w.newCell()
	return w
}

// Origin returns the first cell ever created in the world.
func (w *World) Origin() Component {
	return w.component(w.origin)
}

// NodeCount returns the number of cells and sentinels allocated so far.
func (w *World) NodeCount() int {
	return len(w.nodes)
}

func (w *World) component(id NodeID) Component {
	return Component{world: w, id: id}
}

func (w *World) newCell() NodeID {
	w.nodes = append(w.nodes, newCellNode())
	return NodeID(len(w.nodes) - 1)
}

func (w *World) newEdge(dir Direction) NodeID {
	w.nodes = append(w.nodes, newEdgeNode(dir))
	return NodeID(len(w.nodes) - 1)
}

func (w *World) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(w.nodes)
}

func (w *World) isCell(id NodeID) bool {
	return w.valid(id) && w.nodes[id].kind == cellNode
}

func (w *World) isEdge(id NodeID) bool {
	return w.valid(id) && w.nodes[id].kind == edgeNode
}

func (w *World) isAlive(id NodeID) bool {
	return w.isCell(id) && w.nodes[id].alive
}

// neighbor resolves the link of id in dir. A cell that was never linked gets
// a fresh sentinel on all eight sides before the lookup is answered.
func (w *World) neighbor(id NodeID, dir Direction) NodeID {
	if !w.valid(id) {
		return noNode
	}
	if w.nodes[id].kind == edgeNode {
		if dir == w.nodes[id].dir.Opposite() {
			return noNode
		}
		return id
	}
	if w.nodes[id].links[dir] == noNode {
		w.initEdgesAndCorners(id)
	}
	return w.nodes[id].links[dir]
}

func (w *World) initEdgesAndCorners(id NodeID) {
	for _, dir := range Directions {
		w.addAdjacentCell(w.newEdge(dir), dir, id)
	}
}

// addAdjacentCell registers cell with an edge and points the cell at it.
// Cells keep directional links instead of adjacency sets, so for them it is a no-op.
func (w *World) addAdjacentCell(id NodeID, dir Direction, cell NodeID) {
	if !w.isEdge(id) {
		return
	}
	w.nodes[id].adjacent.Add(cell)
	w.point(cell, dir, id)
}

func (w *World) point(id NodeID, dir Direction, target NodeID) {
	w.nodes[id].links[dir] = target
}

// neighborCell is neighbor, but grows the plane so the result is always a cell.
// Sentinels answer with their plain neighbor.
func (w *World) neighborCell(id NodeID, dir Direction) NodeID {
	if !w.isCell(id) {
		return w.neighbor(id, dir)
	}
	next := w.neighbor(id, dir)
	if w.isCell(next) {
		return next
	}
	if dir.IsDiagonal() {
		side := w.neighborCell(id, dir.Right())
		w.neighborCell(side, dir.Left())
	} else {
		w.grow(next)
	}
	return w.neighbor(id, dir)
}

func (w *World) setCellAlive(id NodeID, alive bool) {
	w.nodes[id].alive = alive
	w.nodes[id].willLive = alive
}

func (w *World) setAlive(id NodeID, alive bool) error {
	switch {
	case w.isCell(id):
		w.setCellAlive(id, alive)
		return nil
	case w.isEdge(id):
		return errors.Wrapf(ErrSentinelMutation, "[SetAlive] %s sentinel %d", w.nodes[id].dir, id)
	default:
		return errors.Wrapf(ErrSentinelMutation, "[SetAlive] no component %d", id)
	}
}

// grow adds one ring of cells beyond an edge. Cells and corners do not grow.
func (w *World) grow(id NodeID) {
	if !w.isEdge(id) || w.nodes[id].dir.IsDiagonal() {
		return
	}

	var (
		dir   = w.nodes[id].dir
		olds  = w.nodes[id].adjacentCells()
		fresh = linkedhashset.New()
	)

	// One new cell per cell along the edge.
	for _, cell := range olds {
		newCell := w.newCell()
		fresh.Add(newCell)

		w.point(cell, dir, newCell)

		// Outward: this edge and the corners the old cell already saw.
		w.point(newCell, dir.Right(), w.neighbor(cell, dir.Right()))
		w.point(newCell, dir, id)
		w.point(newCell, dir.Left(), w.neighbor(cell, dir.Left()))

		// Inward: the old cell and its side neighbours.
		w.point(newCell, dir.Opposite().Right(), w.neighbor(cell, dir.Left().Left()))
		w.point(newCell, dir.Opposite(), cell)
		w.point(newCell, dir.Opposite().Left(), w.neighbor(cell, dir.Right().Right()))
	}

	// The side links need every new cell to exist first.
	for _, cell := range olds {
		var (
			rightSide = w.neighbor(cell, dir.Right().Right())
			leftSide  = w.neighbor(cell, dir.Left().Left())
			newCell   = w.nodes[cell].links[dir]
		)

		w.point(cell, dir.Right(), w.neighbor(rightSide, dir))
		w.point(cell, dir.Left(), w.neighbor(leftSide, dir))

		w.point(newCell, dir.Right().Right(), w.neighbor(rightSide, dir))
		w.point(newCell, dir.Left().Left(), w.neighbor(leftSide, dir))

		// New cells at either end of the ring now touch the side edges.
		if side := w.neighbor(newCell, dir.Opposite().Right()); w.isEdge(side) {
			w.addAdjacentCell(side, dir.Left().Left(), newCell)
		}
		if side := w.neighbor(newCell, dir.Opposite().Left()); w.isEdge(side) {
			w.addAdjacentCell(side, dir.Right().Right(), newCell)
		}
	}

	w.nodes[id].adjacent = fresh
}
