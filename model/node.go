package model

import "github.com/emirpasic/gods/sets/linkedhashset"

// NodeID addresses a node inside a World's arena.
type NodeID int32

// noNode marks an unset link, or the absence of a component beyond the plane.
const noNode NodeID = -1

type nodeKind uint8

const (
	cellNode nodeKind = iota
	edgeNode
)

// node is either a cell or a boundary sentinel (edge or corner), told apart by kind.
type node struct {
	kind nodeKind

	// cell
	links    [directionCount]NodeID
	alive    bool
	willLive bool

	// edge
	dir      Direction
	adjacent *linkedhashset.Set
}

func newCellNode() node {
	n := node{kind: cellNode}
	for i := range n.links {
		n.links[i] = noNode
	}
	return n
}

func newEdgeNode(dir Direction) node {
	return node{
		kind:     edgeNode,
		dir:      dir,
		adjacent: linkedhashset.New(),
	}
}

// adjacentCells returns the edge's adjacency set in insertion order.
func (n *node) adjacentCells() []NodeID {
	ids := make([]NodeID, 0, n.adjacent.Size())
	n.adjacent.Each(func(_ int, v interface{}) {
		ids = append(ids, v.(NodeID))
	})
	return ids
}
