package model

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Glyphs are the strings a snapshot uses for live and dead cells.
type Glyphs struct {
	Alive string
	Dead  string
}

// DefaultGlyphs render cells as "1 " and "0 ".
var DefaultGlyphs = Glyphs{Alive: "1 ", Dead: "0 "}

// TopLeft walks up, then left, until the next step would leave the grid.
func (c Component) TopLeft() Component {
	if !c.IsCell() {
		return c
	}
	return c.world.component(c.world.topLeft(c.id))
}

// BuildCurrentCharGrid renders the whole grid this cell belongs to, one
// newline-terminated row per line.
func (c Component) BuildCurrentCharGrid() string {
	if !c.IsCell() {
		return ""
	}
	return c.world.render(c.id, DefaultGlyphs)
}

// ReadLine sets a row of cells from this cell rightwards: '1' is alive,
// any other rune is dead and whitespace is skipped. The grid grows to fit.
func (c Component) ReadLine(line string) error {
	if !c.IsCell() {
		return errors.Wrapf(ErrSentinelMutation, "[ReadLine] cannot ingest %q", line)
	}
	c.world.readLine(c.id, line)
	return nil
}

// CycleToNextGeneration advances the grid this cell belongs to by one generation.
func (c Component) CycleToNextGeneration() {
	if c.IsCell() {
		c.world.cycleToNextGeneration(c.id)
	}
}

// Snapshot renders the world with the default glyphs
func (w *World) Snapshot() string {
	return w.render(w.origin, DefaultGlyphs)
}

// Render renders the world with custom glyphs
func (w *World) Render(glyphs Glyphs) string {
	return w.render(w.origin, glyphs)
}

// Advance moves the world on by one generation
func (w *World) Advance() {
	w.cycleToNextGeneration(w.origin)
}

// Load ingests rows top to bottom, the first one at the origin and each
// following one on the next row down.
func (w *World) Load(rows []string) error {
	cursor := w.Origin()
	for i, row := range rows {
		if i > 0 {
			cursor = cursor.NeighborCell(Down)
		}
		if err := cursor.ReadLine(row); err != nil {
			return errors.Wrapf(err, "[Load] row %d", i)
		}
	}
	return nil
}

// Population returns the number of living cells
func (w *World) Population() (count int) {
	w.eachCell(w.topLeft(w.origin), func(id NodeID) {
		if w.nodes[id].alive {
			count++
		}
	})
	return
}

// Extent returns the width and height of the materialized grid
func (w *World) Extent() (width, height int) {
	anchor := w.topLeft(w.origin)
	for id := anchor; w.isCell(id); id = w.neighbor(id, Right) {
		width++
	}
	for id := anchor; w.isCell(id); id = w.neighbor(id, Down) {
		height++
	}
	return width, height
}

func (w *World) topLeft(id NodeID) NodeID {
	corner := id
	for next := w.neighbor(corner, Up); w.isCell(next); next = w.neighbor(corner, Up) {
		corner = next
	}
	for next := w.neighbor(corner, Left); w.isCell(next); next = w.neighbor(corner, Left) {
		corner = next
	}
	return corner
}

// eachCell visits every cell in row-major order starting at the top-left anchor.
func (w *World) eachCell(anchor NodeID, visit func(NodeID)) {
	for row := anchor; w.isCell(row); row = w.neighbor(row, Down) {
		for id := row; w.isCell(id); id = w.neighbor(id, Right) {
			visit(id)
		}
	}
}

func (w *World) writeCharRow(buf *bytes.Buffer, id NodeID, glyphs Glyphs) {
	for ; w.isCell(id); id = w.neighbor(id, Right) {
		if w.nodes[id].alive {
			buf.WriteString(glyphs.Alive)
		} else {
			buf.WriteString(glyphs.Dead)
		}
	}
}

func (w *World) buildCharRow(id NodeID, glyphs Glyphs) string {
	buf := renderBuffers.Get()
	defer renderBuffers.Put(buf)

	w.writeCharRow(buf, id, glyphs)
	return buf.String()
}

func (w *World) render(id NodeID, glyphs Glyphs) string {
	buf := renderBuffers.Get()
	defer renderBuffers.Put(buf)

	for row := w.topLeft(id); w.isCell(row); row = w.neighbor(row, Down) {
		w.writeCharRow(buf, row, glyphs)
		buf.WriteByte('\n')
	}
	return buf.String()
}

func (w *World) readLine(id NodeID, line string) {
	rest := strings.TrimSpace(line)
	for cell := id; rest != ""; {
		r, size := utf8.DecodeRuneInString(rest)
		w.setCellAlive(cell, r == '1')

		rest = strings.TrimSpace(rest[size:])
		if rest == "" {
			return
		}
		cell = w.neighborCell(cell, Right)
	}
}

func (w *World) calculateNextState(id NodeID) {
	count := 0
	for _, dir := range Directions {
		if w.isAlive(w.neighbor(id, dir)) {
			count++
		}
	}
	w.nodes[id].willLive = w.rule.Next(count, w.nodes[id].alive)
}

func (w *World) updateState(id NodeID) {
	w.nodes[id].alive = w.nodes[id].willLive
}

func (w *World) cycleToNextGeneration(id NodeID) {
	anchor := w.topLeft(id)
	w.eachCell(anchor, w.calculateNextState)
	w.growAroundPerimeter(anchor)
	w.eachCell(w.topLeft(anchor), w.updateState)
}

// growAroundPerimeter walks the boundary cells clockwise from the anchor. Wherever
// three consecutive cells along a side are alive, the cell just outside the middle
// one is grown and given its next state: it has exactly those three live neighbours.
func (w *World) growAroundPerimeter(anchor NodeID) {
	dir := Right
	last := anchor
	next, ok := w.turnToCell(anchor, &dir)
	if !ok {
		return
	}
	for next != anchor {
		current := next
		next = w.neighbor(current, dir)
		if w.isAlive(last) && w.isAlive(current) && w.isAlive(next) {
			w.setCellAlive(w.neighborCell(current, dir.Left().Left()), w.rule.Next(3, false))
		}
		last = current
		if !w.isCell(next) {
			if next, ok = w.turnToCell(current, &dir); !ok {
				return
			}
		}
	}
}

// turnToCell turns dir clockwise in 90° steps until it points at a cell.
func (w *World) turnToCell(from NodeID, dir *Direction) (NodeID, bool) {
	for range 4 {
		if next := w.neighbor(from, *dir); w.isCell(next) {
			return next, true
		}
		*dir = dir.Right().Right()
	}
	return noNode, false
}
