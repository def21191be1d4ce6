// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// NodeKinds are the structural kinds of nodes in a mesh gradient node array.
type NodeKinds int32 //enums:enum -trim-prefix Node

const (
	// NodeCorner is a patch grid corner, carrying a color.
	NodeCorner NodeKinds = iota

	// NodeHandle is a Bezier control point on a patch edge.
	NodeHandle

	// NodeTensor is an interior twist-control point of a patch.
	NodeTensor
)

// MeshNode is one node in a mesh gradient node array.
type MeshNode struct {

	// Kind is the structural kind of the node.
	Kind NodeKinds

	// Pos is the node position in gradient space.
	Pos math32.Vector2

	// Color is the node color; only corner colors are rendered,
	// but the field is carried on all nodes.
	Color color.RGBA

	// Opacity is the 0-1 opacity of the node color.
	Opacity float32

	// Set is whether the node is explicitly specified; tensor nodes
	// default to unset and are then implied by the patch boundary.
	Set bool

	// Draggable is the index of this node among nodes of the same kind,
	// in row-major array order, assigned by [Mesh.EnsureArray].
	// It is -1 if the array has not been materialized.
	Draggable int
}

// Mesh represents a mesh gradient paint server: a grid of Bezier patches
// defined by a node array of (3*rows+1) x (3*columns+1) corner, handle,
// and tensor nodes.
type Mesh struct {
	Base

	// Nodes is the 2D node array, indexed by [row][column].
	// Nodes at positions divisible by 3 in both axes are corners;
	// nodes off-grid in one axis are edge handles, in both axes tensors.
	Nodes [][]*MeshNode

	// Corners, Handles, and Tensors index the nodes of each kind in
	// row-major order; rebuilt by [Mesh.EnsureArray].
	Corners []*MeshNode
	Handles []*MeshNode
	Tensors []*MeshNode

	arrayValid bool
}

// NewMesh returns a new [Mesh] with the given number of patch rows and
// columns, filling the given box with a regular grid of patches with
// evenly spaced handles and unset tensor nodes.
func NewMesh(rows, cols int, box math32.Box2) *Mesh {
	m := &Mesh{Base: NewBase()}
	nr := 3*rows + 1
	nc := 3*cols + 1
	sz := box.Size()
	m.Nodes = make([][]*MeshNode, nr)
	for i := 0; i < nr; i++ {
		m.Nodes[i] = make([]*MeshNode, nc)
		for j := 0; j < nc; j++ {
			n := &MeshNode{
				Kind:      nodeKindFor(i, j),
				Color:     color.RGBA{255, 255, 255, 255},
				Opacity:   1,
				Draggable: -1,
			}
			n.Pos = math32.Vec2(
				box.Min.X+sz.X*float32(j)/float32(nc-1),
				box.Min.Y+sz.Y*float32(i)/float32(nr-1),
			)
			n.Set = n.Kind != NodeTensor
			m.Nodes[i][j] = n
		}
	}
	m.EnsureArray()
	return m
}

func nodeKindFor(i, j int) NodeKinds {
	ci := i%3 == 0
	cj := j%3 == 0
	switch {
	case ci && cj:
		return NodeCorner
	case !ci && !cj:
		return NodeTensor
	default:
		return NodeHandle
	}
}

// AsBase returns the [Base] of the gradient server.
func (m *Mesh) AsBase() *Base {
	return &m.Base
}

// PatchRows returns the number of patch rows in the mesh.
func (m *Mesh) PatchRows() int {
	if len(m.Nodes) == 0 {
		return 0
	}
	return (len(m.Nodes) - 1) / 3
}

// PatchColumns returns the number of patch columns in the mesh.
func (m *Mesh) PatchColumns() int {
	if len(m.Nodes) == 0 || len(m.Nodes[0]) == 0 {
		return 0
	}
	return (len(m.Nodes[0]) - 1) / 3
}

// Invalidate marks the kind index slices and draggable indices stale,
// so that the next [Mesh.EnsureArray] rebuilds them.
func (m *Mesh) Invalidate() {
	m.arrayValid = false
}

// EnsureArray materializes the Corners, Handles, and Tensors index
// slices and assigns each node its row-major draggable index.
// It is a no-op if the array is already valid.
func (m *Mesh) EnsureArray() {
	if m.arrayValid {
		return
	}
	m.Corners, m.Handles, m.Tensors = nil, nil, nil
	for _, row := range m.Nodes {
		for _, n := range row {
			switch n.Kind {
			case NodeCorner:
				n.Draggable = len(m.Corners)
				m.Corners = append(m.Corners, n)
			case NodeHandle:
				n.Draggable = len(m.Handles)
				m.Handles = append(m.Handles, n)
			case NodeTensor:
				n.Draggable = len(m.Tensors)
				m.Tensors = append(m.Tensors, n)
			}
		}
	}
	m.arrayValid = true
}

// Node returns the node at the given array row and column,
// or nil if out of range.
func (m *Mesh) Node(row, col int) *MeshNode {
	if row < 0 || row >= len(m.Nodes) {
		return nil
	}
	if col < 0 || col >= len(m.Nodes[row]) {
		return nil
	}
	return m.Nodes[row][col]
}

// CornerIndex returns the array row and column of the corner node with
// the given draggable index, or false if there is no such corner.
func (m *Mesh) CornerIndex(draggable int) (row, col int, ok bool) {
	m.EnsureArray()
	if draggable < 0 || draggable >= len(m.Corners) {
		return 0, 0, false
	}
	nc := m.PatchColumns() + 1
	return (draggable / nc) * 3, (draggable % nc) * 3, true
}

// PatchSidePoints returns the 4 Bezier control points of the given side
// of patch (row, col), in gradient space. Sides are numbered clockwise
// from the top: 0 top (left to right), 1 right (top to bottom),
// 2 bottom (right to left), 3 left (bottom to top).
func (m *Mesh) PatchSidePoints(row, col, side int) [4]math32.Vector2 {
	r := 3 * row
	c := 3 * col
	var p [4]math32.Vector2
	for k := 0; k < 4; k++ {
		var n *MeshNode
		switch side {
		case 0:
			n = m.Nodes[r][c+k]
		case 1:
			n = m.Nodes[r+k][c+3]
		case 2:
			n = m.Nodes[r+3][c+3-k]
		default:
			n = m.Nodes[r+3-k][c]
		}
		p[k] = n.Pos
	}
	return p
}

// PatchSideDraggables returns the draggable indices of the two corner
// and two handle nodes of the given side of patch (row, col), in the
// same clockwise order as [Mesh.PatchSidePoints].
func (m *Mesh) PatchSideDraggables(row, col, side int) (corner0, corner1, handle0, handle1 int) {
	m.EnsureArray()
	r := 3 * row
	c := 3 * col
	switch side {
	case 0:
		return m.Nodes[r][c].Draggable, m.Nodes[r][c+3].Draggable,
			m.Nodes[r][c+1].Draggable, m.Nodes[r][c+2].Draggable
	case 1:
		return m.Nodes[r][c+3].Draggable, m.Nodes[r+3][c+3].Draggable,
			m.Nodes[r+1][c+3].Draggable, m.Nodes[r+2][c+3].Draggable
	case 2:
		return m.Nodes[r+3][c+3].Draggable, m.Nodes[r+3][c].Draggable,
			m.Nodes[r+3][c+2].Draggable, m.Nodes[r+3][c+1].Draggable
	default:
		return m.Nodes[r+3][c].Draggable, m.Nodes[r][c].Draggable,
			m.Nodes[r+2][c].Draggable, m.Nodes[r+1][c].Draggable
	}
}

// splitRun subdivides the cubic through 4 consecutive node positions at
// parameter t by de Casteljau, returning the 7 positions of the two
// resulting cubics (shared midpoint counted once).
func splitRun(p0, p1, p2, p3 math32.Vector2, t float32) [7]math32.Vector2 {
	q0 := p0.Lerp(p1, t)
	q1 := p1.Lerp(p2, t)
	q2 := p2.Lerp(p3, t)
	r0 := q0.Lerp(q1, t)
	r1 := q1.Lerp(q2, t)
	mid := r0.Lerp(r1, t)
	return [7]math32.Vector2{p0, q0, r0, mid, r1, q2, p3}
}

// SplitColumn splits patch column j at parameter t in [0,1] along the
// horizontal direction, turning it into two patch columns. Every node
// row is subdivided as a cubic, so the mesh geometry is unchanged.
func (m *Mesh) SplitColumn(j int, t float32) {
	if j < 0 || j >= m.PatchColumns() {
		return
	}
	c := 3 * j
	for i, row := range m.Nodes {
		sp := splitRun(row[c].Pos, row[c+1].Pos, row[c+2].Pos, row[c+3].Pos, t)
		row[c+1].Pos = sp[1]
		row[c+2].Pos = sp[2]
		ins := make([]*MeshNode, 3)
		for k := 0; k < 3; k++ {
			n := &MeshNode{
				Kind:      nodeKindFor(i, c+3+k),
				Pos:       sp[3+k],
				Opacity:   1,
				Draggable: -1,
			}
			n.Set = n.Kind != NodeTensor
			n.Color = lerpColor(row[c].Color, row[c+3].Color, t)
			ins[k] = n
		}
		nrow := make([]*MeshNode, 0, len(row)+3)
		nrow = append(nrow, row[:c+3]...)
		nrow = append(nrow, ins...)
		nrow = append(nrow, row[c+3:]...)
		m.Nodes[i] = nrow
	}
	m.Invalidate()
}

// SplitRow splits patch row i at parameter t in [0,1] along the vertical
// direction, turning it into two patch rows. Every node column is
// subdivided as a cubic, so the mesh geometry is unchanged.
func (m *Mesh) SplitRow(i int, t float32) {
	if i < 0 || i >= m.PatchRows() {
		return
	}
	r := 3 * i
	ins := make([][]*MeshNode, 3)
	for k := range ins {
		ins[k] = make([]*MeshNode, len(m.Nodes[r]))
	}
	for j := range m.Nodes[r] {
		sp := splitRun(m.Nodes[r][j].Pos, m.Nodes[r+1][j].Pos, m.Nodes[r+2][j].Pos, m.Nodes[r+3][j].Pos, t)
		m.Nodes[r+1][j].Pos = sp[1]
		m.Nodes[r+2][j].Pos = sp[2]
		for k := 0; k < 3; k++ {
			n := &MeshNode{
				Kind:      nodeKindFor(r+3+k, j),
				Pos:       sp[3+k],
				Opacity:   1,
				Draggable: -1,
			}
			n.Set = n.Kind != NodeTensor
			n.Color = lerpColor(m.Nodes[r][j].Color, m.Nodes[r+3][j].Color, t)
			ins[k][j] = n
		}
	}
	nn := make([][]*MeshNode, 0, len(m.Nodes)+3)
	nn = append(nn, m.Nodes[:r+3]...)
	nn = append(nn, ins...)
	nn = append(nn, m.Nodes[r+3:]...)
	m.Nodes = nn
	m.Invalidate()
}

// UpdateHandles repositions the handle and tensor nodes adjacent to the
// corner with the given draggable index after the corner has moved from
// pcOld (gradient space) to its current position, displacing each
// neighbor by the corner displacement. Scaling modes between selected
// corners are not supported; displacement is always rigid.
func (m *Mesh) UpdateHandles(corner int, pcOld math32.Vector2) {
	row, col, ok := m.CornerIndex(corner)
	if !ok {
		return
	}
	disp := m.Nodes[row][col].Pos.Sub(pcOld)
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		n := m.Node(row+d[0], col+d[1])
		if n == nil || n.Kind == NodeCorner {
			continue
		}
		n.Pos = n.Pos.Add(disp)
	}
}
