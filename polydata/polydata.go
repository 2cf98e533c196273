// Package polydata holds the polygonal geometry handed to a renderer: an ordered point list and
// three independent cell lists (vertices, lines, polygons) that reference points by position.
package polydata

import (
	"fmt"
	"io"
	"math"

	"github.com/notargets/polydata/types"
)

// Point is an (x, y, z) coordinate; its position in Points is its point id.
type Point [3]float64

type Points struct {
	pts []Point
}

func NewPoints(pts []Point) *Points {
	return &Points{pts: pts}
}

func (p *Points) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pts)
}

func (p *Points) At(i int) Point { return p.pts[i] }

// Data exposes the backing slice, callers must treat it as read only.
func (p *Points) Data() []Point { return p.pts }

// Copy returns a deep copy that shares no storage with the receiver.
func (p *Points) Copy() (R *Points) {
	R = &Points{pts: make([]Point, p.Len())}
	if p != nil {
		copy(R.pts, p.pts)
	}
	return
}

// Bounds returns the axis aligned min and max corners, ok is false when there are no points.
func (p *Points) Bounds() (min, max Point, ok bool) {
	if p.Len() == 0 {
		return
	}
	for d := 0; d < 3; d++ {
		min[d], max[d] = math.MaxFloat64, -math.MaxFloat64
	}
	for _, pt := range p.pts {
		for d := 0; d < 3; d++ {
			min[d] = math.Min(min[d], pt[d])
			max[d] = math.Max(max[d], pt[d])
		}
	}
	ok = true
	return
}

// Cell is an ordered tuple of point ids.
type Cell []int

type CellArray struct {
	Type  types.CellType
	Cells []Cell
}

func NewCellArray(typ types.CellType, capacity int) CellArray {
	return CellArray{
		Type:  typ,
		Cells: make([]Cell, 0, capacity),
	}
}

func (ca *CellArray) Insert(c Cell) { ca.Cells = append(ca.Cells, c) }

func (ca CellArray) Len() int { return len(ca.Cells) }

// PolyData is the assembled geometry. A builder populates only the cell lists it derives, the
// others stay empty.
type PolyData struct {
	Points *Points
	Verts  CellArray
	Lines  CellArray
	Polys  CellArray
}

func NewPolyData(points *Points) *PolyData {
	return &PolyData{
		Points: points,
		Verts:  NewCellArray(types.CellVertex, 0),
		Lines:  NewCellArray(types.CellLine, 0),
		Polys:  NewCellArray(types.CellPolygon, 0),
	}
}

func (pd *PolyData) NumberOfPoints() int { return pd.Points.Len() }

func (pd *PolyData) NumberOfCells() int {
	return pd.Verts.Len() + pd.Lines.Len() + pd.Polys.Len()
}

func (pd *PolyData) Point(i int) Point { return pd.Points.At(i) }

func (pd *PolyData) Bounds() (min, max Point, ok bool) { return pd.Points.Bounds() }

func (pd *PolyData) Print(w io.Writer) {
	fmt.Fprintf(w, "PolyData:\n")
	fmt.Fprintf(w, "  Points: %d\n", pd.NumberOfPoints())
	fmt.Fprintf(w, "  Verts:  %d\n", pd.Verts.Len())
	fmt.Fprintf(w, "  Lines:  %d\n", pd.Lines.Len())
	fmt.Fprintf(w, "  Polys:  %d\n", pd.Polys.Len())
	if min, max, ok := pd.Bounds(); ok {
		fmt.Fprintf(w, "Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			min[0], max[0], min[1], max[1], min[2], max[2])
	}
}
