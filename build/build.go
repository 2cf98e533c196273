// Package build assembles PolyData from point sources and connectivity. Every builder resolves
// the points, derives one vertex cell per point and then adds its own cells; a failing call
// returns no PolyData at all.
package build

import (
	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/raw"
	"github.com/notargets/polydata/utils"
)

// Points returns PolyData holding only the points and their vertex cells.
func Points(points PointsInput, zFillO ...float64) (pd *polydata.PolyData, err error) {
	var (
		pts   *polydata.Points
		verts polydata.CellArray
	)
	if pts, err = resolvePoints("vertices", points, zFillO); err != nil {
		return
	}
	if verts, err = implicitVertices(pts.Len()); err != nil {
		return
	}
	pd = polydata.NewPolyData(pts)
	pd.Verts = verts
	return
}

// Line connects consecutive points with edges (0,1),(1,2)...(n-2,n-1); closed adds (n-1,0).
// Fewer than two points give no edges, closed or not.
func Line(points PointsInput, closed bool, zFillO ...float64) (pd *polydata.PolyData, err error) {
	var (
		pts          *polydata.Points
		verts, lines polydata.CellArray
		edges        *utils.NDArray
	)
	if pts, err = resolvePoints("line", points, zFillO); err != nil {
		return
	}
	if edges, err = lineEdges(pts.Len(), closed); err != nil {
		return
	}
	if lines, err = raw.Edges(edges); err != nil {
		return
	}
	if verts, err = implicitVertices(pts.Len()); err != nil {
		return
	}
	pd = polydata.NewPolyData(pts)
	pd.Verts = verts
	pd.Lines = lines
	return
}

func lineEdges(Np int, closed bool) (edges *utils.NDArray, err error) {
	var flat utils.Index
	if Np >= 2 {
		I := utils.NewRange(0, Np-2)
		flat = I.Interleave(I.Add(1))
		if closed {
			flat = append(flat, Np-1, 0)
		}
	}
	return utils.NewIntArray(flat, len(flat)/2, 2)
}

// Mesh builds polygons from polys, an (n,m) integer array of point ids. Every id is checked
// against the resolved points before any cell is built.
func Mesh(points PointsInput, polys *utils.NDArray, zFillO ...float64) (pd *polydata.PolyData, err error) {
	var (
		pts          *polydata.Points
		verts, cells polydata.CellArray
	)
	if pts, err = resolvePoints("mesh", points, zFillO); err != nil {
		return
	}
	if polys == nil {
		err = polydata.NewFormatError("mesh", "mesh polys needs numeric array as input")
		return
	}
	Np := pts.Len()
	for i := 0; i < polys.Len(); i++ {
		if id := polys.Float(i); id < 0 || id > float64(Np-1) {
			err = polydata.NewFormatError("mesh", "mesh polys references a point index that does not exist")
			return
		}
	}
	if verts, err = implicitVertices(Np); err != nil {
		return
	}
	if cells, err = raw.Polygons(polys); err != nil {
		return
	}
	pd = polydata.NewPolyData(pts)
	pd.Verts = verts
	pd.Polys = cells
	return
}
