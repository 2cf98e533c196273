// Package raw converts numeric arrays into the point and cell lists of a PolyData. Each converter
// checks container, rank, width and element type before it allocates anything.
package raw

import (
	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/types"
	"github.com/notargets/polydata/utils"
)

// Points converts an (n,2) or (n,3) array into a point list. For (n,2) input the z value of
// every point is zFillO[0], or 0 when omitted; (n,3) input is taken verbatim.
func Points(coordinates *utils.NDArray, zFillO ...float64) (pts *polydata.Points, err error) {
	var zFill float64
	if len(zFillO) != 0 {
		zFill = zFillO[0]
	}
	if coordinates == nil {
		err = polydata.NewFormatError("points", "points needs numeric array as input")
		return
	}
	if coordinates.NDim() != 2 {
		err = polydata.NewFormatError("points",
			"points needs a two dimensional array as input, was %d-dimensional", coordinates.NDim())
		return
	}
	Np, width := coordinates.Dims()
	if width != 2 && width != 3 {
		err = polydata.NewFormatError("points",
			"points needs an array of nx2 or nx3 shape, was nx%d", width)
		return
	}
	data := make([]polydata.Point, Np)
	for i := range data {
		z := zFill
		if width == 3 {
			z = coordinates.FloatAt(i, 2)
		}
		data[i] = polydata.Point{coordinates.FloatAt(i, 0), coordinates.FloatAt(i, 1), z}
	}
	pts = polydata.NewPoints(data)
	return
}

// Vertices maps a 1-D integer array to one single point cell per element.
func Vertices(indices *utils.NDArray) (verts polydata.CellArray, err error) {
	if indices == nil {
		err = polydata.NewFormatError("vertices", "vertices needs numeric array as input")
		return
	}
	if indices.NDim() != 1 {
		err = polydata.NewFormatError("vertices",
			"vertices needs a one dimensional array as input, was %d-dimensional", indices.NDim())
		return
	}
	if err = checkIntegral("vertices", indices); err != nil {
		return
	}
	n := indices.Len()
	verts = polydata.NewCellArray(types.CellVertex, n)
	for i := 0; i < n; i++ {
		verts.Insert(polydata.Cell{indices.Int(i)})
	}
	return
}

// Edges maps an (n,2) integer array to one line cell per row. Ids are kept in row order, self
// loops and duplicates pass through.
func Edges(indices *utils.NDArray) (lines polydata.CellArray, err error) {
	if indices == nil {
		err = polydata.NewFormatError("lines", "lines needs numeric array as input")
		return
	}
	if _, nc := indices.Dims(); indices.NDim() != 2 || nc != types.CellLine.NumIDs() {
		err = polydata.NewFormatError("lines", "lines needs a nx2 array as input")
		return
	}
	if err = checkIntegral("lines", indices); err != nil {
		return
	}
	K, _ := indices.Dims()
	lines = polydata.NewCellArray(types.CellLine, K)
	for k := 0; k < K; k++ {
		lines.Insert(polydata.Cell{indices.IntAt(k, 0), indices.IntAt(k, 1)})
	}
	return
}

// Polygons maps an (n,m) integer array to one m point polygon per row, winding as given.
func Polygons(indices *utils.NDArray) (polys polydata.CellArray, err error) {
	if indices == nil {
		err = polydata.NewFormatError("polygons", "polygons needs numeric array as input")
		return
	}
	if indices.NDim() != 2 {
		err = polydata.NewFormatError("polygons", "polygons needs a nxm array as input")
		return
	}
	if err = checkIntegral("polygons", indices); err != nil {
		return
	}
	K, Nv := indices.Dims()
	polys = polydata.NewCellArray(types.CellPolygon, K)
	for k := 0; k < K; k++ {
		c := make(polydata.Cell, Nv)
		for n := range c {
			c[n] = indices.IntAt(k, n)
		}
		polys.Insert(c)
	}
	return
}

func checkIntegral(op string, A *utils.NDArray) (err error) {
	if !A.DType().IsIntegral() {
		err = polydata.NewFormatError(op, "%s needs an array of integral type, was %s", op, A.DType())
	}
	return
}
