package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/raw"
	"github.com/notargets/polydata/utils"
)

func coords(t *testing.T, rows [][]float64) PointsInput {
	A, err := utils.NewFloatArrayFromRows(rows)
	require.NoError(t, err)
	return Coordinates(A)
}

func indices(t *testing.T, rows [][]int) *utils.NDArray {
	A, err := utils.NewIntArrayFromRows(rows)
	require.NoError(t, err)
	return A
}

func cellsOf(ca polydata.CellArray) (c [][]int) {
	c = make([][]int, len(ca.Cells))
	for i, cell := range ca.Cells {
		c[i] = []int(cell)
	}
	return
}

var square = [][]float64{
	{0.0, 0.0},
	{0.0, 1.0},
	{1.0, 1.0},
	{1.0, 0.0},
}

func TestPoints(t *testing.T) {
	{
		pd, err := Points(coords(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}))
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}}, pd.Points.Data())
		assert.Equal(t, [][]int{{0}, {1}, {2}}, cellsOf(pd.Verts))
		assert.Equal(t, 0, pd.Lines.Len())
		assert.Equal(t, 0, pd.Polys.Len())
	}
	{ // z fill and 3D pass through
		pd, err := Points(coords(t, [][]float64{{1, 2}, {3, 4}}), 2.)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 2}, {3, 4, 2}}, pd.Points.Data())
		pd, err = Points(coords(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), 2.)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 3}, {4, 5, 6}}, pd.Points.Data())
	}
	{ // no points, no cells
		A, err := utils.NewFloatArray(nil, 0, 3)
		require.NoError(t, err)
		pd, err := Points(Coordinates(A))
		require.NoError(t, err)
		assert.Equal(t, 0, pd.NumberOfPoints())
		assert.Equal(t, 0, pd.NumberOfCells())
	}
	{
		for _, in := range []PointsInput{nil, RawCoordinates{}, PrebuiltPoints{}} {
			pd, err := Points(in)
			assert.Nil(t, pd)
			assert.EqualError(t, err, "vertices needs numeric array or points as input")
			assert.True(t, polydata.IsFormatError(err))
		}
	}
	{ // converter errors surface unchanged
		A, err := utils.NewFloatArray([]float64{1, 2, 3})
		require.NoError(t, err)
		pd, err := Points(Coordinates(A))
		assert.Nil(t, pd)
		assert.EqualError(t, err, "points needs a two dimensional array as input, was 1-dimensional")
	}
}

func TestLine(t *testing.T) {
	pts3 := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	{
		pd, err := Line(coords(t, pts3), false)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0}, {1}, {2}}, cellsOf(pd.Verts))
		assert.Equal(t, [][]int{{0, 1}, {1, 2}}, cellsOf(pd.Lines))
		assert.Equal(t, 0, pd.Polys.Len())
	}
	{
		pd, err := Line(coords(t, pts3), true)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 0}}, cellsOf(pd.Lines))
	}
	{
		pd, err := Line(coords(t, pts3), false, 1.)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 1}, {3, 4, 1}, {5, 6, 1}}, pd.Points.Data())
	}
	{ // two points closed gives the edge and its return
		pd, err := Line(coords(t, [][]float64{{0, 0}, {1, 1}}), true)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1}, {1, 0}}, cellsOf(pd.Lines))
	}
	{ // fewer than two points never produce edges
		for _, closed := range []bool{false, true} {
			pd, err := Line(coords(t, [][]float64{{1, 1}}), closed)
			require.NoError(t, err)
			assert.Equal(t, 0, pd.Lines.Len())
			assert.Equal(t, [][]int{{0}}, cellsOf(pd.Verts))

			A, err := utils.NewFloatArray(nil, 0, 2)
			require.NoError(t, err)
			pd, err = Line(Coordinates(A), closed)
			require.NoError(t, err)
			assert.Equal(t, 0, pd.Lines.Len())
			assert.Equal(t, 0, pd.Verts.Len())
		}
	}
	{
		pd, err := Line(nil, false)
		assert.Nil(t, pd)
		assert.EqualError(t, err, "line needs numeric array or points as input")
	}
}

func TestMesh(t *testing.T) {
	polys := [][]int{{0, 1, 2}, {0, 2, 3}}
	{
		pd, err := Mesh(coords(t, square), indices(t, polys))
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, pd.Points.Data())
		assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, cellsOf(pd.Verts))
		assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, cellsOf(pd.Polys))
		assert.Equal(t, 0, pd.Lines.Len())
	}
	{
		pd, err := Mesh(coords(t, square), indices(t, polys), 1.)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}}, pd.Points.Data())
	}
	{ // quadrilaterals
		pd, err := Mesh(coords(t, append(square, []float64{1, 2}, []float64{0, 2})),
			indices(t, [][]int{{0, 1, 2, 3}, {3, 2, 4, 5}}))
		require.NoError(t, err)
		assert.Equal(t, 6, pd.Verts.Len())
		assert.Equal(t, [][]int{{0, 1, 2, 3}, {3, 2, 4, 5}}, cellsOf(pd.Polys))
	}
	for _, bad := range [][][]int{
		{{0, 1, 2}, {0, 2, 4}},
		{{0, 1, 2}, {0, 2, -1}},
	} {
		pd, err := Mesh(coords(t, square), indices(t, bad))
		assert.Nil(t, pd)
		assert.EqualError(t, err, "mesh polys references a point index that does not exist")
		assert.True(t, polydata.IsFormatError(err))
	}
	{
		pd, err := Mesh(nil, indices(t, polys))
		assert.Nil(t, pd)
		assert.EqualError(t, err, "mesh needs numeric array or points as input")
	}
	{
		pd, err := Mesh(coords(t, square), nil)
		assert.Nil(t, pd)
		assert.True(t, polydata.IsFormatError(err))
	}
	{ // in range but not integral
		A, err := utils.NewFloatArray([]float64{0, 1, 2}, 1, 3)
		require.NoError(t, err)
		pd, err := Mesh(coords(t, square), A)
		assert.Nil(t, pd)
		assert.EqualError(t, err, "polygons needs an array of integral type, was float64")
	}
}

func TestPrebuiltPoints(t *testing.T) {
	A, err := utils.NewFloatArrayFromRows(square)
	require.NoError(t, err)
	pts, err := raw.Points(A)
	require.NoError(t, err)
	{
		pd, err := Points(Prebuilt(pts), 7.)
		require.NoError(t, err)
		assert.Equal(t, pts.Data(), pd.Points.Data())
		assert.Equal(t, 4, pd.Verts.Len())
	}
	{
		pd, err := Line(Prebuilt(pts), true, 7.)
		require.NoError(t, err)
		assert.Equal(t, pts.Data(), pd.Points.Data())
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, cellsOf(pd.Lines))
	}
	{
		pd, err := Mesh(Prebuilt(pts), indices(t, [][]int{{0, 1, 2}, {0, 2, 3}}), 7.)
		require.NoError(t, err)
		assert.Equal(t, pts.Data(), pd.Points.Data())
		// the PolyData owns a copy, later changes to the caller's list do not leak in
		pts.Data()[0][2] = 99
		assert.Equal(t, 0., pd.Point(0)[2])
		assert.NotSame(t, pts, pd.Points)
	}
}
