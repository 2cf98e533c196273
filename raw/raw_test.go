package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/types"
	"github.com/notargets/polydata/utils"
)

func floats(t *testing.T, data []float64, shape ...int) *utils.NDArray {
	A, err := utils.NewFloatArray(data, shape...)
	require.NoError(t, err)
	return A
}

func ints(t *testing.T, data []int, shape ...int) *utils.NDArray {
	A, err := utils.NewIntArray(data, shape...)
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

func TestPoints(t *testing.T) {
	{ // 2D input, z filled with default 0
		pts, err := Points(floats(t, []float64{
			1, 2,
			3, 4,
			5, 6,
		}, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}}, pts.Data())
	}
	{ // 2D input with z fill
		pts, err := Points(floats(t, []float64{
			1, 2,
			3, 4,
		}, 2, 2), 1.5)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 1.5}, {3, 4, 1.5}}, pts.Data())
	}
	{ // 3D input passes z through regardless of z fill
		pts, err := Points(floats(t, []float64{
			1, 2, 3,
			4, 5, 6,
		}, 2, 3), 10)
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 3}, {4, 5, 6}}, pts.Data())
	}
	{ // integral coordinates are widened
		pts, err := Points(ints(t, []int{1, 2, 3, 4}, 2, 2))
		require.NoError(t, err)
		assert.Equal(t, []polydata.Point{{1, 2, 0}, {3, 4, 0}}, pts.Data())
	}
	{ // empty (0,2) input
		pts, err := Points(floats(t, nil, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, 0, pts.Len())
	}
}

func TestPointsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   *utils.NDArray
		msg  string
	}{
		{"nil", nil, "points needs numeric array as input"},
		{"1D", floats(t, []float64{1, 2, 3}), "points needs a two dimensional array as input, was 1-dimensional"},
		{"3D", floats(t, make([]float64, 8), 2, 2, 2), "points needs a two dimensional array as input, was 3-dimensional"},
		{"nx4", floats(t, make([]float64, 8), 2, 4), "points needs an array of nx2 or nx3 shape, was nx4"},
		{"nx1", floats(t, make([]float64, 2), 2, 1), "points needs an array of nx2 or nx3 shape, was nx1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts, err := Points(tc.in)
			assert.Nil(t, pts)
			require.Error(t, err)
			assert.True(t, polydata.IsFormatError(err))
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestVertices(t *testing.T) {
	{
		verts, err := Vertices(ints(t, []int{0, 1, 2}))
		require.NoError(t, err)
		assert.Equal(t, types.CellVertex, verts.Type)
		assert.Equal(t, [][]int{{0}, {1}, {2}}, cellsOf(verts))
	}
	{ // order is kept, no validation of the ids themselves
		A, err := utils.NewInt64Array([]int64{5, 3, 5})
		require.NoError(t, err)
		verts, err := Vertices(A)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{5}, {3}, {5}}, cellsOf(verts))
	}
	{
		_, err := Vertices(nil)
		assert.EqualError(t, err, "vertices needs numeric array as input")
	}
	{
		_, err := Vertices(ints(t, []int{0, 1, 2, 3}, 2, 2))
		assert.EqualError(t, err, "vertices needs a one dimensional array as input, was 2-dimensional")
		assert.True(t, polydata.IsFormatError(err))
	}
	{
		_, err := Vertices(floats(t, []float64{0, 1, 2}))
		assert.EqualError(t, err, "vertices needs an array of integral type, was float64")
		assert.True(t, polydata.IsFormatError(err))
	}
}

func TestEdges(t *testing.T) {
	{
		lines, err := Edges(ints(t, []int{
			0, 1,
			1, 2,
			2, 2, // self loop passes through
			1, 0,
		}, 4, 2))
		require.NoError(t, err)
		assert.Equal(t, types.CellLine, lines.Type)
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 2}, {1, 0}}, cellsOf(lines))
	}
	{
		lines, err := Edges(ints(t, nil, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, 0, lines.Len())
	}
	// wrong rank and wrong width share one message
	for _, A := range []*utils.NDArray{
		ints(t, []int{0, 1}),
		ints(t, []int{0, 1, 2, 0, 1, 2}, 2, 3),
		ints(t, []int{0, 1, 2, 3}, 1, 2, 2),
	} {
		_, err := Edges(A)
		assert.EqualError(t, err, "lines needs a nx2 array as input")
		assert.True(t, polydata.IsFormatError(err))
	}
	{
		_, err := Edges(floats(t, []float64{0, 1}, 1, 2))
		assert.EqualError(t, err, "lines needs an array of integral type, was float64")
	}
	{
		_, err := Edges(nil)
		assert.EqualError(t, err, "lines needs numeric array as input")
	}
}

func TestPolygons(t *testing.T) {
	{
		polys, err := Polygons(ints(t, []int{
			0, 1, 2, 3,
			3, 2, 4, 5,
		}, 2, 4))
		require.NoError(t, err)
		assert.Equal(t, types.CellPolygon, polys.Type)
		assert.Equal(t, [][]int{{0, 1, 2, 3}, {3, 2, 4, 5}}, cellsOf(polys))
	}
	{ // winding kept as given
		A, err := utils.NewInt32Array([]int32{2, 1, 0}, 1, 3)
		require.NoError(t, err)
		polys, err := Polygons(A)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{2, 1, 0}}, cellsOf(polys))
	}
	{
		_, err := Polygons(ints(t, []int{0, 1, 2}))
		assert.EqualError(t, err, "polygons needs a nxm array as input")
		assert.True(t, polydata.IsFormatError(err))
	}
	{
		A, err := utils.NewFloat32Array([]float32{0, 1, 2}, 1, 3)
		require.NoError(t, err)
		_, err = Polygons(A)
		assert.EqualError(t, err, "polygons needs an array of integral type, was float32")
		assert.True(t, polydata.IsFormatError(err))
	}
	{
		_, err := Polygons(nil)
		assert.EqualError(t, err, "polygons needs numeric array as input")
	}
}
