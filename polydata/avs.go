package polydata

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/notargets/avs/geometry"
)

// TriMesh exports the points and triangle cells to the avs renderer's 2D mesh. Z is dropped.
// Polygons other than triangles are rejected, they are never split here.
func (pd *PolyData) TriMesh() (gm geometry.TriMesh, err error) {
	var (
		Np = pd.NumberOfPoints()
		K  = pd.Polys.Len()
	)
	gm = geometry.TriMesh{
		XY:       make([]float32, 2*Np),
		TriVerts: make([][3]int64, K),
	}
	for i, pt := range pd.Points.Data() {
		gm.XY[2*i] = float32(pt[0])
		gm.XY[2*i+1] = float32(pt[1])
	}
	for k, c := range pd.Polys.Cells {
		if len(c) != 3 {
			err = fmt.Errorf("polygon %d has %d points, only triangles can be exported", k, len(c))
			return
		}
		for n := 0; n < 3; n++ {
			gm.TriVerts[k][n] = int64(c[n])
		}
	}
	return
}

// WriteAVSGraphMesh writes gm in the little endian layout read back by the avs tools:
// ndim, len(TriVerts), TriVerts, len(XY), XY. len(XY) counts float32 values, two per point.
func WriteAVSGraphMesh(w io.Writer, gm geometry.TriMesh) (err error) {
	var (
		nDimensions = int64(2) // 2D
		lenTriVerts = int64(len(gm.TriVerts))
		lenXYCoords = int64(len(gm.XY))
	)
	for _, v := range []interface{}{nDimensions, lenTriVerts, gm.TriVerts, lenXYCoords, gm.XY} {
		if err = binary.Write(w, binary.LittleEndian, v); err != nil {
			return
		}
	}
	return
}
