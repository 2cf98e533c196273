package build

import (
	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/raw"
	"github.com/notargets/polydata/utils"
)

// PointsInput is the point source of a builder: either RawCoordinates or PrebuiltPoints.
type PointsInput interface {
	pointsInput()
}

// RawCoordinates is an (n,2) or (n,3) array that still has to go through raw.Points.
type RawCoordinates struct {
	Array *utils.NDArray
}

// PrebuiltPoints is a point list built earlier. Builders store a deep copy of it, so the caller
// keeps ownership of the original and z fill does not apply.
type PrebuiltPoints struct {
	Points *polydata.Points
}

func (RawCoordinates) pointsInput() {}
func (PrebuiltPoints) pointsInput() {}

func Coordinates(A *utils.NDArray) PointsInput  { return RawCoordinates{Array: A} }
func Prebuilt(pts *polydata.Points) PointsInput { return PrebuiltPoints{Points: pts} }

func resolvePoints(op string, in PointsInput, zFillO []float64) (pts *polydata.Points, err error) {
	switch p := in.(type) {
	case RawCoordinates:
		if p.Array != nil {
			return raw.Points(p.Array, zFillO...)
		}
	case PrebuiltPoints:
		if p.Points != nil {
			return p.Points.Copy(), nil
		}
	}
	err = polydata.NewFormatError(op, "%s needs numeric array or points as input", op)
	return
}

// implicitVertices returns one vertex cell per point, ids 0..Np-1.
func implicitVertices(Np int) (polydata.CellArray, error) {
	return raw.Vertices(utils.NewIndexArray(utils.NewRange(0, Np-1)))
}
