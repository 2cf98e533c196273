package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/notargets/polydata/types"
	"github.com/notargets/polydata/utils"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle      SU2ElementType = 5
	ELType_Quadrilateral SU2ElementType = 9
	ELType_Tetrahedral   SU2ElementType = 10
	ELType_Hexahedral    SU2ElementType = 12
	ELType_Prism         SU2ElementType = 13
	ELType_Pyramid       SU2ElementType = 14
)

// NumNodes is the number of vertices of the 2D element types, 0 for the others.
func (t SU2ElementType) NumNodes() int {
	switch t {
	case ELType_LINE:
		return 2
	case ELType_Triangle:
		return 3
	case ELType_Quadrilateral:
		return 4
	}
	return 0
}

// ReadSU2 reads a 2D SU2 grid whose elements are all triangles or all quadrilaterals.
// Marker sections become boundary edge arrays keyed by tag.
func ReadSU2(r io.Reader) (g *Grid, err error) {
	var (
		reader         = bufio.NewReader(r)
		dimensionality int
		VXY, EToV      utils.Matrix
		bcEdges        map[string][][2]int
	)
	if dimensionality, err = readNumber(reader); err != nil {
		return
	}
	if dimensionality != 2 {
		err = errors.Errorf("read file with %d dimensional data, only 2D grids are supported", dimensionality)
		return
	}
	if EToV, err = readElements(reader); err != nil {
		return
	}
	if VXY, err = readVertices(reader); err != nil {
		return
	}
	if bcEdges, err = readBCs(reader); err != nil {
		return
	}
	g = &Grid{}
	if g.Coords, err = utils.NewArrayFromMatrix(VXY); err != nil {
		return nil, err
	}
	if g.Polys, err = utils.NewArrayFromMatrix(EToV, types.Int); err != nil {
		return nil, err
	}
	if g.Boundaries, err = boundaryArrays(bcEdges); err != nil {
		return nil, err
	}
	return
}

func readBCs(reader *bufio.Reader) (bcEdges map[string][][2]int, err error) {
	var (
		NBCs, nEdges  int
		nType, v1, v2 int
		label, line   string
	)
	if NBCs, err = readNumber(reader); err != nil {
		// A grid without markers is complete
		if errors.Cause(err) == errEOF {
			err = nil
		}
		return
	}
	bcEdges = make(map[string][][2]int, NBCs)
	for n := 0; n < NBCs; n++ {
		if label, err = readLabel(reader); err != nil {
			return
		}
		if nEdges, err = readNumber(reader); err != nil {
			return
		}
		// Repeated tags append, periodic BCs come in pairs
		for i := 0; i < nEdges; i++ {
			if line, err = getLineNoComments(reader); err != nil {
				return
			}
			if _, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				return nil, errors.Wrapf(err, "reading marker [%s] line: %s", label, line)
			}
			if SU2ElementType(nType) != ELType_LINE {
				err = errors.Errorf("BCs should only contain line elements in 2D, found type %d", nType)
				return
			}
			bcEdges[label] = append(bcEdges[label], [2]int{v1, v2})
		}
	}
	return
}

func readVertices(reader *bufio.Reader) (VXY utils.Matrix, err error) {
	var (
		n, Nv int
		x, y  float64
		line  string
	)
	if Nv, err = readNumber(reader); err != nil {
		return
	}
	if Nv == 0 {
		err = errors.New("grid has no points")
		return
	}
	VXY = utils.NewMatrix(Nv, 2)
	for i := 0; i < Nv; i++ {
		if line, err = getLineNoComments(reader); err != nil {
			return
		}
		if n, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil || n != 2 {
			err = errors.Errorf("unable to read coordinates, line: %s", line)
			return
		}
		VXY.SetRow(i, []float64{x, y})
	}
	return
}

func readElements(reader *bufio.Reader) (EToV utils.Matrix, err error) {
	var (
		K, Nnodes int
		line      string
	)
	// EToV is K x Nnodes
	if K, err = readNumber(reader); err != nil {
		return
	}
	if K == 0 {
		err = errors.New("grid has no elements")
		return
	}
	for k := 0; k < K; k++ {
		if line, err = getLineNoComments(reader); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			err = errors.Errorf("unable to read element %d", k)
			return
		}
		var nType int
		if nType, err = strconv.Atoi(fields[0]); err != nil {
			return
		}
		nn := SU2ElementType(nType).NumNodes()
		if nn < 3 {
			err = errors.Errorf("unable to deal with element type %d, only triangles and quadrilaterals", nType)
			return
		}
		if k == 0 {
			Nnodes = nn
			EToV = utils.NewMatrix(K, Nnodes)
		}
		if nn != Nnodes || len(fields) < 1+Nnodes {
			err = errors.Errorf("mixed or short element definitions, expected %d nodes, line: %s", Nnodes, line)
			return
		}
		for n := 0; n < Nnodes; n++ {
			var v int
			if v, err = strconv.Atoi(fields[1+n]); err != nil {
				return
			}
			EToV.Set(k, n, float64(v))
		}
	}
	return
}

func getToken(reader *bufio.Reader) (token string, err error) {
	var line string
	if line, err = getLineNoComments(reader); err != nil {
		return
	}
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = errors.Errorf("badly formed input line [%s], should have an =", line)
		return
	}
	token = line[ind+1:]
	return
}

func readLabel(reader *bufio.Reader) (label string, err error) {
	var token string
	if token, err = getToken(reader); err != nil {
		return
	}
	if label = strings.TrimSpace(token); len(label) == 0 {
		err = errors.New("empty label")
	}
	return
}

func readNumber(reader *bufio.Reader) (num int, err error) {
	var token string
	if token, err = getToken(reader); err != nil {
		return
	}
	if num, err = strconv.Atoi(strings.TrimSpace(token)); err != nil {
		err = errors.Errorf("unable to read number from token: [%s]", token)
	}
	return
}

// getLineNoComments skips blank lines and lines starting with %.
func getLineNoComments(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = getLine(reader); err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}
