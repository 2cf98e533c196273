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

// ReadGambit2D reads a 2D Gambit neutral file with triangle or quadrilateral elements.
// Node and element numbers in the file are one based, the arrays in Grid are zero based.
func ReadGambit2D(r io.Reader) (g *Grid, err error) {
	var (
		reader                  = bufio.NewReader(r)
		Nv, K, Nmats, Nbcs, Nsd int
		VXY, EToV               utils.Matrix
		bcEdges                 map[string][][2]int
		title                   string
	)
	// Skip the first two lines, the third holds the title
	if err = skipLines(2, reader); err != nil {
		return
	}
	if title, err = getLine(reader); err != nil {
		return
	}
	if err = skipLines(3, reader); err != nil {
		return
	}

	// Get dimensions
	if Nv, K, Nmats, Nbcs, Nsd, err = readGambitHeader(reader); err != nil {
		return
	}
	if Nsd != 2 {
		err = errors.Errorf("space dimensions is %d, only 2D grids are supported", Nsd)
		return
	}
	if Nv == 0 || K == 0 {
		err = errors.Errorf("grid has no content: %d nodes, %d elements", Nv, K)
		return
	}
	if err = skipLines(2, reader); err != nil {
		return
	}
	if VXY, err = readGambit2DVertices(Nv, reader); err != nil {
		return
	}
	if err = skipLines(2, reader); err != nil {
		return
	}
	if EToV, err = readGambitElements(K, reader); err != nil {
		return
	}
	if err = skipLines(1, reader); err != nil {
		return
	}
	// Material groups carry nothing the geometry needs
	for i := 0; i < Nmats; i++ {
		if err = skipMaterialGroup(reader); err != nil {
			return
		}
	}
	if bcEdges, err = readGambitBCs(Nbcs, reader, EToV); err != nil {
		return
	}

	g = &Grid{Title: strings.TrimSpace(title)}
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

func readGambitHeader(reader *bufio.Reader) (Nv, K, Nmats, Nbcs, Nsd int, err error) {
	/*
		Nv      // num nodes in mesh
		K       // num elements
		Nmats   // num material groups
		Nbcs    // num boundary groups
		Nsd;    // num space dimensions
	*/
	var (
		line   string
		n, dum int
	)
	if line, err = getLine(reader); err != nil {
		return
	}
	nargs := 6
	if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &Nv, &K, &Nmats, &Nbcs, &Nsd, &dum); err != nil || n < nargs {
		err = errors.Errorf("read fewer than %d dimensions, read %d, line: %s", nargs, n, line)
	}
	return
}

func readGambit2DVertices(Nv int, reader *bufio.Reader) (VXY utils.Matrix, err error) {
	var (
		line   string
		n, ind int
		x, y   float64
	)
	nargs := 3
	VXY = utils.NewMatrix(Nv, 2)
	for i := 0; i < Nv; i++ {
		if line, err = getLine(reader); err != nil {
			return
		}
		if n, err = fmt.Sscanf(line, "%d %f %f", &ind, &x, &y); err != nil || n < nargs {
			err = errors.Errorf("read fewer than required dimensions, read %d, need %d, line: %s", n, nargs, line)
			return
		}
		if ind < 1 || ind > Nv {
			err = errors.Errorf("node number %d out of range 1..%d", ind, Nv)
			return
		}
		VXY.SetRow(ind-1, []float64{x, y})
	}
	return
}

func readGambitElements(K int, reader *bufio.Reader) (EToV utils.Matrix, err error) {
	//-------------------------------------
	// Triangles in 2D:
	//-------------------------------------
	// ENDOFSECTION
	//    ELEMENTS/CELLS 1.3.0
	//      1  3  3        1       2       3
	//      2  3  3        3       2       4
	var (
		line   string
		fields []string
		Nnodes int
		ind    int
		filled = make([]bool, K)
	)
	for k := 0; k < K; k++ {
		if line, err = getLine(reader); err != nil {
			return
		}
		fields = strings.Fields(line)
		if len(fields) < 3 {
			err = errors.Errorf("badly formed element line: %s", line)
			return
		}
		var nn int
		if nn, err = strconv.Atoi(fields[2]); err != nil {
			return
		}
		if k == 0 {
			if nn != 3 && nn != 4 {
				err = errors.Errorf("only triangle and quadrilateral elements are supported, found %d nodes", nn)
				return
			}
			Nnodes = nn
			EToV = utils.NewMatrix(K, Nnodes)
		}
		if nn != Nnodes || len(fields) < 3+Nnodes {
			err = errors.Errorf("mixed or short element definitions, expected %d nodes, line: %s", Nnodes, line)
			return
		}
		if ind, err = strconv.Atoi(fields[0]); err != nil {
			return
		}
		if ind < 1 || ind > K {
			err = errors.Errorf("element number %d out of range 1..%d", ind, K)
			return
		}
		if filled[ind-1] {
			err = errors.Errorf("element number %d is defined more than once", ind)
			return
		}
		filled[ind-1] = true
		for n := 0; n < Nnodes; n++ {
			var node int
			if node, err = strconv.Atoi(fields[3+n]); err != nil {
				return
			}
			EToV.Set(ind-1, n, float64(node-1))
		}
	}
	return
}

func skipMaterialGroup(reader *bufio.Reader) (err error) {
	/*
	   GROUP:           1 ELEMENTS:        977 MATERIAL:      1.000 NFLAGS:          0
	                     epsilon: 1.000
	          0
	*/
	var (
		line  string
		elnum int
	)
	if err = skipLines(1, reader); err != nil { // ELEMENT GROUP
		return
	}
	if line, err = getLine(reader); err != nil {
		return
	}
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "GROUP:" {
		return errors.Errorf("badly formed material group header: %s", line)
	}
	if elnum, err = strconv.Atoi(fields[3]); err != nil {
		return
	}
	// title, flags, ten element numbers per line, ENDOFSECTION
	numLines := (elnum + 9) / 10
	return skipLines(3+numLines, reader)
}

func readGambitBCs(Nbcs int, reader *bufio.Reader, EToV utils.Matrix) (bcEdges map[string][][2]int, err error) {
	var (
		line     string
		fields   []string
		numfaces int
	)
	bcEdges = make(map[string][][2]int, Nbcs)
	for i := 0; i < Nbcs; i++ {
		if err = skipLines(1, reader); err != nil { // BOUNDARY CONDITIONS
			return
		}
		if line, err = getLine(reader); err != nil {
			return
		}
		if fields = strings.Fields(line); len(fields) < 3 {
			err = errors.Errorf("badly formed boundary header: %s", line)
			return
		}
		bctyp := strings.ToLower(fields[0])
		if numfaces, err = strconv.Atoi(fields[2]); err != nil {
			return
		}
		for f := 0; f < numfaces; f++ {
			var (
				n                      int
				kp1, typ, faceNumberp1 int
			)
			if line, err = getLine(reader); err != nil {
				return
			}
			if n, err = fmt.Sscanf(line, "%d %d %d", &kp1, &typ, &faceNumberp1); err != nil || n < 3 {
				err = errors.Errorf("read fewer than required dimensions, read %d, need 3, line: %s", n, line)
				return
			}
			K, Nnodes := EToV.Dims()
			if kp1 < 1 || kp1 > K || faceNumberp1 < 1 || faceNumberp1 > Nnodes {
				err = errors.Errorf("boundary face %d of element %d does not exist", faceNumberp1, kp1)
				return
			}
			// Face f joins local vertices f and f+1
			v1 := int(EToV.At(kp1-1, faceNumberp1-1))
			v2 := int(EToV.At(kp1-1, faceNumberp1%Nnodes))
			bcEdges[bctyp] = append(bcEdges[bctyp], [2]int{v1, v2})
		}
		if err = skipLines(1, reader); err != nil {
			return
		}
	}
	return
}
