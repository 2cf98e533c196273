package readfiles

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/notargets/polydata/build"
	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/raw"
	"github.com/notargets/polydata/utils"
)

// Grid is a 2D unstructured grid as raw arrays, ready for the polydata builders.
type Grid struct {
	Title      string
	Coords     *utils.NDArray            // (Nv, 2) Float64
	Polys      *utils.NDArray            // (K, m) Int, zero based
	Boundaries map[string]*utils.NDArray // (n, 2) Int edges per boundary tag
}

// ReadGrid reads a grid file, choosing the format from the extension.
func ReadGrid(filename string) (g *Grid, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, errors.Wrapf(err, "unable to open grid file %s", filename)
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".neu":
		g, err = ReadGambit2D(reader)
	case ".su2":
		g, err = ReadSU2(reader)
	default:
		return nil, errors.Errorf("unsupported grid format: %s", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return
}

// Mesh builds the polygon mesh of the grid.
func (g *Grid) Mesh(zFillO ...float64) (*polydata.PolyData, error) {
	return build.Mesh(build.Coordinates(g.Coords), g.Polys, zFillO...)
}

// Boundary builds the points of the grid with the edges of one boundary tag as line cells.
func (g *Grid) Boundary(tag string, zFillO ...float64) (pd *polydata.PolyData, err error) {
	var (
		edges *utils.NDArray
		ok    bool
		lines polydata.CellArray
	)
	if edges, ok = g.Boundaries[tag]; !ok {
		err = errors.Errorf("no boundary tagged [%s]", tag)
		return
	}
	if pd, err = build.Points(build.Coordinates(g.Coords), zFillO...); err != nil {
		return
	}
	Np := pd.NumberOfPoints()
	for i := 0; i < edges.Len(); i++ {
		if id := edges.Int(i); id < 0 || id >= Np {
			pd = nil
			err = polydata.NewFormatError("boundary", "boundary [%s] references a point index that does not exist", tag)
			return
		}
	}
	if lines, err = raw.Edges(edges); err != nil {
		pd = nil
		return
	}
	pd.Lines = lines
	return
}

func (g *Grid) BoundaryTags() (tags []string) {
	for tag := range g.Boundaries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return
}

// boundaryArrays converts edge lists into (n, 2) Int arrays.
func boundaryArrays(bcEdges map[string][][2]int) (B map[string]*utils.NDArray, err error) {
	B = make(map[string]*utils.NDArray, len(bcEdges))
	for tag, edges := range bcEdges {
		flat := make([]int, 0, 2*len(edges))
		for _, e := range edges {
			flat = append(flat, e[0], e[1])
		}
		if B[tag], err = utils.NewIntArray(flat, len(edges), 2); err != nil {
			return
		}
	}
	return
}

var errEOF = errors.New("early end of file")

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = errEOF
		}
		return
	}
	line = strings.TrimRight(line, "\r\n") // Strip away the newline
	return
}

func skipLines(n int, reader *bufio.Reader) (err error) {
	for i := 0; i < n; i++ {
		if _, err = getLine(reader); err != nil {
			return
		}
	}
	return
}
