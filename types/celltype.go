package types

// CellType is the topological kind of a cell, which fixes how many point ids it holds.
type CellType uint8

const (
	CellVertex CellType = iota
	CellLine
	CellPolygon
)

func (c CellType) String() string {
	switch c {
	case CellVertex:
		return "Vertex"
	case CellLine:
		return "Line"
	case CellPolygon:
		return "Polygon"
	}
	return "Unknown"
}

// NumIDs returns the fixed number of point ids per cell, or -1 when the count varies (polygons).
func (c CellType) NumIDs() int {
	switch c {
	case CellVertex:
		return 1
	case CellLine:
		return 2
	}
	return -1
}
