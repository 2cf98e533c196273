package InputParameters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/notargets/polydata/types"
)

type JobKind string

const (
	KindPoints JobKind = "points"
	KindLine   JobKind = "line"
	KindMesh   JobKind = "mesh"
)

// Parameters obtained from the YAML job file
type PolyDataInput struct {
	Title    string      `json:"Title"`
	Kind     JobKind     `json:"Kind"`
	Points   [][]float64 `json:"Points"`
	Polys    [][]int     `json:"Polys"`
	ZFill    float64     `json:"ZFill"`
	Closed   bool        `json:"Closed"`
	GridFile string      `json:"GridFile"` // Alternative to Points/Polys for mesh jobs
	// Optional element types of the Points and Polys arrays, float64 and int when empty
	PointType string `json:"PointType"`
	PolyType  string `json:"PolyType"`
}

// Parse reads YAML through its JSON form, field names follow the json tags.
func (ip *PolyDataInput) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return errors.Wrap(err, "unable to parse job file")
	}
	ip.Kind = JobKind(strings.ToLower(string(ip.Kind)))
	return ip.Validate()
}

func (ip *PolyDataInput) Validate() (err error) {
	switch ip.Kind {
	case KindPoints, KindLine:
		if len(ip.GridFile) != 0 {
			return errors.Errorf("GridFile is only used by mesh jobs, job kind is %s", ip.Kind)
		}
		if len(ip.Polys) != 0 {
			return errors.Errorf("Polys are only used by mesh jobs, job kind is %s", ip.Kind)
		}
	case KindMesh:
		if len(ip.GridFile) != 0 && (len(ip.Points) != 0 || len(ip.Polys) != 0) {
			return errors.New("mesh job needs either GridFile or Points and Polys, not both")
		}
	default:
		return errors.Errorf("unknown job kind [%s], should be one of points, line, mesh", ip.Kind)
	}
	if _, err = ip.ElementType(ip.PointType, types.Float64); err != nil {
		return errors.Wrap(err, "PointType")
	}
	if _, err = ip.ElementType(ip.PolyType, types.Int); err != nil {
		return errors.Wrap(err, "PolyType")
	}
	return
}

// ElementType resolves an element type name from the job, returning def for an empty name.
func (ip *PolyDataInput) ElementType(name string, def types.DType) (d types.DType, err error) {
	if len(name) == 0 {
		return def, nil
	}
	return types.NewDType(strings.ToLower(name))
}

func (ip *PolyDataInput) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Kind\n", ip.Kind)
	fmt.Fprintf(w, "%8.5f\t\t= ZFill\n", ip.ZFill)
	if ip.Kind == KindLine {
		fmt.Fprintf(w, "[%v]\t\t\t= Closed\n", ip.Closed)
	}
	if len(ip.GridFile) != 0 {
		fmt.Fprintf(w, "[%s]\t= GridFile\n", ip.GridFile)
		return
	}
	fmt.Fprintf(w, "[%d]\t\t\t\t= Points\n", len(ip.Points))
	if len(ip.PointType) != 0 {
		fmt.Fprintf(w, "[%s]\t\t\t= PointType\n", ip.PointType)
	}
	if ip.Kind == KindMesh {
		fmt.Fprintf(w, "[%d]\t\t\t\t= Polys\n", len(ip.Polys))
		if len(ip.PolyType) != 0 {
			fmt.Fprintf(w, "[%s]\t\t\t= PolyType\n", ip.PolyType)
		}
	}
}
