package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/polydata/InputParameters"
	"github.com/notargets/polydata/build"
	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/readfiles"
	"github.com/notargets/polydata/types"
	"github.com/notargets/polydata/utils"
)

func newJobCmd(kind InputParameters.JobKind, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   string(kind),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				ip *InputParameters.PolyDataInput
				pd *polydata.PolyData
			)
			jobFile, _ := cmd.Flags().GetString("inputConditionsFile")
			if len(jobFile) == 0 {
				return errors.New("must supply a job file (-I, --inputConditionsFile) in YAML format")
			}
			if ip, err = readJob(jobFile); err != nil {
				return
			}
			if ip.Kind != kind {
				return errors.Errorf("job file %s describes a %s job, not %s", jobFile, ip.Kind, kind)
			}
			if viper.IsSet("zfill") {
				ip.ZFill = viper.GetFloat64("zfill")
			}
			ip.Print(os.Stdout)
			if pd, err = BuildJob(ip); err != nil {
				return
			}
			return report(pd, viper.GetString("output"))
		},
	}
	c.Flags().StringP("inputConditionsFile", "I", "", "YAML job file, for example:"+exampleJob)
	return c
}

const exampleJob = `
########################################
Title: "Two triangles"
Kind: mesh # points, line or mesh
ZFill: 0.
Closed: false # line only
Points: [[0, 0], [0, 1], [1, 1], [1, 0]]
Polys: [[0, 1, 2], [0, 2, 3]] # mesh only
# PointType: float32 # element type of Points, float64 when omitted
# PolyType: int32 # element type of Polys, int when omitted
# GridFile: square.su2 # mesh only, replaces Points and Polys
########################################
`

func init() {
	rootCmd.AddCommand(newJobCmd(InputParameters.KindPoints, "Build point geometry with one vertex cell per point"))
	rootCmd.AddCommand(newJobCmd(InputParameters.KindLine, "Build a polyline through the points, optionally closed"))
	rootCmd.AddCommand(newJobCmd(InputParameters.KindMesh, "Build a polygon mesh from points and polygon indices"))
}

func readJob(path string) (ip *InputParameters.PolyDataInput, err error) {
	var data []byte
	if path, err = homedir.Expand(path); err != nil {
		return
	}
	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrapf(err, "unable to read job file %s", path)
	}
	ip = &InputParameters.PolyDataInput{}
	if err = ip.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "job file %s", path)
	}
	return
}

// BuildJob turns a parsed job into geometry.
func BuildJob(ip *InputParameters.PolyDataInput) (pd *polydata.PolyData, err error) {
	if ip.Kind == InputParameters.KindMesh && len(ip.GridFile) != 0 {
		var (
			g    *readfiles.Grid
			path string
		)
		if path, err = homedir.Expand(ip.GridFile); err != nil {
			return
		}
		if g, err = readfiles.ReadGrid(path); err != nil {
			return
		}
		return g.Mesh(ip.ZFill)
	}
	var coords *utils.NDArray
	if coords, err = utils.NewFloatArrayFromRows(ip.Points); err != nil {
		return nil, errors.Wrap(err, "Points")
	}
	if coords, err = asJobType(coords, ip, ip.PointType, types.Float64); err != nil {
		return nil, errors.Wrap(err, "Points")
	}
	switch ip.Kind {
	case InputParameters.KindPoints:
		return build.Points(build.Coordinates(coords), ip.ZFill)
	case InputParameters.KindLine:
		return build.Line(build.Coordinates(coords), ip.Closed, ip.ZFill)
	case InputParameters.KindMesh:
		var polys *utils.NDArray
		if polys, err = utils.NewIntArrayFromRows(ip.Polys); err != nil {
			return nil, errors.Wrap(err, "Polys")
		}
		if polys, err = asJobType(polys, ip, ip.PolyType, types.Int); err != nil {
			return nil, errors.Wrap(err, "Polys")
		}
		return build.Mesh(build.Coordinates(coords), polys, ip.ZFill)
	}
	return nil, errors.Errorf("unknown job kind [%s]", ip.Kind)
}

func asJobType(A *utils.NDArray, ip *InputParameters.PolyDataInput, name string,
	def types.DType) (R *utils.NDArray, err error) {
	var d types.DType
	if d, err = ip.ElementType(name, def); err != nil {
		return
	}
	if d == A.DType() {
		return A, nil
	}
	return A.AsType(d)
}

// report prints the geometry summary and writes it to output when one is given.
func report(pd *polydata.PolyData, output string) (err error) {
	pd.Print(os.Stdout)
	logger.Info("built polydata",
		zap.Int("points", pd.NumberOfPoints()),
		zap.Int("verts", pd.Verts.Len()),
		zap.Int("lines", pd.Lines.Len()),
		zap.Int("polys", pd.Polys.Len()))
	if len(output) == 0 {
		return
	}
	if err = writeAVS(pd, output); err != nil {
		return
	}
	logger.Info("wrote avs mesh", zap.String("file", output))
	return
}

func writeAVS(pd *polydata.PolyData, output string) (err error) {
	var file *os.File
	if pd.Polys.Len() == 0 {
		return errors.New("no polygons to export, avs output needs a mesh")
	}
	gm, err := pd.TriMesh()
	if err != nil {
		return errors.Wrap(err, "unable to export to avs")
	}
	if output, err = homedir.Expand(output); err != nil {
		return
	}
	if file, err = os.Create(output); err != nil {
		return errors.Wrapf(err, "unable to create %s", output)
	}
	defer file.Close()
	fmt.Printf("Number of Coordinate Pairs: %d\n", len(gm.XY)/2)
	fmt.Printf("Number of Triangle Elements: %d\n", len(gm.TriVerts))
	if err = polydata.WriteAVSGraphMesh(file, gm); err != nil {
		return errors.Wrapf(err, "writing %s", output)
	}
	return
}
