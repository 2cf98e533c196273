package cmd

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/polydata/polydata"
	"github.com/notargets/polydata/readfiles"
)

// GridCmd represents the grid command
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Build geometry from a Gambit (.neu) or SU2 (.su2) grid file",
	Long: `Reads a 2D grid file and builds its polygon mesh, or with --boundary the
edges of one boundary tag as polyline geometry`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g  *readfiles.Grid
			pd *polydata.PolyData
		)
		gridFile, _ := cmd.Flags().GetString("gridFile")
		if len(gridFile) == 0 {
			return errors.New("must supply a grid file (-F, --gridFile) in .neu (Gambit neutral file) or .su2 format")
		}
		if gridFile, err = homedir.Expand(gridFile); err != nil {
			return
		}
		if g, err = readfiles.ReadGrid(gridFile); err != nil {
			return
		}
		logger.Debug("read grid",
			zap.String("file", gridFile),
			zap.String("title", g.Title),
			zap.Strings("boundaries", g.BoundaryTags()))
		zFill := viper.GetFloat64("zfill")
		if tag, _ := cmd.Flags().GetString("boundary"); len(tag) != 0 {
			if pd, err = g.Boundary(tag, zFill); err != nil {
				return
			}
		} else if pd, err = g.Mesh(zFill); err != nil {
			return
		}
		return report(pd, viper.GetString("output"))
	},
}

func init() {
	rootCmd.AddCommand(GridCmd)
	GridCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gambit (.neu) or SU2 (.su2) format")
	GridCmd.Flags().StringP("boundary", "b", "", "build the edges of this boundary tag instead of the mesh")
}
