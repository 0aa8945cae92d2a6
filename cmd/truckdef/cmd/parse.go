package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rigworks/truckdef/pkg/rig/ast"
	"github.com/rigworks/truckdef/pkg/rig/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parses a rig definition file and dumps the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		p := parser.New(parser.Options{
			Logger:    logger,
			Resources: newResourceChecker(cfg),
		})
		doc, err := p.ParseFile(args[0])
		if err != nil {
			return err
		}

		switch parseFormat {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if encErr := enc.Encode(doc); encErr != nil {
				return fmt.Errorf("encoding document: %w", encErr)
			}
			return enc.Close()
		case "summary":
			printSummary(doc)
			return nil
		default:
			return fmt.Errorf("unknown output format %q", parseFormat)
		}
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "summary", "output format (yaml|summary)")
	rootCmd.AddCommand(parseCmd)
}

func printSummary(doc *ast.Document) {
	fmt.Printf("Name:    %s\n", doc.Name)
	fmt.Printf("Modules: %d\n", 1+len(doc.ModuleNames))

	doc.ForEachModule(func(m *ast.Module) {
		fmt.Printf("\nModule %q:\n", m.Name)
		for _, c := range moduleCounts(m) {
			if c.count > 0 {
				fmt.Printf("  %-18s %d\n", c.name, c.count)
			}
		}
	})

	if len(doc.GeneratedNodes) > 0 {
		fmt.Printf("\nGenerated node blocks: %d\n", len(doc.GeneratedNodes))
	}
}

type sectionCount struct {
	name  string
	count int
}

// moduleCounts lists the populated collections of a module in display order.
func moduleCounts(m *ast.Module) []sectionCount {
	return []sectionCount{
		{"authors", len(m.Authors)},
		{"globals", len(m.Globals)},
		{"nodes", len(m.Nodes)},
		{"beams", len(m.Beams)},
		{"shocks", len(m.Shocks)},
		{"shocks2", len(m.Shocks2)},
		{"shocks3", len(m.Shocks3)},
		{"hydros", len(m.Hydros)},
		{"commands", len(m.Commands2)},
		{"triggers", len(m.Triggers)},
		{"ties", len(m.Ties)},
		{"ropes", len(m.Ropes)},
		{"ropables", len(m.Ropables)},
		{"fixes", len(m.Fixes)},
		{"contacters", len(m.Contacters)},
		{"hooks", len(m.Hooks)},
		{"lockgroups", len(m.Lockgroups)},
		{"slidenodes", len(m.SlideNodes)},
		{"railgroups", len(m.RailGroups)},
		{"animators", len(m.Animators)},
		{"collisionboxes", len(m.CollisionBoxes)},
		{"wheels", len(m.Wheels)},
		{"wheels2", len(m.Wheels2)},
		{"meshwheels", len(m.MeshWheels)},
		{"flexbodywheels", len(m.FlexBodyWheels)},
		{"wheeldetachers", len(m.WheelDetachers)},
		{"axles", len(m.Axles)},
		{"interaxles", len(m.InterAxles)},
		{"transfercase", len(m.TransferCases)},
		{"engine", len(m.Engine)},
		{"engoption", len(m.Engoption)},
		{"engturbo", len(m.Engturbo)},
		{"torquecurve", len(m.TorqueCurves)},
		{"brakes", len(m.Brakes)},
		{"rotators", len(m.Rotators)},
		{"rotators2", len(m.Rotators2)},
		{"wings", len(m.Wings)},
		{"airbrakes", len(m.Airbrakes)},
		{"fusedrag", len(m.Fusedrag)},
		{"turbojets", len(m.Turbojets)},
		{"turboprops", len(m.Turboprops)},
		{"pistonprops", len(m.Pistonprops)},
		{"screwprops", len(m.Screwprops)},
		{"props", len(m.Props)},
		{"flexbodies", len(m.Flexbodies)},
		{"submeshes", len(m.Submeshes)},
		{"flares", len(m.Flares)},
		{"managedmaterials", len(m.ManagedMaterials)},
		{"exhausts", len(m.Exhausts)},
		{"particles", len(m.Particles)},
		{"cameras", len(m.Cameras)},
		{"camerarails", len(m.CameraRails)},
		{"cinecam", len(m.Cinecams)},
		{"videocameras", len(m.VideoCameras)},
		{"soundsources", len(m.SoundSources)},
		{"soundsources2", len(m.SoundSources2)},
	}
}
