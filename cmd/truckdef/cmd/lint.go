package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rigworks/truckdef/pkg/rig/parser"
)

var (
	styleNotice  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleCount   = lipgloss.NewStyle().Bold(true)
)

var lintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Parses a rig definition file and lists all diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		collector := &parser.Collector{}
		p := parser.New(parser.Options{
			Logger:    logger,
			Sink:      collector,
			Resources: newResourceChecker(cfg),
		})
		if _, err := p.ParseFile(args[0]); err != nil {
			return err
		}

		for i := range collector.Messages {
			msg := &collector.Messages[i]
			fmt.Printf("%s %s\n", severityTag(msg.Severity), msg.Format())
		}

		fmt.Println(styleCount.Render(fmt.Sprintf(
			"%d errors, %d warnings, %d notices",
			collector.Count(parser.SeverityError),
			collector.Count(parser.SeverityWarning),
			collector.Count(parser.SeverityNotice))))

		if collector.HasErrors() {
			return fmt.Errorf("%s has errors", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func severityTag(s parser.Severity) string {
	switch s {
	case parser.SeverityError:
		return styleError.Render("ERROR  ")
	case parser.SeverityWarning:
		return styleWarning.Render("WARNING")
	default:
		return styleNotice.Render("NOTICE ")
	}
}
