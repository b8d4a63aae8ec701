package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spectle/spectle/internal/app"
)

var demoFrequency float64

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Visualize a synthetic sine tone",
	Long: `Run the full pipeline against a generated sine tone instead of a live
capture device. Useful for checking terminal rendering and tuning decay or
bracket thresholds without any audio hardware.

Examples:
  # Default 440 Hz tone
  spectle demo

  # A tone that lands in the highest column of the default bin map
  spectle demo --frequency 9000`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Float64Var(&demoFrequency, "frequency", 440,
		"tone frequency in Hz")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		Verbose: verbose,
		Quiet:   quiet,
	}

	application, err := app.NewApp(ctx)
	if err != nil {
		return err
	}

	return application.RunDemo(cmd.Context(), demoFrequency)
}
