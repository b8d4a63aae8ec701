package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectle/spectle/internal/app"
)

var (
	// Listen command flags
	listenSampleRate int
	listenWindowSize int
	listenDuration   time.Duration
	listenDecay      float64
	listenFreqScale  float64
	listenPalette    string
)

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen <source>",
	Short: "Capture an audio source and visualize its spectrum",
	Long: `Capture a PulseAudio source and render its spectrum as a Wordle-style
grid for the configured duration.

The source argument is a PulseAudio source name as listed by
'pactl list sources short'.

Examples:
  # Visualize the default microphone for ten seconds
  spectle listen alsa_input.pci-0000_00_1f.3.analog-stereo

  # Longer run with a gentler decay and colored blocks
  spectle listen my-source --duration 30s --decay 0.95 --palette blocks`,
	Args: cobra.ExactArgs(1),
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().IntVar(&listenSampleRate, "sample-rate", 44100,
		"capture sample rate in Hz")
	listenCmd.Flags().IntVar(&listenWindowSize, "window-size", 1024,
		"samples per transform window")
	listenCmd.Flags().DurationVar(&listenDuration, "duration", 10*time.Second,
		"total capture duration")
	listenCmd.Flags().Float64Var(&listenDecay, "decay", 0.9,
		"per-cycle amplitude decay factor (0-1 exclusive)")
	listenCmd.Flags().Float64Var(&listenFreqScale, "freq-scale", 0.5,
		"frequency scaling factor for the column bin map")
	listenCmd.Flags().StringVar(&listenPalette, "palette", "emoji",
		"cell palette (emoji, blocks)")

	viper.BindPFlag("audio.sample_rate", listenCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("audio.window_size", listenCmd.Flags().Lookup("window-size"))
	viper.BindPFlag("audio.duration", listenCmd.Flags().Lookup("duration"))
	viper.BindPFlag("smoothing.decay", listenCmd.Flags().Lookup("decay"))
	viper.BindPFlag("display.freq_scale", listenCmd.Flags().Lookup("freq-scale"))
	viper.BindPFlag("display.palette", listenCmd.Flags().Lookup("palette"))
}

func runListen(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		Device:  args[0],
		Verbose: verbose,
		Quiet:   quiet,
	}

	application, err := app.NewApp(ctx)
	if err != nil {
		return err
	}

	return application.Run(cmd.Context())
}
