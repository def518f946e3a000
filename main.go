package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/radial-chart/internal/chart"
	"github.com/iburimskiy/radial-chart/internal/config"
	"github.com/iburimskiy/radial-chart/internal/game"
)

//nolint:gochecknoglobals // Cobra flag bindings.
var (
	configFile string
	duration   time.Duration
	inset      float64
	mute       bool
	verbose    bool
	yamlOutput bool

	rootCmd = &cobra.Command{
		Use:   "radial-chart",
		Short: "Interactive radial chart: tap a sector to select it.",
		Long:  "Opens a window with a pie chart built from a yaml data file (or the built-in sample). Tapping a sector selects it and shows its share in the centre.",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	anglesCmd = &cobra.Command{
		Use:   "angles",
		Short: "Print the sector layout without opening a window",
		Args:  cobra.NoArgs,
		RunE:  runAngles,
	}
)

//nolint:gochecknoinits // Cobra command wiring.
func init() {
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Chart data yaml file (defaults to the built-in sample)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&duration, "duration", 0, "Override the selection animation duration (e.g. 300ms)")
	rootCmd.PersistentFlags().Float64Var(&inset, "inset", -1, "Override how far a selected sector grows, in pixels")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Do not play the selection click")
	anglesCmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Print yaml instead of a table")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
	rootCmd.AddCommand(anglesCmd)
}

func loadConfig(cmd *cobra.Command) (config.ChartConfig, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return config.ChartConfig{}, err
		}
	}
	if cmd.Flags().Changed("duration") {
		cfg.AnimationDuration = duration
	}
	if cmd.Flags().Changed("inset") {
		cfg.MaxSelectionInset = inset
	}
	if err := cfg.Validate(); err != nil {
		return config.ChartConfig{}, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := game.NewGame(cfg, game.WithLogger(logrus.StandardLogger()), game.WithSound(!mute))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Radial Chart - tap a sector, R: reset, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type sectorRow struct {
	Name    string  `yaml:"name"`
	Value   float64 `yaml:"value"`
	Percent float64 `yaml:"percent"`
	Start   float64 `yaml:"startAngle"`
	Sweep   float64 `yaml:"sweepAngle"`
	Color   string  `yaml:"color"`
}

func runAngles(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := chart.New(cfg)
	if err != nil {
		return err
	}

	rows := make([]sectorRow, 0, len(c.Sectors()))
	for _, s := range c.Sectors() {
		rows = append(rows, sectorRow{
			Name:    s.Name,
			Value:   s.Value,
			Percent: s.Percent,
			Start:   s.StartAngle,
			Sweep:   s.SweepAngle,
			Color:   config.HexColor(s.Color),
		})
	}

	if yamlOutput {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(rows)
	}
	printAngles(cmd.OutOrStdout(), rows)
	return nil
}

func printAngles(w io.Writer, rows []sectorRow) {
	header := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, header.Render(fmt.Sprintf("   %-16s %8s %9s %9s", "NAME", "PERCENT", "START", "SWEEP")))
	for _, r := range rows {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render("■")
		fmt.Fprintf(w, " %s %-16s %8s %8.2f° %8.2f°\n", swatch, r.Name, chart.FormatPercent(r.Percent), r.Start, r.Sweep)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
