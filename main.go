package main

import (
	"fmt"
	"os"
	"time"

	"dotloader.klederson.com/internal/app"
	"dotloader.klederson.com/internal/config"
	"dotloader.klederson.com/internal/export"
	"dotloader.klederson.com/internal/loader"
	"dotloader.klederson.com/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagSeed       int64
	flagResetCurve string
	flagLogFile    string
	flagLogLevel   string

	flagOut      string
	flagFPS      int
	flagDuration time.Duration
	flagSize     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dotloader",
		Short: "DOTLOADER - Radial loading-dots animation for the terminal",
		Long: `DOTLOADER draws six colored dots arranged in a ring, each with three
smaller companion dots. The ring spins continuously while the dots
alternate between a scattered state and a reassembled state.

Use the export command to render the animation headlessly to a GIF.`,
		SilenceUsage: true,
		RunE:         run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML file overriding the animation constants")
	pf.Int64Var(&flagSeed, "seed", 0, "Random seed (0 seeds from the clock)")
	pf.StringVar(&flagResetCurve, "reset-curve", "", "Reset transition curve: ease or spring")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render the animation to an animated GIF",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "dotloader.gif", "Output file")
	exportCmd.Flags().IntVar(&flagFPS, "fps", config.ExportFPS, "Frames per second")
	exportCmd.Flags().DurationVar(&flagDuration, "duration", config.ExportDuration, "Length of the recording")
	exportCmd.Flags().IntVar(&flagSize, "size", config.ExportSize, "Edge length of the output in pixels")
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of the config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagResetCurve != "" {
		cfg.ResetCurve = flagResetCurve
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	log, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	l := loader.New(cfg, loader.WithLogger(log))
	defer l.Close()

	log.Info().
		Int("groups", cfg.GroupCount).
		Int("children", cfg.ChildCount).
		Str("reset_curve", cfg.ResetCurve).
		Msg("starting")

	p := tea.NewProgram(
		app.New(l, log),
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logging.OpenOrStderr(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := export.DefaultOptions()
	opts.FPS = flagFPS
	opts.Duration = flagDuration
	opts.Size = flagSize

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", flagOut, err)
	}

	l := loader.New(cfg, loader.WithLogger(log))
	defer l.Close()

	if err := export.GIF(f, l, opts, log); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", flagOut, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", flagOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagOut)
	return nil
}
