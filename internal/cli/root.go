// Package cli wires configuration, logging and the front ends into cobra
// commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/brickscan/internal/clipboard"
	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/logging"
	"github.com/Makepad-fr/brickscan/internal/scan"
	"github.com/Makepad-fr/brickscan/internal/sound"
	"github.com/Makepad-fr/brickscan/internal/tui"
	"github.com/Makepad-fr/brickscan/internal/ui"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// Options are the root flags; they apply to every subcommand.
type Options struct {
	ConfigPath   string
	Prefix       string
	CodeLength   int
	NoBeep       bool
	Host         string
	ExpectedHost string
	LogFile      string
	LogLevel     string
	Theme        string
	NoColor      bool
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func NewRootCommand() *cobra.Command {
	opt := &Options{}
	root := &cobra.Command{
		Use:   "brickscan",
		Short: "Capture keyboard-wedge barcode scans and copy the formatted codes",
		Long: `brickscan reads barcodes typed by a keyboard-wedge scanner, extracts the
third *-delimited field, prefixes it and shows it as a brick. Activating a
brick copies the code to the clipboard and moves it into the history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opt)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opt.ConfigPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	f.StringVar(&opt.Prefix, "prefix", "", "prefix put in front of every code")
	f.IntVar(&opt.CodeLength, "length", 0, "code length (1-50)")
	f.BoolVar(&opt.NoBeep, "no-beep", false, "do not beep on scan")
	f.StringVar(&opt.Host, "host", "", "host identity used for the activation check (default: hostname)")
	f.StringVar(&opt.ExpectedHost, "expected-host", "", "host this copy is activated for (empty: no check)")
	f.StringVar(&opt.LogFile, "log-file", "", "write logs to this file")
	f.StringVar(&opt.LogLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&opt.Theme, "theme", "", "console theme: classic, neon or mono")
	f.BoolVar(&opt.NoColor, "no-color", false, "disable colors in console output")

	root.AddCommand(
		newRunCommand(opt),
		newFormatCommand(opt),
		newConfigCommand(opt),
		newVersionCommand(),
	)
	return root
}

func newRunCommand(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the scanner interface (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opt)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "brickscan %s\n", Version)
			return err
		},
	}
}

// loadConfig resolves defaults < config file < .env/environment < flags.
func loadConfig(cmd *cobra.Command, opt *Options) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path, required := opt.ConfigPath, true
	if path == "" {
		path, required = config.DefaultFile, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Settings.Prefix = &opt.Prefix
	}
	if flags.Changed("length") {
		cfg.Settings.CodeLength = &opt.CodeLength
	}
	if flags.Changed("no-beep") {
		beep := !opt.NoBeep
		cfg.Settings.Beep = &beep
	}
	if flags.Changed("host") {
		cfg.License.Host = opt.Host
	}
	if flags.Changed("expected-host") {
		cfg.License.ExpectedHost = opt.ExpectedHost
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opt.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opt.LogLevel
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = opt.Theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	ui.SetTheme(cfg.UI.Theme)
	if opt.NoColor {
		ui.SetColorForcing(false, true)
	}
	return cfg, nil
}

func gateFor(cfg *config.Config) scan.Gate {
	return scan.HostGate{Expected: cfg.License.ExpectedHost, Actual: cfg.License.ResolveHost()}
}

func runTUI(cmd *cobra.Command, opt *Options) error {
	cfg, err := loadConfig(cmd, opt)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	gate := gateFor(cfg)
	log.Info("starting", "version", Version, "activated", gate.Allow())

	term := tui.NewOutput(os.Stdout)
	return tui.Run(cmd.Context(), tui.Options{
		Settings:      cfg.InitialSettings(),
		Gate:          gate,
		Clipboard:     clipboard.New(term),
		Beeper:        sound.NewBeeper(term),
		ToastDuration: cfg.UI.ToastDuration(),
		Logger:        log.With(slog.String("component", "tui")),
		Output:        term,
	})
}
