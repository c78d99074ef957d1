package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/discodec/internal/config"
	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/danmuck/discodec/internal/logging"
	"github.com/danmuck/discodec/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	ExitOK     = 0
	ExitError  = 1
	ExitDecode = 2
)

// DecodeError marks a failure to decode the input bytes as the requested
// record, as opposed to a usage or input error.
type DecodeError struct {
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return ExitDecode
	}
	return ExitError
}

type app struct {
	configPath    string
	format        string
	stats         bool
	allowTrailing bool
	logLevel      string

	stdin    io.Reader
	cfg      config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	codec    *record.Codec
}

// NewRootCommand builds the disctl command tree reading input from stdin.
func NewRootCommand(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin, cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "disctl",
		Short: "Inspect DIS records",
		Long: `disctl encodes, decodes and describes the DIS record types known to
the discodec catalog.

Example:
  disctl decode IntercomIdentifier 0001000200030004`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.report,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&a.format, "format", "", "input format: hex or raw")
	flags.BoolVar(&a.stats, "stats", false, "print codec metrics after the command")
	flags.BoolVar(&a.allowTrailing, "allow-trailing", false, "ignore bytes after the decoded record")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: "+strings.Join(logging.LevelNames(), ", "))

	rootCmd.AddCommand(
		newTypesCmd(),
		newSizeCmd(),
		newLayoutCmd(),
		newZeroCmd(a),
		newDecodeCmd(a),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute runs disctl against the process arguments and exits.
func Execute() {
	err := NewRootCommand(os.Stdin).Execute()
	if err != nil {
		os.Exit(ExitCode(err))
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.InputFormat = strings.ToLower(strings.TrimSpace(a.format))
	}
	if flags.Changed("stats") {
		a.cfg.Stats = a.stats
	}
	if flags.Changed("allow-trailing") {
		a.cfg.StrictTrailing = !a.allowTrailing
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if err := config.Validate(a.cfg); err != nil {
		return err
	}

	logging.ConfigureRuntime()
	if lvl, ok := logging.ParseLevel(a.cfg.LogLevel); ok {
		zerolog.SetGlobalLevel(lvl)
	}
	a.logger = observability.InitLogger(cmd.ErrOrStderr(), "disctl")

	a.registry = prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(a.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	a.codec = record.New(
		record.WithObserver(observability.NewCodecObserver(metrics, a.logger)),
		record.WithTrailingBytes(!a.cfg.StrictTrailing),
	)
	return nil
}

func (a *app) report(cmd *cobra.Command, args []string) error {
	if !a.cfg.Stats || a.registry == nil {
		return nil
	}
	return writeStats(cmd.OutOrStdout(), a.registry)
}

func writeStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
