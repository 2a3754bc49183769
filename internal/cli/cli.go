// Package cli implements the swe-go command line tool.
//
// Commands:
//
//	swe-go version      wrapper and libswe versions
//	swe-go positions    body positions at an instant
//	swe-go files        ephemeris files the library has open
//
// Configuration is read from --config (YAML), SWEGO_* environment variables
// and flags, in increasing order of precedence:
//
//	ephe_path: /usr/share/sweph
//	jpl_file: de431.eph
//
// SE_EPHE_PATH, when set, still overrides ephe_path inside libswe.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/libswe/swe-go/pkg/swe"
	"github.com/libswe/swe-go/pkg/swe/logging"
	"github.com/libswe/swe-go/pkg/swe/metrics"
)

const envPrefix = "SWEGO"

// ephemeris is the part of *swe.Ephemeris the commands drive.
type ephemeris interface {
	SetLogger(logging.Logger)
	SetCollector(*metrics.Collector)
	Apply(swe.Config)
	Close()
	JulDay(t time.Time) float64
	JulDayExact(t time.Time) float64
	CalcUT(jdUT float64, body swe.Body, flags ...swe.Flag) (swe.Position, error)
	PlanetName(body swe.Body) (string, error)
	Version() (string, error)
	LibraryPath() (string, error)
	CurrentFileData(ifno int) (swe.FileData, error)
}

var _ ephemeris = (*swe.Ephemeris)(nil)

type app struct {
	eph ephemeris
	v   *viper.Viper

	// started is set once setup has touched eph; teardown closes it then.
	started bool
	stderr  io.Writer

	configFile   string
	verbose      bool
	printMetrics bool

	registry *prometheus.Registry
	logger   *zap.Logger
}

// Execute runs swe-go with os.Args against the process-wide ephemeris.
func Execute() error {
	a := newApp(swe.Default())
	return a.execute(a.rootCommand())
}

func newApp(eph ephemeris) *app {
	return &app{eph: eph, v: viper.New(), stderr: os.Stderr}
}

// execute runs root and then closes the ephemeris and prints metrics,
// whether or not the command failed.
func (a *app) execute(root *cobra.Command) (err error) {
	defer func() {
		err = errors.Join(err, a.teardown())
	}()
	return root.Execute()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "swe-go",
		Short:         "Query the Swiss Ephemeris",
		Version:       swe.WrapperVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "YAML config file")
	flags.String("ephe-path", "", "directory holding the ephemeris data files")
	flags.String("jpl-file", "", "JPL ephemeris file inside the data directory")
	flags.BoolVar(&a.verbose, "verbose", false, "debug logging")
	flags.BoolVar(&a.printMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	_ = a.v.BindPFlag("ephe_path", flags.Lookup("ephe-path"))
	_ = a.v.BindPFlag("jpl_file", flags.Lookup("jpl-file"))
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	root.AddCommand(a.versionCommand())
	root.AddCommand(a.positionsCommand())
	root.AddCommand(a.filesCommand())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.started = true
	a.stderr = cmd.ErrOrStderr()

	logger, err := newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.logger = logger
	a.eph.SetLogger(logging.NewZap(logger))

	if a.printMetrics {
		a.registry = prometheus.NewRegistry()
		a.eph.SetCollector(metrics.NewCollector(a.registry))
	}

	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !swe.NativeAvailable() {
		logger.Warn("libswe is not linked; calculations will fail", zap.Error(swe.ErrNotBuilt))
	}
	a.eph.Apply(cfg)
	return nil
}

func (a *app) teardown() error {
	if !a.started {
		return nil
	}
	a.started = false
	a.eph.Close()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.registry == nil {
		return nil
	}
	mfs, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(a.stderr, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadConfig merges the optional YAML file with env and flag values already
// bound to v.
func loadConfig(v *viper.Viper, path string) (swe.Config, error) {
	var cfg swe.Config
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// validateConfig turns what the library would treat as a programming error
// into a user-facing one.
func validateConfig(cfg swe.Config) error {
	if _, override := os.LookupEnv(swe.EnvEphePath); override {
		return nil
	}
	if cfg.EphePath != "" {
		if len(cfg.EphePath) >= swe.MaxChars {
			return fmt.Errorf("ephe_path must be shorter than %d bytes", swe.MaxChars)
		}
		fi, err := os.Stat(cfg.EphePath)
		if err != nil {
			return fmt.Errorf("ephe_path: %w", err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("ephe_path %s is not a directory", cfg.EphePath)
		}
	}
	if cfg.JPLFile != "" {
		if len(cfg.JPLFile) >= swe.MaxChars {
			return fmt.Errorf("jpl_file must be shorter than %d bytes", swe.MaxChars)
		}
		full := filepath.Join(cfg.EphePath, cfg.JPLFile)
		if _, err := os.Stat(full); err != nil {
			return fmt.Errorf("jpl_file: %w", err)
		}
	}
	return nil
}

func parseBodies(names []string) ([]swe.Body, error) {
	out := make([]swe.Body, 0, len(names))
	for _, n := range names {
		b, err := swe.ParseBody(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func parseFlags(names []string) ([]swe.Flag, error) {
	var errs []error
	out := make([]swe.Flag, 0, len(names))
	for _, n := range names {
		f, err := swe.ParseFlag(strings.TrimSpace(n))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, f)
	}
	return out, errors.Join(errs...)
}
