package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/invertedv/housing"
	"github.com/invertedv/housing/chart"
	"github.com/invertedv/housing/config"
	"github.com/invertedv/housing/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfgFile string
	envFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	in  io.Reader
	out io.Writer
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out, logger: zap.NewNop()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "housing",
		Short: "Calgary community housing dataset",
		Long: `housing merges the civic census, community assessments and communities by ward
into one record per community and census year, derives the vacancy rate and the
assessment per person and reports on the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env", ".env", "file of database credentials")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(a.cleanCmd(), a.analyzeCmd(), a.profileCmd(), a.exportCmd(), a.saveCmd())

	return root
}

// setup loads the configuration and builds the logger
func (a *app) setup() error {
	var e error
	a.cfg = config.Default()
	if a.cfgFile != "" {
		if a.cfg, e = config.Load(a.cfgFile); e != nil {
			return wrapExit(ExitUsage, "loading configuration", e)
		}
	}

	if e = a.cfg.LoadEnv(a.envFile); e != nil {
		return wrapExit(ExitUsage, "loading environment", e)
	}

	if e = a.cfg.Validate(); e != nil {
		return wrapExit(ExitUsage, "checking configuration", e)
	}

	if a.logger, e = newLogger(a.cfg.LogLevel, a.verbose); e != nil {
		return fmt.Errorf("failed to initialize logger: %w", e)
	}

	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	lvl, e := zapcore.ParseLevel(level)
	if e != nil {
		return nil, e
	}

	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, e := zc.Build()
	if e != nil {
		return nil, e
	}

	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

// dataset runs the pipeline and logs its diagnostics
func (a *app) dataset() (*housing.Dataset, error) {
	opts, e := a.cfg.Options()
	if e != nil {
		return nil, wrapExit(ExitUsage, "pipeline options", e)
	}

	src := a.cfg.Pipeline()
	a.logger.Info("loading sources",
		zap.String("census", src.Census),
		zap.String("assessment", src.Assessment),
		zap.String("ward", src.Ward),
		zap.Stringer("policy", opts.Policy))

	ds, diag, e := housing.Run(src, opts)
	logDiagnostics(a.logger, diag)
	if e != nil {
		return nil, wrapExit(ExitData, "building dataset", e)
	}

	a.logger.Info("dataset built", zap.Int("records", ds.Len()), zap.Int("communities", len(ds.Communities())))

	return ds, nil
}

func logDiagnostics(logger *zap.Logger, diag *housing.Diagnostics) {
	for _, entry := range diag.Entries() {
		fields := []zap.Field{zap.String("stage", entry.Stage)}
		if entry.Rows >= 0 {
			fields = append(fields, zap.Int("rows", entry.Rows))
		}

		switch entry.Level {
		case housing.LevelWarn:
			logger.Warn(entry.Message, fields...)
		default:
			logger.Info(entry.Message, fields...)
		}
	}
}

func (a *app) outputDir() error {
	if e := os.MkdirAll(a.cfg.Output.Dir, os.ModePerm); e != nil {
		return wrapExit(ExitData, "creating output directory", e)
	}

	return nil
}

func (a *app) writeCSV(ds *housing.Dataset) error {
	fileName := a.cfg.OutputPath(a.cfg.Output.CSV)
	if e := export.WriteCSV(ds, fileName, a.cfg.CSVOptions()...); e != nil {
		return wrapExit(ExitData, "writing csv", e)
	}

	a.logger.Info("csv written", zap.String("file", fileName))

	return nil
}

// writeOutputs writes the workbook, the chart panel and the html figures
func (a *app) writeOutputs(ds *housing.Dataset, an *housing.Analysis) error {
	workbook := a.cfg.OutputPath(a.cfg.Output.Workbook)
	if e := export.WriteWorkbook(ds, an.Threshold, workbook); e != nil {
		return wrapExit(ExitData, "writing workbook", e)
	}
	a.logger.Info("workbook written", zap.String("file", workbook))

	panel := a.cfg.OutputPath(a.cfg.Output.Panel)
	if e := chart.Panel(ds, an, panel); e != nil {
		return wrapExit(ExitData, "drawing charts", e)
	}
	a.logger.Info("charts written", zap.String("file", panel))

	files, e := chart.SaveFigures(ds, an, a.cfg.OutputPath(a.cfg.Output.Charts))
	if e != nil {
		return wrapExit(ExitData, "saving figures", e)
	}
	a.logger.Info("figures written", zap.Strings("files", files))

	return nil
}

// show opens each html figure in browser
func (a *app) show(ds *housing.Dataset, an *housing.Analysis, browser string) error {
	figs, e := chart.Figures(ds, an)
	if e != nil {
		return wrapExit(ExitData, "building figures", e)
	}

	var names []string
	for nm := range figs {
		names = append(names, nm)
	}
	sort.Strings(names)

	for _, nm := range names {
		if e = figs[nm].Show(browser, ""); e != nil {
			return wrapExit(ExitData, "showing "+nm, e)
		}

		a.logger.Debug("figure shown", zap.String("figure", nm), zap.String("browser", browser))
	}

	return nil
}
