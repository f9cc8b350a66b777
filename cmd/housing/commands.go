package main

import (
	"github.com/invertedv/housing"
	"github.com/invertedv/housing/report"
	"github.com/invertedv/housing/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Build the dataset and write the cleaned csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, e := a.dataset()
			if e != nil {
				return e
			}

			if e = a.outputDir(); e != nil {
				return e
			}

			if e = a.writeCSV(ds); e != nil {
				return e
			}

			report.Head(a.out, ds, 5)
			report.Describe(a.out, ds)
			report.Missing(a.out, ds)
			report.AreaDistribution(a.out, ds)

			return nil
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	var (
		community string
		year      int
		show      bool
		browser   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report on the dataset, profile a community and write every output",
		Long: `analyze prints an overview of the dataset, asks for a community and year to profile
unless --community is given, answers the standard questions and writes the csv, the
workbook and the charts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, e := a.dataset()
			if e != nil {
				return e
			}

			report.Overview(a.out, ds)

			var r housing.Record
			if community != "" {
				r, e = ds.Validate(community, year)
			} else {
				r, e = report.NewPrompter(a.in, a.out, ds).Choose()
			}

			if e != nil {
				return wrapExit(ExitUsage, "choosing a community", e)
			}

			report.Profile(a.out, r)

			an := housing.Analyze(ds, a.cfg.Threshold)
			report.Analysis(a.out, an)

			if e = a.outputDir(); e != nil {
				return e
			}

			if e = a.writeCSV(ds); e != nil {
				return e
			}

			if e = a.writeOutputs(ds, an); e != nil {
				return e
			}

			if !show {
				return nil
			}

			return a.show(ds, an, browser)
		},
	}

	cmd.Flags().StringVar(&community, "community", "", "community to profile, skips the prompt")
	cmd.Flags().IntVar(&year, "year", housing.Years[len(housing.Years)-1], "census year of the profile")
	cmd.Flags().BoolVar(&show, "show", false, "open the html figures in a browser")
	cmd.Flags().StringVar(&browser, "browser", "xdg-open", "command that opens the figures")

	return cmd
}

func (a *app) profileCmd() *cobra.Command {
	var (
		community string
		year      int
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the profile of one community in one year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, e := a.dataset()
			if e != nil {
				return e
			}

			r, e := ds.Validate(community, year)
			if e != nil {
				return wrapExit(ExitUsage, "profile", e)
			}

			report.Profile(a.out, r)

			return nil
		},
	}

	cmd.Flags().StringVar(&community, "community", "", "community name")
	cmd.Flags().IntVar(&year, "year", 0, "census year")
	_ = cmd.MarkFlagRequired("community")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the csv, the workbook and the charts without reporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, e := a.dataset()
			if e != nil {
				return e
			}

			if e = a.outputDir(); e != nil {
				return e
			}

			if e = a.writeCSV(ds); e != nil {
				return e
			}

			return a.writeOutputs(ds, housing.Analyze(ds, a.cfg.Threshold))
		},
	}
}

func (a *app) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the dataset to the configured database table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, e := a.dataset()
			if e != nil {
				return e
			}

			db := a.cfg.Database
			d, e := store.Connect(a.cfg.Conn())
			if e != nil {
				return wrapExit(ExitData, "connecting to "+db.Dialect, e)
			}
			defer func() { _ = d.Close() }()

			d.SetBufSize(db.BufferMB)

			if e = store.SaveDataset(d, db.Table, ds, db.Overwrite); e != nil {
				return wrapExit(ExitData, "saving dataset", e)
			}

			a.logger.Info("dataset saved", zap.String("dialect", db.Dialect), zap.String("table", db.Table),
				zap.Int("records", ds.Len()))

			return nil
		},
	}
}
