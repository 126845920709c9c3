package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrisbotar/factory-analysis/internal/render"
	"github.com/andrisbotar/factory-analysis/internal/report"
	"github.com/andrisbotar/factory-analysis/internal/store"
)

var (
	reportInput           string
	reportFormat          string
	reportThreshold       int
	reportIncludeServices bool
	reportNoArtifacts     bool
	reportDB              string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis over the modification register",
	Long: `Reads the register, normalizes it, and prints the summary figures.

Table artifacts for charting are written to the configured artifacts
directory unless disabled, and the finished run can be persisted to a
SQLite database with --db.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		applyReportFlags(cmd)

		records, findings, err := runPipeline()
		if err != nil {
			return err
		}
		if len(findings) > 0 {
			zap.L().Warn("report: plant/area inconsistencies found",
				zap.Int("plants", len(findings)))
		}

		rep := report.Build(records, report.Options{
			IncludeServices:  cfg.Report.IncludeServices,
			ProjectThreshold: cfg.Report.ProjectThreshold,
			DrilldownPlant:   cfg.Report.DrilldownPlant,
		})

		for _, line := range rep.Summary() {
			fmt.Println(line)
		}

		if cfg.Artifacts.Enabled {
			if err := render.Write(rep, cfg.Artifacts.Dir); err != nil {
				return eris.Wrap(err, "report: write artifacts")
			}
		}

		if cfg.Store.Path != "" {
			st, err := store.Open(cfg.Store.Path)
			if err != nil {
				return eris.Wrap(err, "report: open store")
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "report: migrate store")
			}
			runID, err := st.SaveReport(ctx, cfg.Input.Path, rep)
			if err != nil {
				return eris.Wrap(err, "report: save run")
			}
			zap.L().Info("report: run persisted", zap.String("run_id", runID))
		}

		zap.L().Info("report: complete",
			zap.Int("records", rep.TotalRecords),
			zap.Int("years", rep.ByYear.Len()),
			zap.Int("areas", rep.ByArea.Len()),
			zap.Int("projects", rep.ByProject.Len()),
		)
		return nil
	},
}

// applyReportFlags lets explicit flags override file/env configuration.
func applyReportFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("input") {
		cfg.Input.Path = reportInput
	}
	if cmd.Flags().Changed("format") {
		cfg.Input.Format = reportFormat
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Report.ProjectThreshold = reportThreshold
	}
	if cmd.Flags().Changed("include-services") {
		cfg.Report.IncludeServices = reportIncludeServices
	}
	if cmd.Flags().Changed("no-artifacts") {
		cfg.Artifacts.Enabled = !reportNoArtifacts
	}
	if cmd.Flags().Changed("db") {
		cfg.Store.Path = reportDB
	}
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "path to the register file")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "input format: csv or xlsx")
	reportCmd.Flags().IntVar(&reportThreshold, "threshold", 0, "minimum count for a project to appear in the display table")
	reportCmd.Flags().BoolVar(&reportIncludeServices, "include-services", false, "include the Services area in yearly breakdown views")
	reportCmd.Flags().BoolVar(&reportNoArtifacts, "no-artifacts", false, "skip writing table artifacts")
	reportCmd.Flags().StringVar(&reportDB, "db", "", "SQLite path to persist the finished run")
	rootCmd.AddCommand(reportCmd)
}
