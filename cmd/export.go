package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/explore"
	"github.com/quakewatch/quake-explorer/internal/export"
	"github.com/quakewatch/quake-explorer/internal/model"
)

var (
	exportOut      string
	exportMinMag   float64
	exportStart    string
	exportEnd      string
	exportDistrict string
	exportTopN     int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a filtered view to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := flagFilterParams()
		if err != nil {
			return err
		}

		ds, _, _, err := loadInputs(cmd.Context())
		if err != nil {
			return err
		}

		topN := exportTopN
		if topN == 0 {
			topN = cfg.Dashboard.TopN
		}
		view, counts := explore.Recompute(ds, params, topN)

		if err := export.WriteXLSX(exportOut, view, counts); err != nil {
			return err
		}

		zap.L().Info("export written",
			zap.String("path", exportOut),
			zap.Int("records", len(view)),
		)
		fmt.Printf("wrote %d records and %d district counts to %s\n", len(view), len(counts), exportOut)
		return nil
	},
}

// flagFilterParams builds filter parameters from the export flags, mirroring
// the dashboard query string semantics.
func flagFilterParams() (model.FilterParams, error) {
	params := model.FilterParams{
		MinMagnitude: exportMinMag,
		District:     model.AllDistricts,
	}
	if exportDistrict != "" {
		params.District = exportDistrict
	}
	if exportStart != "" {
		t, err := time.Parse("2006-01-02", exportStart)
		if err != nil {
			return params, eris.Wrapf(err, "export: parse --start %q", exportStart)
		}
		params.Start = t
	}
	if exportEnd != "" {
		t, err := time.Parse("2006-01-02", exportEnd)
		if err != nil {
			return params, eris.Wrapf(err, "export: parse --end %q", exportEnd)
		}
		params.End = t.Add(24*time.Hour - time.Nanosecond)
	}
	return params, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "quakes.xlsx", "output workbook path")
	exportCmd.Flags().Float64Var(&exportMinMag, "min-mag", 0, "minimum magnitude")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "earliest date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "latest date, inclusive (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportDistrict, "district", "", "restrict to one district")
	exportCmd.Flags().IntVar(&exportTopN, "top", 0, "district count rows (default from config)")
	rootCmd.AddCommand(exportCmd)
}
