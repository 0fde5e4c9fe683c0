// Package export writes derived views to spreadsheet files.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// WriteXLSX writes the filtered view and its district count table to an
// XLSX workbook with two sheets.
func WriteXLSX(path string, view []model.Quake, table []model.DistrictCount) error {
	f := xlsx.NewFile()

	quakeSheet, err := f.AddSheet("Earthquakes")
	if err != nil {
		return eris.Wrap(err, "export: add earthquakes sheet")
	}

	header := quakeSheet.AddRow()
	for _, name := range []string{"Date", "Latitude", "Longitude", "Magnitude", "Depth (km)", "Place", "District"} {
		header.AddCell().Value = name
	}
	for _, q := range view {
		row := quakeSheet.AddRow()
		row.AddCell().Value = q.Time.Format("2006-01-02 15:04:05")
		row.AddCell().SetFloat(q.Latitude)
		row.AddCell().SetFloat(q.Longitude)
		row.AddCell().SetFloat(q.Magnitude)
		row.AddCell().SetFloat(q.DepthKM)
		row.AddCell().Value = q.Place
		row.AddCell().Value = q.District
	}

	countSheet, err := f.AddSheet("District Counts")
	if err != nil {
		return eris.Wrap(err, "export: add counts sheet")
	}

	countHeader := countSheet.AddRow()
	countHeader.AddCell().Value = "District"
	countHeader.AddCell().Value = "Count"
	for _, row := range table {
		r := countSheet.AddRow()
		r.AddCell().Value = row.District
		r.AddCell().SetInt(row.Count)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}

	zap.L().Info("xlsx export written",
		zap.String("path", path),
		zap.Int("quakes", len(view)),
		zap.Int("districts", len(table)),
	)
	return nil
}
