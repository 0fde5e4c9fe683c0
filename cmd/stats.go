package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quakewatch/quake-explorer/internal/explore"
	"github.com/quakewatch/quake-explorer/internal/model"
)

var statsTopN int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset summary and top districts by quake count",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, centroids, _, err := loadInputs(cmd.Context())
		if err != nil {
			return err
		}

		summary := model.Summarize(ds, centroids)
		fmt.Printf("records:    %d\n", summary.QuakeCount)
		fmt.Printf("magnitude:  %.1f to %.1f\n", summary.MagnitudeMin, summary.MagnitudeMax)
		fmt.Printf("dates:      %s to %s\n",
			summary.Start.Format("2006-01-02"), summary.End.Format("2006-01-02"))
		fmt.Printf("districts:  %d\n\n", len(summary.Districts))

		topN := statsTopN
		if topN == 0 {
			topN = cfg.Dashboard.TopN
		}
		_, counts := explore.Recompute(ds, model.FilterParams{District: model.AllDistricts}, topN)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DISTRICT\tQUAKES")
		for _, c := range counts {
			fmt.Fprintf(w, "%s\t%d\n", c.District, c.Count)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsTopN, "top", 0, "number of districts to show (default from config)")
	rootCmd.AddCommand(statsCmd)
}
