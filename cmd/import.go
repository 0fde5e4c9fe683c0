package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse the input files and save an assigned snapshot",
	Long:  "Loads the earthquake and district files, runs nearest-centroid assignment, and writes the result to the snapshot database so serve --snapshot can skip parsing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ds, _, _, err := loadInputs(ctx)
		if err != nil {
			return err
		}

		st, err := store.NewSQLite(cfg.Snapshot.Path)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		snap, err := st.SaveSnapshot(ctx, ds.Quakes)
		if err != nil {
			return err
		}

		zap.L().Info("snapshot saved",
			zap.String("snapshot_id", snap.ID),
			zap.Int("quakes", snap.QuakeCount),
		)
		fmt.Printf("saved snapshot %s (%d records) to %s\n", snap.ID, snap.QuakeCount, cfg.Snapshot.Path)
		return nil
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List saved snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.NewSQLite(cfg.Snapshot.Path)
		if err != nil {
			return err
		}
		defer st.Close()

		snaps, err := st.ListSnapshots(cmd.Context())
		if err != nil {
			return err
		}

		if len(snaps) == 0 {
			fmt.Println("no snapshots; run import first")
			return nil
		}
		for _, s := range snaps {
			fmt.Printf("%s  %s  %d records\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.QuakeCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(snapshotsCmd)
}
