package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"subweave/internal/config"
	"subweave/internal/runlog"
)

func newRunsCommand(configFlag *string) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent alignment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.RunLog.Enabled {
				return fmt.Errorf("run history is disabled (run_log.enabled = false)")
			}

			store, err := runlog.Open(cfg.RunLog.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.CreatedAt.Local().Format(time.DateTime),
					e.RunID,
					e.Preset,
					fmt.Sprintf("%d", e.Total),
					fmt.Sprintf("%d", e.Matched),
					fmt.Sprintf("%d", e.Unmatched),
					e.OutputDir,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), runsSpec.render(rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")
	return cmd
}
