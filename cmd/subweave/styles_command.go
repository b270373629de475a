package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subweave/internal/styles"
)

func newStylesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available subtitle style presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := styles.PresetNames()
			if jsonOutput {
				return writeJSON(cmd, names)
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				ts, err := styles.Preset(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%s %d", ts.Source.FontName, ts.Source.FontSize),
					fmt.Sprintf("%s %d", ts.Translation.FontName, ts.Translation.FontSize),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), presetSpec.render(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print preset names as JSON")
	return cmd
}
