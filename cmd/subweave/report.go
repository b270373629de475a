package main

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// tableSpec is one report table's layout: the header row plus which columns
// hold counts and right-align.
type tableSpec struct {
	headers []string
	counts  []int
}

var (
	summarySpec = tableSpec{headers: []string{"Field", "Value"}}
	presetSpec  = tableSpec{headers: []string{"Preset", "Source", "Translation"}}
	runsSpec    = tableSpec{
		headers: []string{"When", "Run", "Preset", "Sentences", "Matched", "Unmatched", "Output"},
		counts:  []int{3, 4, 5},
	}
)

func (s tableSpec) render(rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(s.headers))
	configs := make([]table.ColumnConfig, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
		align := text.AlignLeft
		for _, c := range s.counts {
			if c == i {
				align = text.AlignRight
			}
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(s.headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
