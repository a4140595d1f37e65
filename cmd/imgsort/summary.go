package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
)

// renderSummary formats one row per folder plus a totals footer. Box-drawing
// borders are used only for terminals; pipes and files get plain ASCII.
func renderSummary(summary *models.RunSummary, tty bool) string {
	tw := table.NewWriter()
	if tty {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"Folder", "Output", "Matched", "Unmatched", "Failed"})

	for _, folder := range summary.Folders {
		if folder.Skipped {
			tw.AppendRow(table.Row{folder.Input, "(skipped)", "", "", ""})
			continue
		}
		tw.AppendRow(table.Row{
			folder.Input,
			folder.Output,
			strconv.Itoa(len(folder.Matched)),
			strconv.Itoa(len(folder.Unmatched)),
			strconv.Itoa(len(folder.Failed)),
		})
	}

	matched, unmatched, failed := summary.Totals()
	tw.AppendFooter(table.Row{"Total", "", strconv.Itoa(matched), strconv.Itoa(unmatched), strconv.Itoa(failed)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
