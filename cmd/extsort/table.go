package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"extsort/internal/organizer"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, footer []string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignFooter: align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(values []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

// renderSummaryTable tabulates processed files per label folder.
func renderSummaryTable(result organizer.Result) string {
	summary := result.Summary()
	if len(summary) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(summary))
	var files int
	var bytes int64
	for _, entry := range summary {
		rows = append(rows, []string{
			string(entry.Label),
			strconv.Itoa(entry.Files),
			humanize.IBytes(uint64(entry.Bytes)),
		})
		files += entry.Files
		bytes += entry.Bytes
	}
	footer := []string{"Total", strconv.Itoa(files), humanize.IBytes(uint64(bytes))}
	return renderTable(
		[]string{"Folder", "Files", "Size"},
		rows,
		footer,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
