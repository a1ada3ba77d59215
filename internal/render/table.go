// Package render formats rectangular query results as bordered text tables.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Row maps a column name to its display value.
type Row map[string]string

// Table writes a bordered, width-fitted table to w. Columns appear in the
// given order; rows are read by column name. An empty row set prints a
// "no data" line instead of a table.
//
// Cell translation: a column named "Finalised" displays stored "1" as "Yes"
// and "0" as "No"; any blank cell displays as "N/A".
func Table(w io.Writer, title string, columns []string, rows []Row) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "\nNo data found for %s.\n\n", title)
		return
	}

	widths := make(map[string]int, len(columns))
	for _, col := range columns {
		widths[col] = len(col)
	}

	display := make([]Row, 0, len(rows))
	for _, row := range rows {
		d := make(Row, len(columns))
		for _, col := range columns {
			v := cellValue(col, row[col])
			d[col] = v
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
		display = append(display, d)
	}

	fmt.Fprintf(w, "\n%s\n", title)
	border := borderLine(columns, widths)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, formatRow(columns, widths, func(col string) string { return col }))
	fmt.Fprintln(w, border)
	for _, d := range display {
		fmt.Fprintln(w, formatRow(columns, widths, func(col string) string { return d[col] }))
	}
	fmt.Fprintln(w, border)
}

// cellValue applies the blank and Finalised display translations.
func cellValue(column, value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	if column == "Finalised" {
		switch value {
		case "1":
			return "Yes"
		case "0":
			return "No"
		}
	}
	return value
}

func formatRow(columns []string, widths map[string]int, cell func(string) string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, col := range columns {
		fmt.Fprintf(&sb, " %-*s |", widths[col], cell(col))
	}
	return sb.String()
}

func borderLine(columns []string, widths map[string]int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, col := range columns {
		sb.WriteString(strings.Repeat("-", widths[col]+2))
		sb.WriteString("+")
	}
	return sb.String()
}
