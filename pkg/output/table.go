package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/ccollicutt/botreport/pkg/analyzer"
	"github.com/ccollicutt/botreport/pkg/budget"
)

// titleColor is only applied when w is a color-capable terminal.
var titleColor = lipgloss.Color("#7D56F4")

// WriteBudgets renders the expected duration for every bot size.
func WriteBudgets(w io.Writer, table *budget.Table) {
	writeTitle(w, "Expected duration by bot size")

	t := newTable(w)
	t.SetHeader([]string{"Bot Size", "Budget"})
	for _, e := range table.Entries() {
		t.Append([]string{e.Size.String(), e.Budget.String()})
	}
	t.Render()
}

// WriteExplanation renders every field of one evaluated transaction.
func WriteExplanation(w io.Writer, result *analyzer.Result) {
	tx := result.Transaction
	writeTitle(w, fmt.Sprintf("Transaction %d", tx.ID))

	t := newTable(w)
	t.SetHeader([]string{"Field", "Value"})
	t.AppendBulk([][]string{
		{"ID", strconv.FormatInt(tx.ID, 10)},
		{"Start", tx.Start},
		{"End", tx.End},
		{"Site", tx.Site},
		{"Bot Size", tx.BotSize.String()},
		{"Elapsed", result.Elapsed.String()},
		{"Budget", result.Budget.String()},
		{"Exceeded", result.Outcome()},
	})
	t.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetRowLine(false)
	return t
}

func writeTitle(w io.Writer, title string) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(titleColor)
	fmt.Fprintln(w, style.Render(title))
}
