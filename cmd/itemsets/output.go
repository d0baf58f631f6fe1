package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/itemsets/fpgrowth"
)

// writers maps every --output-format value to its encoder.
var writers = map[string]func(io.Writer, *fpgrowth.Result) error{
	"json":  writeJSON,
	"yaml":  writeYAML,
	"table": writeTable,
}

func writeJSON(w io.Writer, res *fpgrowth.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writeYAML(w io.Writer, res *fpgrowth.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	supportStyle = lipgloss.NewStyle().Width(9).Align(lipgloss.Right)
	countStyle   = lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Foreground(lipgloss.Color("240"))
	itemsStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

// writeTable prints the itemsets sorted by support, one per line.
func writeTable(w io.Writer, res *fpgrowth.Result) error {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		supportStyle.Inherit(headerStyle).Render("SUPPORT"),
		countStyle.Inherit(headerStyle).Render("COUNT"),
		itemsStyle.Inherit(headerStyle).Render("ITEMSET"),
	)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, s := range res.Sorted() {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			supportStyle.Render(strconv.FormatFloat(s.Support, 'f', 4, 64)),
			countStyle.Render(strconv.Itoa(s.Count)),
			itemsStyle.Render(itemsetText(s)),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d itemsets over %d transactions (min count %d)\n", res.Len(), res.Transactions, res.MinCount)
	return err
}

func itemsetText(s fpgrowth.Itemset) string {
	if s.Labels != nil {
		return "{" + strings.Join(s.Labels, ", ") + "}"
	}
	ids := make([]string, len(s.Items))
	for i, it := range s.Items {
		ids[i] = strconv.Itoa(it)
	}
	return "{" + strings.Join(ids, ", ") + "}"
}
