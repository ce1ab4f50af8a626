package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/digitsplit/internal/config"
	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
	"github.com/AntonioJCosta/digitsplit/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// YAML documents written by the yaml output format.
type digitsDoc struct {
	Number int64          `yaml:"number"`
	Digits []digits.Digit `yaml:"digits,flow"`
}

type frequencyDoc struct {
	Number    int64                `yaml:"number"`
	Frequency map[digits.Digit]int `yaml:"frequency"`
}

type aggregateDoc struct {
	Numbers   int                  `yaml:"numbers"`
	Digits    int                  `yaml:"digits"`
	Frequency map[digits.Digit]int `yaml:"frequency"`
}

type batchDoc struct {
	Source    string       `yaml:"source,omitempty"`
	Results   []digitsDoc  `yaml:"results"`
	Aggregate aggregateDoc `yaml:"aggregate"`
}

func renderDigits(w io.Writer, format string, decompositions []digits.Decomposition) error {
	switch format {
	case config.FormatYAML:
		return writeYAML(w, toDigitsDocs(decompositions))
	case config.FormatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Number", "Digits", "Length"})
		table.SetBorder(true)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		for _, d := range decompositions {
			table.Append([]string{formatNumber(d.Number()), formatDigits(d.Digits()), strconv.Itoa(d.Len())})
		}
		table.Render()
		return nil
	default:
		for _, d := range decompositions {
			fmt.Fprintf(w, "%s -> %s\n", ui.NumberColor(formatNumber(d.Number())), ui.DigitsColor(formatDigits(d.Digits())))
		}
		return nil
	}
}

func renderFrequencies(w io.Writer, format string, decompositions []digits.Decomposition) error {
	switch format {
	case config.FormatYAML:
		docs := make([]frequencyDoc, 0, len(decompositions))
		for _, d := range decompositions {
			docs = append(docs, frequencyDoc{Number: d.Number(), Frequency: d.Frequency().Map()})
		}
		return writeYAML(w, docs)
	case config.FormatTable:
		table := newFrequencyTable(w, "Number")
		for _, d := range decompositions {
			table.Append(frequencyRow(formatNumber(d.Number()), d.Frequency()))
		}
		table.Render()
		return nil
	default:
		for _, d := range decompositions {
			fmt.Fprintf(w, "%s: %s\n", ui.NumberColor(formatNumber(d.Number())), formatFrequency(d.Frequency()))
		}
		return nil
	}
}

func renderAggregate(w io.Writer, format string, result ports.BatchResult) error {
	switch format {
	case config.FormatYAML:
		return writeYAML(w, toAggregateDoc(result))
	case config.FormatTable:
		table := newFrequencyTable(w, "Numbers")
		table.Append(frequencyRow(strconv.Itoa(len(result.Decompositions)), result.Aggregate))
		table.Render()
		return nil
	default:
		fmt.Fprintf(w, "%s: %s\n", ui.NumberColor(fmt.Sprintf("%d number(s)", len(result.Decompositions))), formatFrequency(result.Aggregate))
		if result.Aggregate.Total() > 0 {
			d, c := result.Aggregate.MostCommon()
			fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Most common digit: %d (%d of %d)", d, c, result.Aggregate.Total())))
		}
		return nil
	}
}

func renderBatchYAML(w io.Writer, result ports.BatchResult) error {
	return writeYAML(w, batchDoc{
		Source:    result.SourceDetails,
		Results:   toDigitsDocs(result.Decompositions),
		Aggregate: toAggregateDoc(result),
	})
}

func toDigitsDocs(decompositions []digits.Decomposition) []digitsDoc {
	docs := make([]digitsDoc, 0, len(decompositions))
	for _, d := range decompositions {
		docs = append(docs, digitsDoc{Number: d.Number(), Digits: d.Digits()})
	}
	return docs
}

func toAggregateDoc(result ports.BatchResult) aggregateDoc {
	return aggregateDoc{
		Numbers:   len(result.Decompositions),
		Digits:    result.Aggregate.Total(),
		Frequency: result.Aggregate.Map(),
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml output: %w", err)
	}
	return enc.Close()
}

// newFrequencyTable returns a table with a label column, one column per digit and a total.
func newFrequencyTable(w io.Writer, label string) *tablewriter.Table {
	header := []string{label}
	alignment := []int{tablewriter.ALIGN_RIGHT}
	for d := 0; d < digits.Base; d++ {
		header = append(header, strconv.Itoa(d))
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}
	header = append(header, "Total")
	alignment = append(alignment, tablewriter.ALIGN_RIGHT)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment(alignment)
	return table
}

func frequencyRow(label string, f digits.Frequency) []string {
	row := make([]string, 0, digits.Base+2)
	row = append(row, label)
	for _, c := range f {
		row = append(row, strconv.Itoa(c))
	}
	return append(row, strconv.Itoa(f.Total()))
}

func formatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatDigits(seq []digits.Digit) string {
	return fmt.Sprint(seq)
}

// formatFrequency renders "0:1 1:0 ..." with absent digits dimmed.
func formatFrequency(f digits.Frequency) string {
	parts := make([]string, 0, digits.Base)
	for d, c := range f {
		pair := fmt.Sprintf("%d:%d", d, c)
		if c == 0 {
			parts = append(parts, ui.ZeroCountColor(pair))
		} else {
			parts = append(parts, ui.CountColor(pair))
		}
	}
	return strings.Join(parts, " ")
}
