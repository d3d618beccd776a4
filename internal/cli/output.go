package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"llmcalc/pkg/types"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	case "yml":
		return formatYAML, nil
	case "":
		return formatText, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want text|json|yaml)", s)
}

// writeOutput encodes v as JSON or YAML, or hands it to text for tables.
func writeOutput[T any](w io.Writer, output string, v T, text func(io.Writer, T)) error {
	f, err := parseFormat(output)
	if err != nil {
		return err
	}
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	text(w, v)
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if header != nil {
		table.SetHeader(header)
	}
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	return table
}

// gb formats a gigabyte quantity with one decimal and thousands separators.
func gb(v float64) string { return humanize.FormatFloat("#,###.#", v) + " GB" }

func renderEstimate(w io.Writer, e types.EstimateResponse) {
	in := e.Input
	kv := "off"
	if in.UseKVCache {
		kv = in.KVCacheQuant
	}
	table := newTable(w, nil)
	if e.ModelID != "" {
		table.Append([]string{"Model", e.ModelID})
	}
	table.AppendBulk([][]string{
		{"Parameters", humanize.Ftoa(in.ParamsBillions) + "B"},
		{"Quantization", in.ModelQuant},
		{"Context", humanize.Comma(int64(in.ContextLength)) + " tokens"},
		{"KV cache", kv},
		{"Memory mode", in.MemoryMode},
		{"", ""},
		{"Model weights", gb(e.Breakdown.ModelMemGB)},
		{"KV cache", gb(e.Breakdown.KVCacheGB)},
		{"Required VRAM", gb(e.Recommendation.VRAMNeededGB)},
		{"On-disk size", gb(e.OnDiskSizeGB)},
		{"Recommendation", e.Recommendation.GPUType},
		{"GPUs required", strconv.Itoa(e.Recommendation.GPUsRequired)},
		{"System RAM", gb(e.Recommendation.SystemRAMNeededGB)},
	})
	table.Render()
}

func renderCompare(w io.Writer, c types.CompareResponse) {
	table := newTable(w, []string{"Quant", "VRAM", "Disk", "GPUs", "System RAM", "Recommendation"})
	for _, e := range c.Estimates {
		table.Append([]string{
			e.Input.ModelQuant,
			gb(e.Recommendation.VRAMNeededGB),
			gb(e.OnDiskSizeGB),
			strconv.Itoa(e.Recommendation.GPUsRequired),
			gb(e.Recommendation.SystemRAMNeededGB),
			e.Recommendation.GPUType,
		})
	}
	table.Render()
}

func renderQuants(w io.Writer, q types.QuantizationsResponse) {
	table := newTable(w, []string{"Name", "Model factor", "KV factor", "Bits per param"})
	for _, qi := range q.Quantizations {
		kv := "-"
		if qi.KVFactor > 0 {
			kv = humanize.Ftoa(qi.KVFactor)
		}
		table.Append([]string{qi.Name, humanize.Ftoa(qi.ModelFactor), kv, humanize.Ftoa(qi.BitsPerParam)})
	}
	table.Render()
}

func renderModels(w io.Writer, m types.ModelsResponse) {
	if len(m.Models) == 0 {
		fmt.Fprintln(w, "no models found")
		return
	}
	table := newTable(w, []string{"ID", "Family", "Params", "Quant", "Size"})
	for _, mdl := range m.Models {
		params := "?"
		if mdl.ParamsBillions > 0 {
			params = humanize.FormatFloat("#.##", mdl.ParamsBillions) + "B"
		}
		table.Append([]string{mdl.ID, mdl.Family, params, mdl.Quant, humanize.Bytes(uint64(mdl.SizeBytes))})
	}
	table.Render()
}
