package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/palette"
)

type referenceRow struct {
	Name   string     `json:"name" yaml:"name"`
	Code   string     `json:"code" yaml:"code"`
	Hex    string     `json:"hex" yaml:"hex"`
	Weight float64    `json:"weight" yaml:"weight"`
	Lab    [3]float64 `json:"lab" yaml:"lab,flow"`
}

// Comparison holds both distances between two swatches.
type Comparison struct {
	Sample    palette.RGB
	Reference palette.RGB
	Weight    float64
	Weighted  float64 // palette.Distance
	Standard  float64 // published CIEDE2000
}

type comparisonRow struct {
	Sample    string  `json:"sample" yaml:"sample"`
	Reference string  `json:"reference" yaml:"reference"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Weighted  float64 `json:"weighted" yaml:"weighted"`
	Standard  float64 `json:"standard" yaml:"standard"`
}

// Count is the number of items labeled with a reference code.
type Count struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// RenderPalette writes the reference palette.
func RenderPalette(w io.Writer, format string, p palette.Palette) error {
	rs := make([]referenceRow, len(p))
	for i, ref := range p {
		lab := palette.ToLab(ref.RGB)
		rs[i] = referenceRow{ref.Name, ref.Code, ref.RGB.Hex(), ref.Weight, [3]float64{lab.L(), lab.A(), lab.B()}}
	}

	if format != FormatText && format != "" {
		return encode(w, format, rs)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "NAME", "CODE", "HEX", "WEIGHT", "L*", "a*", "b*")
	for i, r := range rs {
		t.Row(
			Badge(p[i].RGB, r.Code),
			r.Name,
			r.Code,
			r.Hex,
			strconv.FormatFloat(r.Weight, 'f', 1, 64),
			strconv.FormatFloat(r.Lab[0], 'f', 2, 64),
			strconv.FormatFloat(r.Lab[1], 'f', 2, 64),
			strconv.FormatFloat(r.Lab[2], 'f', 2, 64),
		)
	}

	_, e := fmt.Fprintln(w, t.String())
	return e
}

// RenderComparison writes the weighted and standard distances of c.
func RenderComparison(w io.Writer, format string, c Comparison) error {
	r := comparisonRow{c.Sample.Hex(), c.Reference.Hex(), c.Weight, c.Weighted, c.Standard}

	if format != FormatText && format != "" {
		return encode(w, format, r)
	}

	_, e := fmt.Fprintf(w, "%s -> %s\n  weighted (x%g): %.4f\n  ciede2000:      %.4f\n",
		r.Sample, r.Reference, r.Weight, r.Weighted, r.Standard)
	return e
}

// RenderSummary writes per-code counts, most frequent first.
func RenderSummary(w io.Writer, format string, counts map[string]int) error {
	names := make(map[string]string)
	for _, ref := range palette.DefaultPalette() {
		names[ref.Code] = ref.Name
	}

	cs := make([]Count, 0, len(counts))
	for code, n := range counts {
		cs = append(cs, Count{code, names[code], n})
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Count != cs[j].Count {
			return cs[i].Count > cs[j].Count
		}
		return cs[i].Code < cs[j].Code
	})

	if format != FormatText && format != "" {
		return encode(w, format, cs)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "NAME", "COUNT")
	for _, c := range cs {
		t.Row(c.Code, c.Name, strconv.Itoa(c.Count))
	}

	_, e := fmt.Fprintln(w, t.String())
	return e
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if e := enc.Encode(v); e != nil {
			return errs.New("report.render", errs.KindRender, e)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(v); e != nil {
			return errs.New("report.render", errs.KindRender, e)
		}
		if e := enc.Close(); e != nil {
			return errs.New("report.render", errs.KindRender, e)
		}
		return nil
	default:
		return errs.New("report.render", errs.KindInvalidInput, fmt.Errorf("unknown format %q", format))
	}
}
