package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/flosch/pongo2"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/palette"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Entry is one classified swatch, ready for presentation.
type Entry struct {
	Label     string // what the user asked about: a hex string or catalog item name
	RGB       palette.RGB
	Result    palette.Result
	URL       string
	Distances []palette.Result
	Err       error
}

// Options tunes text rendering.
type Options struct {
	// Template is a pongo2 template file replacing the built-in text layout.
	Template string
}

const textTemplate = `{% for e in entries %}{% if e.error %}{{ e.label }}  error: {{ e.error }}
{% else %}{{ e.badge|safe }} {{ e.hex }}  {{ e.label }}  {{ e.name }} ({{ e.code }})  {{ e.distance|floatformat:2 }}{% if e.url %}  {{ e.url|safe }}{% endif %}
{% for d in e.distances %}    {{ d.code }}	{{ d.name }}	{{ d.distance|floatformat:2 }}
{% endfor %}{% endif %}{% endfor %}`

var builtin = pongo2.Must(pongo2.FromString(textTemplate))

type distanceRow struct {
	Name     string  `json:"name" yaml:"name"`
	Code     string  `json:"code" yaml:"code"`
	Distance float64 `json:"distance" yaml:"distance"`
}

type row struct {
	Label     string        `json:"label" yaml:"label"`
	Hex       string        `json:"hex,omitempty" yaml:"hex,omitempty"`
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Code      string        `json:"code,omitempty" yaml:"code,omitempty"`
	Distance  *float64      `json:"distance,omitempty" yaml:"distance,omitempty"`
	URL       string        `json:"url,omitempty" yaml:"url,omitempty"`
	Distances []distanceRow `json:"distances,omitempty" yaml:"distances,omitempty"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render writes entries to w in the given format.
func Render(w io.Writer, format string, entries []Entry, opts Options) error {
	if format == FormatText || format == "" {
		return renderText(w, entries, opts)
	}
	return encode(w, format, rows(entries))
}

// Badge draws a reference code on the swatch's own background, picking a
// readable foreground.
func Badge(c palette.RGB, code string) string {
	fg := "#ffffff"
	if palette.ToLab(c).L() > 60 {
		fg = "#000000"
	}

	return lipgloss.NewStyle().
		Bold(true).
		Width(4).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(c.Hex())).
		Render(code)
}

func renderText(w io.Writer, entries []Entry, opts Options) error {
	tpl := builtin
	if opts.Template != "" {
		t, e := pongo2.FromFile(opts.Template)
		if e != nil {
			return &errs.OpError{Op: "report.template", Kind: errs.KindInvalidConfig, Path: opts.Template, Err: e}
		}
		tpl = t
	}

	ctxt := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		ctxt = append(ctxt, view(e))
	}

	if e := tpl.ExecuteWriter(pongo2.Context{"entries": ctxt}, w); e != nil {
		return errs.New("report.render", errs.KindRender, e)
	}
	return nil
}

func view(e Entry) map[string]interface{} {
	if e.Err != nil {
		return map[string]interface{}{
			"label": e.Label,
			"error": e.Err.Error(),
		}
	}

	ds := make([]map[string]interface{}, len(e.Distances))
	for i, d := range e.Distances {
		ds[i] = map[string]interface{}{
			"name":     d.Reference.Name,
			"code":     d.Reference.Code,
			"distance": d.Distance,
		}
	}

	ref := e.Result.Reference
	return map[string]interface{}{
		"label":     e.Label,
		"hex":       e.RGB.Hex(),
		"name":      ref.Name,
		"code":      ref.Code,
		"distance":  e.Result.Distance,
		"url":       e.URL,
		"badge":     Badge(e.RGB, ref.Code),
		"distances": ds,
	}
}

func rows(entries []Entry) []row {
	rs := make([]row, len(entries))
	for i, e := range entries {
		if e.Err != nil {
			rs[i] = row{Label: e.Label, Error: e.Err.Error()}
			continue
		}

		dist := e.Result.Distance
		r := row{
			Label:    e.Label,
			Hex:      e.RGB.Hex(),
			Name:     e.Result.Reference.Name,
			Code:     e.Result.Reference.Code,
			Distance: &dist,
			URL:      e.URL,
		}
		for _, d := range e.Distances {
			r.Distances = append(r.Distances, distanceRow{d.Reference.Name, d.Reference.Code, d.Distance})
		}
		rs[i] = r
	}
	return rs
}
