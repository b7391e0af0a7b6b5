package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/rastro/internal/platform/config"
	"github.com/jsamuelsen/rastro/internal/units"
)

// printer writes command output honouring the console settings.
type printer struct {
	w       io.Writer
	console config.ConsoleConfig
	value   lipgloss.Style
	label   lipgloss.Style
	faint   lipgloss.Style
}

func newPrinter(w io.Writer, console config.ConsoleConfig) *printer {
	r := lipgloss.NewRenderer(w)

	p := &printer{
		w:       w,
		console: console,
		value:   r.NewStyle(),
		label:   r.NewStyle(),
		faint:   r.NewStyle(),
	}

	if console.UseColor {
		p.value = r.NewStyle().Bold(true)
		p.label = r.NewStyle().Foreground(lipgloss.Color("63"))
		p.faint = r.NewStyle().Faint(true)
	}

	return p
}

// quantity renders q with prec significant digits.
func (p *printer) quantity(q units.Quantity, prec int) string {
	v := p.value.Render(strconv.FormatFloat(q.Value, 'g', prec, 64))

	u := p.unit(q.Unit.String())
	if u == "" {
		return v
	}

	return v + " " + u
}

// unit renders a unit expression, with superscript powers when unicode
// output is on.
func (p *printer) unit(expr string) string {
	if !p.console.UnicodeOutput {
		return expr
	}

	return superscript(expr)
}

// field renders "label: value".
func (p *printer) field(label, value string) string {
	return p.label.Render(label+":") + " " + value
}

// lines writes each line of text, cut to console.max_width, stopping after
// console.max_lines with a note of how many lines were left out.
func (p *printer) lines(text string) error {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	all := strings.Split(text, "\n")

	shown := all
	if p.console.MaxLines >= 0 && len(all) > p.console.MaxLines {
		shown = all[:p.console.MaxLines]
	}

	for _, line := range shown {
		if p.console.MaxWidth > 0 {
			line = lipgloss.NewStyle().MaxWidth(p.console.MaxWidth).Render(line)
		}

		if _, err := io.WriteString(p.w, line+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if hidden := len(all) - len(shown); hidden > 0 {
		if _, err := fmt.Fprintln(p.w, p.faint.Render(fmt.Sprintf("... %d more", hidden))); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

// superscript turns the powers in a unit expression into superscripts:
// "m3 / (kg s2)" becomes "m³ / (kg s²)" and "s-1" becomes "s⁻¹". Digits
// that do not follow a symbol are left alone.
func superscript(expr string) string {
	var (
		b     strings.Builder
		prev  rune
		power bool
	)

	runes := []rune(expr)

	for i, r := range runes {
		switch {
		case r == '-' && i+1 < len(runes) && isDigit(runes[i+1]) && isSymbolRune(prev):
			power = true
		case isDigit(r) && (power || isSymbolRune(prev)):
			power = true
		default:
			power = false
		}

		if power {
			b.WriteRune(superscripts[r])
		} else {
			b.WriteRune(r)
		}

		prev = r
	}

	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbolRune(r rune) bool {
	return r == ')' || (r > '9' && r != '^')
}
