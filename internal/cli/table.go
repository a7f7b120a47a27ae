package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/opencode-ai/atlas/internal/tui/styles"
)

const tablePadding = 2

// table aligns columns by display width, so cells may carry ANSI styling.
type table struct {
	headers []string
	rows    [][]string
	header  lipgloss.Style
}

func newTable(headers ...string) *table {
	return &table{headers: headers, header: lipgloss.NewStyle()}
}

func (t *table) headerStyle(style lipgloss.Style) *table {
	t.header = style
	return t
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(out io.Writer) error {
	widths := make([]int, len(t.headers))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i, cell := range cells {
			text := cell
			if style != nil {
				text = style.Render(cell)
			}
			b.WriteString(text)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tablePadding))
			}
		}
		b.WriteByte('\n')
	}

	if len(t.headers) > 0 {
		writeRow(t.headers, &t.header)
	}
	for _, row := range t.rows {
		writeRow(row, nil)
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// tableStyles returns theme styles for terminal output and plain styles
// otherwise, so piped output carries no escape codes.
func tableStyles(out io.Writer, active styles.Theme) (header lipgloss.Style, accent func(styles.Theme) lipgloss.Style) {
	plain := func(styles.Theme) lipgloss.Style { return lipgloss.NewStyle() }
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return lipgloss.NewStyle(), plain
	}
	return styles.BuildStyles(active).Title, func(t styles.Theme) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tokens.Primary))
	}
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
