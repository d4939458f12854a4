package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/localnerve/marketdb/internal/config"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorBorder  = lipgloss.Color("#16858E")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorAccent)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Printer writes menus, messages and query results to the terminal
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Format string
}

// NewPrinter creates a Printer; an empty format means table output
func NewPrinter(out, errOut io.Writer, format string) *Printer {
	if format == "" {
		format = config.OutputTable
	}
	return &Printer{Out: out, Err: errOut, Format: format}
}

func (p *Printer) plain() bool {
	return p.Format == config.OutputPlain
}

// Title prints a menu heading with its underline
func (p *Printer) Title(title string) {
	if p.plain() {
		fmt.Fprintln(p.Out, title)
		fmt.Fprintln(p.Out, strings.Repeat("-", len(title)))
		return
	}
	fmt.Fprintln(p.Out, titleStyle.Render(title))
}

// Line prints one unstyled line
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Success prints a confirmation
func (p *Printer) Success(msg string) {
	p.styled(p.Out, successStyle, msg)
}

// Warning prints a rejection or notice the user caused
func (p *Printer) Warning(msg string) {
	p.styled(p.Out, warningStyle, msg)
}

// Error prints a failure to the error stream
func (p *Printer) Error(msg string) {
	p.styled(p.Err, errorStyle, msg)
}

func (p *Printer) styled(w io.Writer, style lipgloss.Style, msg string) {
	if p.plain() {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, style.Render(msg))
}

// Table prints a result set and returns the number of rows printed.
// Nothing, not even the header, is printed for an empty result.
func (p *Printer) Table(headers []string, rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	if p.plain() {
		fmt.Fprintln(p.Out, strings.Join(headers, "\t")+"\t")
		for _, row := range rows {
			fmt.Fprintln(p.Out, strings.Join(row, "\t")+"\t")
		}
		return len(rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(p.Out, t.Render())
	return len(rows)
}
