package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rkanban/internal/application/dto"
	"rkanban/internal/application/status"
)

// Printer provides methods for formatted console output
type Printer struct {
	writer io.Writer
	quiet  bool
	styles *Styles
}

// Styles holds lipgloss styles for console output
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Bold    lipgloss.Style
}

// NewPrinter creates a new console printer
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
		styles: &Styles{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Underline(true),
			Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Bold:    lipgloss.NewStyle().Bold(true),
		},
	}
}

// DefaultPrinter returns a printer that writes to stdout
func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout)
}

// SetQuiet suppresses Info and Subtle output
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

func (p *Printer) line(style lipgloss.Style, prefix, format string, args ...any) {
	fmt.Fprintln(p.writer, style.Render(prefix+fmt.Sprintf(format, args...)))
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	p.line(p.styles.Success, "✓ ", format, args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	p.line(p.styles.Error, "✗ ", format, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.styles.Warning, "⚠ ", format, args...)
}

// Info prints an info message
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(p.styles.Info, "ℹ ", format, args...)
}

// Header prints a header message
func (p *Printer) Header(format string, args ...any) {
	p.line(p.styles.Header, "", format, args...)
}

// Subtle prints a dimmed message
func (p *Printer) Subtle(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(p.styles.Subtle, "", format, args...)
}

// Println prints a normal message
func (p *Printer) Println(format string, args ...any) {
	fmt.Fprintln(p.writer, fmt.Sprintf(format, args...))
}

// Notice prints a tracker notice
func (p *Printer) Notice(n status.Notice) {
	if n.Level == status.LevelError {
		p.Warning("%s: %s", n.Op, n.Message)
		return
	}
	p.Info("%s", n.Message)
}

// Task prints a task card
func (p *Printer) Task(task dto.TaskDTO, listTitle string) {
	p.Header("%s", task.Title)
	p.Println("ID:          %s", task.ID)
	p.Println("List:        %s", listTitle)
	p.Println("Priority:    %s", task.Priority)
	if task.DueDate != "" {
		due := task.DueDate
		if task.IsOverdue {
			due += " " + p.styles.Error.Render("(overdue)")
		}
		p.Println("Due:         %s", due)
	}
	if task.Description != "" {
		fmt.Fprintln(p.writer)
		p.Println("%s", task.Description)
	}
}

// Board prints every list with its tasks
func (p *Printer) Board(board dto.BoardDTO) {
	if len(board.Lists) == 0 {
		p.Info("The board has no lists yet")
		return
	}
	for i, l := range board.Lists {
		if i > 0 {
			fmt.Fprintln(p.writer)
		}
		p.Header("%s (%d)", l.Title, len(l.Tasks))
		p.Subtle("%s", l.ID)
		p.Tasks(l.Tasks)
	}
}

// Tasks prints one line per task
func (p *Printer) Tasks(tasks []dto.TaskDTO) {
	if len(tasks) == 0 {
		p.Subtle("  (empty)")
		return
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := t.DueDate
		if t.IsOverdue {
			due += "!"
		}
		rows = append(rows, []string{priorityIcon(t.Priority), t.ID, t.Title, due})
	}
	p.Table([]string{"", "ID", "TITLE", "DUE"}, rows)
}

// IDs prints "id<TAB>title" lines
func (p *Printer) IDs(tasks []dto.TaskDTO) {
	for _, t := range tasks {
		fmt.Fprintf(p.writer, "%s\t%s\n", t.ID, t.Title)
	}
}

// Table prints a simple table
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	render := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, len(headers))
		for i := range headers {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			cell = padRight(cell, widths[i])
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		return "  " + strings.Join(parts, "  ")
	}

	fmt.Fprintln(p.writer, render(headers, &p.styles.Bold))
	for _, row := range rows {
		fmt.Fprintln(p.writer, render(row, nil))
	}
}

func priorityIcon(priority string) string {
	switch priority {
	case "high":
		return "▲"
	case "medium":
		return "●"
	default:
		return "○"
	}
}

// padRight pads a string to the right
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
