package style

import (
	"github.com/charmbracelet/lipgloss"

	"rkanban/internal/domain/valueobject"
	"rkanban/internal/infrastructure/config"
)

var (
	ListStyle         lipgloss.Style
	FocusedListStyle  lipgloss.Style
	DropTargetStyle   lipgloss.Style
	ListTitleStyle    lipgloss.Style
	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style
	DraggedTaskStyle  lipgloss.Style
	DescriptionStyle  lipgloss.Style
	DueDateStyle      lipgloss.Style
	OverdueStyle      lipgloss.Style
	HelpStyle         lipgloss.Style
	StatusStyle       lipgloss.Style
	ErrorStyle        lipgloss.Style

	priorityColors config.PriorityColors
)

// InitStyles initializes the styles from config
func InitStyles(cfg *config.Config) {
	styles := cfg.TUI.Styles

	ListStyle = listStyle(styles.List)
	FocusedListStyle = listStyle(styles.FocusedList)
	DropTargetStyle = listStyle(styles.DropTarget)

	ListTitleStyle = textStyle(styles.ListTitle)
	TaskStyle = textStyle(styles.Task)
	SelectedTaskStyle = textStyle(styles.SelectedTask)
	DraggedTaskStyle = textStyle(styles.DraggedTask)
	DescriptionStyle = textStyle(styles.Description)
	DueDateStyle = textStyle(styles.DueDate)
	OverdueStyle = textStyle(styles.Overdue)
	StatusStyle = textStyle(styles.Status)
	ErrorStyle = textStyle(styles.Error)

	// Help only pads on top and left
	HelpStyle = lipgloss.NewStyle().
		Padding(styles.Help.PaddingVertical, 0, 0, styles.Help.PaddingHorizontal)
	if styles.Help.Foreground != "" {
		HelpStyle = HelpStyle.Foreground(lipgloss.Color(styles.Help.Foreground))
	}

	priorityColors = styles.Priority
}

// PriorityStyle returns the badge style for a priority
func PriorityStyle(p valueobject.Priority) lipgloss.Style {
	color := priorityColors.Low
	switch p {
	case valueobject.PriorityHigh:
		color = priorityColors.High
	case valueobject.PriorityMedium:
		color = priorityColors.Medium
	}
	s := lipgloss.NewStyle().Bold(true)
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	return s
}

func listStyle(cfg config.ListStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(cfg.PaddingVertical, cfg.PaddingHorizontal).
		Border(getBorder(cfg.BorderStyle)).
		BorderForeground(lipgloss.Color(cfg.BorderColor))
}

func textStyle(cfg config.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(cfg.PaddingVertical, cfg.PaddingHorizontal)
	if cfg.Foreground != "" {
		s = s.Foreground(lipgloss.Color(cfg.Foreground))
	}
	if cfg.Background != "" {
		s = s.Background(lipgloss.Color(cfg.Background))
	}
	if cfg.Bold {
		s = s.Bold(true)
	}
	if cfg.Italic {
		s = s.Italic(true)
	}
	if cfg.Align != "" {
		s = s.Align(getAlign(cfg.Align))
	}
	return s
}

// getBorder returns the border style based on the name
func getBorder(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// getAlign returns the alignment based on the name
func getAlign(name string) lipgloss.Position {
	switch name {
	case "left":
		return lipgloss.Left
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
