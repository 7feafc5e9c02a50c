package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rkanban/tui"
	"rkanban/tui/style"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal user interface",
	Long: `Launch the interactive board.

Tasks are moved by grabbing them and carrying them to another list. While a
task is grabbed, moves are shown locally only; the server hears about the move
once, when the task is dropped.

Keyboard shortcuts (configurable under keybindings):
  ←/h, →/l   - Focus list left/right (carry the task while grabbed)
  ↑/k, ↓/j   - Focus task above/below
  m/space    - Grab the focused task
  enter      - Drop the grabbed task
  esc        - Put the grabbed task back
  a / A      - Add task / add list
  e / r      - Edit task / rename list
  d          - Delete task or list
  R          - Refetch the board
  q/Ctrl+C   - Quit

Examples:
  rkanban tui
  rkanban`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		style.InitStyles(cfg)
		tui.InitKeybindings(cfg)

		if container.Session.Authenticated() {
			if _, err := container.CachedBoardUseCase.Restore(); err != nil {
				log.WithError(err).Warn("failed to restore board cache")
			}
		}

		changes, unsubscribe := container.Store.Subscribe()
		defer unsubscribe()

		tokens := make(chan string, 1)
		err := container.Session.Follow(ctx, func(token string) {
			select {
			case tokens <- token:
			default:
			}
		})
		if err != nil {
			log.WithError(err).Warn("not watching the token file")
		}

		m := tui.NewModel(ctx, container, changes, tokens)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		if state := container.DragController.State(); state.ActiveTaskID != "" {
			container.DragController.Cancel()
		}
		if container.Session.Authenticated() {
			if err := container.CachedBoardUseCase.Persist(); err != nil {
				log.WithError(err).Warn("failed to update board cache")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
