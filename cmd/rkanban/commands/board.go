package commands

import (
	"github.com/spf13/cobra"

	"rkanban/cmd/rkanban/output"
	"rkanban/internal/application/dto"
)

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect the board",
	Long: `Inspect the board stored on the server.

Examples:
  # Show every list with its tasks
  rkanban board show

  # Dump the board as JSON
  rkanban board show --output json`,
}

// boardShowCmd fetches and prints the board
var boardShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"get"},
	Short:   "Show the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		board := container.GetBoardUseCase.Execute()

		switch {
		case formatter.Structured():
			return formatter.Print(board)
		case formatter.Format() == output.FormatIDs:
			for _, l := range board.Lists {
				printer.IDs(l.Tasks)
			}
			return nil
		default:
			printer.Board(board)
			printer.Subtle("%d lists, %d tasks", len(board.Lists), countTasks(board))
			return nil
		}
	},
}

func countTasks(board dto.BoardDTO) int {
	n := 0
	for _, l := range board.Lists {
		n += len(l.Tasks)
	}
	return n
}

func init() {
	boardCmd.AddCommand(boardShowCmd)
	rootCmd.AddCommand(boardCmd)
}
