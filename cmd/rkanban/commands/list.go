package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"lists", "l"},
	Short:   "Manage board lists",
	Long: `Create, rename and delete the lists of the board.

Lists are referenced by ID or by title (case-insensitive).

Examples:
  # Create a list
  rkanban list create "In Review"

  # Rename it
  rkanban list rename "In Review" Review

  # Delete a list together with its tasks
  rkanban list delete Review --force`,
}

// listCreateCmd creates a list
var listCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		created, err := container.CreateListUseCase.Execute(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if formatter.Structured() {
			return formatter.Print(created)
		}
		printer.Success("Created list %s (%s)", created.Title, created.ID)
		return nil
	},
}

// listRenameCmd renames a list
var listRenameCmd = &cobra.Command{
	Use:   "rename <list> <title>",
	Short: "Rename a list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		l, err := resolveList(args[0])
		if err != nil {
			return err
		}
		renamed, err := container.RenameListUseCase.Execute(cmd.Context(), l.ID(), strings.Join(args[1:], " "))
		if err != nil {
			printNotices()
			return err
		}
		if formatter.Structured() {
			return formatter.Print(renamed)
		}
		printer.Success("Renamed list %s to %s", l.Title(), renamed.Title)
		return nil
	},
}

// listDeleteCmd deletes a list and its tasks
var listDeleteCmd = &cobra.Command{
	Use:   "delete <list>",
	Short: "Delete a list and all of its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		l, err := resolveList(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if l.TaskCount() > 0 && !force {
			printer.Warning("List %s has %d task(s)", l.Title(), l.TaskCount())
			printer.Info("Use --force to delete it with its tasks")
			return nil
		}
		if err := container.DeleteListUseCase.Execute(cmd.Context(), l.ID()); err != nil {
			printNotices()
			return err
		}
		printer.Success("Deleted list %s", l.Title())
		return nil
	},
}

func init() {
	listDeleteCmd.Flags().BoolP("force", "f", false, "Delete even when the list has tasks")

	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listRenameCmd)
	listCmd.AddCommand(listDeleteCmd)
	rootCmd.AddCommand(listCmd)
}
