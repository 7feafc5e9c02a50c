package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"rkanban/cmd/rkanban/output"
	"rkanban/internal/application/dto"
	"rkanban/internal/application/usecase/drag"
	"rkanban/internal/application/usecase/task"
	"rkanban/internal/domain/valueobject"
	"rkanban/internal/infrastructure/serialization"
)

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `Create, edit, move and delete tasks.

Lists are referenced by ID or by title (case-insensitive).

Examples:
  # List all tasks
  rkanban task list

  # Create a task in the Todo list
  rkanban task create --title "Write docs" --list Todo --due 2025-06-30

  # Write a task in $EDITOR
  rkanban task create --edit --list Todo

  # Move a task to another list
  rkanban task move 64f1c2 Done

  # Delete the first overdue task
  rkanban task list --overdue -o ids | rkanban task delete`,
}

// taskListCmd lists tasks
var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in board order, optionally filtered.

Examples:
  # Tasks of one list
  rkanban task list --list Doing

  # High priority tasks, soonest due first
  rkanban task list --priority high --sort due

  # Overdue tasks as "id<TAB>title" lines
  rkanban task list --overdue -o ids`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}

		var filter task.ListTasksFilter
		listRef, _ := cmd.Flags().GetString("list")
		if listRef != "" {
			l, err := resolveList(listRef)
			if err != nil {
				return err
			}
			filter.ListID = l.ID()
		}
		if p, _ := cmd.Flags().GetString("priority"); p != "" {
			priority, err := container.Validation.ValidatePriority(p)
			if err != nil {
				return err
			}
			filter.Priority = priority
		}
		filter.OverdueOnly, _ = cmd.Flags().GetBool("overdue")
		sortBy, _ := cmd.Flags().GetString("sort")
		switch sortBy {
		case "", "board":
		case "due":
			filter.ByDueDate = true
		default:
			return fmt.Errorf("invalid sort '%s': must be one of: board, due", sortBy)
		}

		tasks, err := container.ListTasksUseCase.Execute(filter)
		if err != nil {
			return err
		}

		switch {
		case formatter.Structured():
			return formatter.Print(tasks)
		case formatter.Format() == output.FormatIDs:
			printer.IDs(tasks)
		default:
			if len(tasks) == 0 {
				printer.Info("No tasks found")
				return nil
			}
			printer.Tasks(tasks)
			printer.Info("Total: %d tasks", len(tasks))
		}
		return nil
	},
}

// taskShowCmd prints one task
var taskShowCmd = &cobra.Command{
	Use:     "show [task-id]",
	Aliases: []string{"get"},
	Short:   "Show task details",
	Long: `Show a task. Use --markdown for the document format that
'task create --edit' reads.

Examples:
  rkanban task show 64f1c2
  rkanban task show 64f1c2 --output json`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		found, err := container.FindTaskUseCase.Execute(resolved[0])
		if err != nil {
			return err
		}

		markdown, _ := cmd.Flags().GetBool("markdown")
		switch {
		case markdown:
			form, err := container.FindTaskUseCase.Form(found.ID)
			if err != nil {
				return err
			}
			doc, err := serialization.RenderTaskDocument(form)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(doc)
			return err
		case formatter.Structured():
			return formatter.Print(found)
		default:
			l, _ := resolveList(found.ListID)
			printer.Task(found, l.Title())
			return nil
		}
	},
}

// taskCreateCmd creates a task
var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	Long: `Create a task in a list.

With --edit the task is written in $EDITOR as markdown: the first "# " heading
is the title, the rest the description. Optional YAML frontmatter may set
list, priority and due.

Examples:
  rkanban task create --title "Fix login bug" --list Todo --priority high
  rkanban task create --edit --list Todo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		form, err := formFromFlags(cmd, dto.TaskForm{Priority: valueobject.DefaultPriority.String()})
		if err != nil {
			return err
		}
		if edit, _ := cmd.Flags().GetBool("edit"); edit {
			if form, err = editForm(form); err != nil {
				return err
			}
		}
		if form.ListID == "" {
			return fmt.Errorf("a list is required: pass --list")
		}
		return submit(cmd.Context(), form, "Created")
	},
}

// taskEditCmd updates a task
var taskEditCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task",
	Long: `Edit a task. Only the flags given are changed. Passing --list moves the
task to that list as part of the edit.

Examples:
  rkanban task edit 64f1c2 --priority high --due 2025-07-01
  rkanban task edit 64f1c2 --list Done
  rkanban task edit 64f1c2 --edit`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		current, err := container.FindTaskUseCase.Form(resolved[0])
		if err != nil {
			return err
		}
		form, err := formFromFlags(cmd, current)
		if err != nil {
			return err
		}
		if edit, _ := cmd.Flags().GetBool("edit"); edit {
			if form, err = editForm(form); err != nil {
				return err
			}
			form.ID = current.ID
		}
		return submit(cmd.Context(), form, "Updated")
	},
}

// taskMoveCmd moves a task to another list
var taskMoveCmd = &cobra.Command{
	Use:   "move <task-id> <list>",
	Short: "Move a task to another list",
	Long: `Move a task to another list. The move is shown locally at once and sent to
the server as a single request; if the server rejects it the board is fetched
again.

Examples:
  rkanban task move 64f1c2 Done`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		dest, err := resolveList(args[1])
		if err != nil {
			return err
		}

		controller := container.DragController
		if err := controller.Start(args[0]); err != nil {
			return err
		}
		controller.Over(dest.ID())
		result := controller.End(cmd.Context(), dest.ID())

		switch result.Outcome {
		case drag.OutcomeCommitted:
			printer.Success("Moved %s to %s", result.TaskID, dest.Title())
		case drag.OutcomeNone, drag.OutcomeReverted:
			printer.Info("Task %s is already in %s", result.TaskID, dest.Title())
		case drag.OutcomeReconciled:
			printNotices()
			return fmt.Errorf("move rejected: %w", result.Err)
		}
		return nil
	},
}

// taskDeleteCmd deletes a task
var taskDeleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveArgs(args, 1)
		if err != nil {
			return err
		}
		if err := loadBoard(cmd.Context()); err != nil {
			return err
		}
		found, err := container.FindTaskUseCase.Execute(resolved[0])
		if err != nil {
			return err
		}
		if err := container.DeleteTaskUseCase.Execute(cmd.Context(), found.ID); err != nil {
			printNotices()
			return err
		}
		printer.Success("Deleted task %s (%s)", found.Title, found.ID)
		return nil
	},
}

// formFromFlags overlays the flags that were set on base
func formFromFlags(cmd *cobra.Command, base dto.TaskForm) (dto.TaskForm, error) {
	flags := cmd.Flags()
	form := base
	if flags.Changed("title") {
		form.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		form.Description, _ = flags.GetString("description")
	}
	if flags.Changed("due") {
		form.DueDate, _ = flags.GetString("due")
	}
	if flags.Changed("priority") {
		form.Priority, _ = flags.GetString("priority")
	}
	if flags.Changed("list") {
		ref, _ := flags.GetString("list")
		l, err := resolveList(ref)
		if err != nil {
			return dto.TaskForm{}, err
		}
		form.ListID = l.ID()
	}
	return form, nil
}

// editForm opens the form as a markdown document in $EDITOR
func editForm(form dto.TaskForm) (dto.TaskForm, error) {
	doc, err := serialization.RenderTaskDocument(form)
	if err != nil {
		return dto.TaskForm{}, err
	}

	tmpFile, err := os.CreateTemp("", "rkanban-task-*.md")
	if err != nil {
		return dto.TaskForm{}, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)
	if _, err := tmpFile.Write(doc); err != nil {
		tmpFile.Close()
		return dto.TaskForm{}, fmt.Errorf("failed to write temporary file: %w", err)
	}
	tmpFile.Close()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	editorCmd := exec.Command(editor, tmpPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return dto.TaskForm{}, fmt.Errorf("failed to run editor: %w", err)
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return dto.TaskForm{}, fmt.Errorf("failed to read temporary file: %w", err)
	}
	edited, err := serialization.ParseTaskDocument(content)
	if err != nil {
		return dto.TaskForm{}, err
	}
	if edited.ListID != "" {
		l, err := resolveList(edited.ListID)
		if err != nil {
			return dto.TaskForm{}, err
		}
		edited.ListID = l.ID()
	}
	return edited, nil
}

func submit(ctx context.Context, form dto.TaskForm, verb string) error {
	saved, err := container.SubmitTaskUseCase.Execute(ctx, form)
	if err != nil {
		printNotices()
		return err
	}
	if formatter.Structured() {
		return formatter.Print(saved)
	}
	l, _ := resolveList(saved.ListID)
	printer.Success("%s task %s (%s) in %s", verb, saved.Title, saved.ID, l.Title())
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{taskCreateCmd, taskEditCmd} {
		cmd.Flags().String("title", "", "Task title")
		cmd.Flags().StringP("description", "d", "", "Task description")
		cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
		cmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high")
		cmd.Flags().StringP("list", "l", "", "List ID or title")
		cmd.Flags().BoolP("edit", "e", false, "Write the task in $EDITOR")
	}

	taskListCmd.Flags().StringP("list", "l", "", "Only tasks of this list")
	taskListCmd.Flags().StringP("priority", "p", "", "Only tasks with this priority")
	taskListCmd.Flags().Bool("overdue", false, "Only overdue tasks")
	taskListCmd.Flags().String("sort", "board", "Order: board, due")

	taskShowCmd.Flags().Bool("markdown", false, "Print as a markdown task document")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
