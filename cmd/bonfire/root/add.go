package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newAddCmd() *cobra.Command {
	var taskType string
	var category string
	var tier string
	var critical bool
	var notes string
	var due string
	var frequency string
	var checklist []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit, daily or to-do",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := taskTypeArg(taskType)
			if err != nil {
				return err
			}

			in := engine.AddTaskInput{
				Type:       t,
				Title:      args[0],
				Notes:      notes,
				Category:   engine.ParseCategory(category),
				Tier:       engine.Tier(tier),
				IsCritical: critical,
				Frequency:  frequency,
				Checklist:  checklist,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date (want YYYY-MM-DD): %w", err)
				}
				in.DueDate = &d
			}

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := eng.AddTask(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render("Added"),
				ui.TaskIcon(string(task.Type)),
				task.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %s, id %s)", task.Type, task.Category, task.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "todo", "Task type (habit|daily|todo)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (productivity|sports|fitness|self_care|creativity|social)")
	cmd.Flags().StringVar(&tier, "tier", "C", "Difficulty tier (S|A|B|C)")
	cmd.Flags().BoolVar(&critical, "critical", false, "Critical habit: failing it means instant death")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes")
	cmd.Flags().StringVar(&due, "due", "", "Due date for to-dos (YYYY-MM-DD)")
	cmd.Flags().StringVar(&frequency, "every", "", "Frequency label for dailies (e.g. daily, weekdays)")
	cmd.Flags().StringArrayVar(&checklist, "check", nil, "Checklist item (repeatable)")

	return cmd
}
