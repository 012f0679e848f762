package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [type]",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := eng.Snapshot()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				t, err := taskTypeArg(args[0])
				if err != nil {
					return err
				}
				printTaskSection(out, t, tasksOf(st, t))
				return nil
			}

			printTaskSection(out, engine.TaskHabit, st.Habits)
			printTaskSection(out, engine.TaskDaily, st.Dailies)
			printTaskSection(out, engine.TaskTodo, st.Todos)
			return nil
		},
	}

	return cmd
}

func tasksOf(st *engine.State, t engine.TaskType) []engine.Task {
	switch t {
	case engine.TaskHabit:
		return st.Habits
	case engine.TaskDaily:
		return st.Dailies
	default:
		return st.Todos
	}
}

func sectionName(t engine.TaskType) string {
	switch t {
	case engine.TaskHabit:
		return "Habits"
	case engine.TaskDaily:
		return "Dailies"
	default:
		return "To-dos"
	}
}

func printTaskSection(out io.Writer, t engine.TaskType, tasks []engine.Task) {
	fmt.Fprintln(out, ui.Heading(ui.TaskIcon(string(t)), sectionName(t)))
	if len(tasks) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("  (none)"))
		return
	}
	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = ui.IconDone
		}
		line := fmt.Sprintf("  %s %s  %s", mark, ui.Key.Render(task.ID), task.Title)
		if task.IsCritical {
			line += " " + ui.Bad.Render("[critical]")
		}
		fmt.Fprintln(out, line)

		detail := fmt.Sprintf("      %s %s  %s %d  %s %d  stake %d",
			ui.Muted.Render(string(task.Category)), ui.Muted.Render("· "+string(task.Tier)),
			ui.IconSouls, task.BaseSouls, ui.IconXP, task.BaseXP, task.HPStake)
		fmt.Fprintln(out, ui.Muted.Render(detail))

		for _, item := range task.Checklist {
			check := "[ ]"
			if item.Completed {
				check = "[x]"
			}
			fmt.Fprintf(out, "      %s %s %s\n", check, ui.Muted.Render(item.ID), item.Text)
		}
	}
}
