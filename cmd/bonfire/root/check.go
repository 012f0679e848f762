package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <type> <task-id> <item-id>",
		Short: "Toggle a checklist item (checking the last one completes the task)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("type, task id and item id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := taskTypeArg(args[0])
			if err != nil {
				return err
			}

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := eng.ToggleChecklistItem(ctx, t, args[1], args[2])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("No such task or checklist item."))
				return nil
			}
			if res.Completed {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Item checked."))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Item unchecked."))
			}
			if ac := res.AutoCompleted; ac != nil && !ac.Blocked {
				fmt.Fprintf(out, "%s %s  %s  %s\n",
					ui.Good.Render("Checklist done, task completed:"),
					ac.Title,
					ui.Gold.Render(fmt.Sprintf("+%d souls", ac.SoulsEarned)),
					ui.Key.Render(fmt.Sprintf("+%d XP", ac.XPEarned)))
				if ac.LevelUp {
					fmt.Fprintf(out, "%s Level %d → %d\n", ui.BadgeLevelUp, ac.LevelBefore, ac.LevelAfter)
				}
			}
			return nil
		},
	}

	return cmd
}
