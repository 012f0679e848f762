package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <type> <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("type and id are required")
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

			res, err := eng.CompleteTask(ctx, t, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to complete."))
				return nil
			}
			if res.Blocked {
				fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconWarn+" Checklist incomplete:"), res.Title)
				fmt.Fprintln(out, ui.Muted.Render("Check the remaining items with `bonfire check`."))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s  %s  %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				res.Title,
				ui.Muted.Render(fmt.Sprintf("(%s)", res.Category)),
				ui.Gold.Render(fmt.Sprintf("+%d souls", res.SoulsEarned)),
				ui.Key.Render(fmt.Sprintf("+%d XP", res.XPEarned)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s Level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			if res.Removed {
				fmt.Fprintln(out, ui.Muted.Render("To-do cleared from the list."))
			}
			return nil
		},
	}

	return cmd
}
