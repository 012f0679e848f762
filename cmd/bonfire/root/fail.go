package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

func newFailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail <type> <id>",
		Short: "Record a task failure (HP loss, no reward)",
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

			res, err := eng.FailTask(ctx, t, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to fail."))
				return nil
			}

			fmt.Fprintf(out, "%s %s  %s\n",
				ui.Bad.Render("Failed"),
				res.Title,
				ui.Bad.Render(fmt.Sprintf("-%d HP", res.HPLost)))
			if res.InstantDeath {
				fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" A critical habit broke. Instant death."))
			}
			if res.Downed {
				fmt.Fprintf(out, "%s  %s\n", ui.BadgeDowned,
					ui.Muted.Render(fmt.Sprintf("%d souls scattered. Run `bonfire revive` to get back up.", res.SoulsLost)))
			}
			return nil
		},
	}

	return cmd
}
