package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

func newReviveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revive",
		Short: "Rest at the bonfire and return from death",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := eng.Revive(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("You are not downed."))
				return nil
			}
			fmt.Fprintf(out, "%s You rise again with %d HP.\n", ui.IconBonfire, res.HP)
			if res.HollowLevel > 0 {
				fmt.Fprintf(out, "%s Hollow level %d. A Human Effigy can restore you.\n",
					ui.IconHollow, res.HollowLevel)
			}
			return nil
		},
	}

	return cmd
}

func newResetDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-day",
		Short: "Start a new day: uncheck all completed dailies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := eng.ResetDailies(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No completed dailies to reset."))
				return nil
			}
			fmt.Fprintf(out, "%s Reset %d dailies for a new day.\n", ui.IconDaily, n)
			return nil
		},
	}

	return cmd
}
