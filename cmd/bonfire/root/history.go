package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "Show recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := eng.History()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBonfire, "History"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (nothing yet)"))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			for _, e := range entries {
				icon := ui.IconDone
				souls := ui.Good.Render(fmt.Sprintf("+%d", e.SoulsEarned))
				if e.Action == engine.ActionFailed || e.Action == engine.ActionNegative {
					icon = ui.IconSkull
					souls = ui.Bad.Render(fmt.Sprintf("%d", e.SoulsEarned))
				}
				fmt.Fprintf(out, "  %s %s  %s %s %s\n",
					ui.Muted.Render(e.Timestamp.Format("Jan 02 15:04")),
					icon, e.TaskTitle, ui.IconSouls, souls)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Max entries to show")
	return cmd
}

func newSoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sound",
		Short: "Toggle sound effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			enabled, err := eng.ToggleSound(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if enabled {
				fmt.Fprintln(out, ui.Good.Render("Sound on."))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Sound off."))
			}
			return nil
		},
	}
}
