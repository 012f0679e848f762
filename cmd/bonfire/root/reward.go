package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Manage self-defined rewards purchasable with Souls",
	}

	cmd.AddCommand(newRewardAddCmd())
	cmd.AddCommand(newRewardListCmd())
	cmd.AddCommand(newRewardBuyCmd())
	cmd.AddCommand(newRewardRmCmd())
	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var cost int
	var notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r, err := eng.AddReward(ctx, strings.Join(args, " "), cost, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s (%s %d) as %s.\n",
				ui.IconReward, r.Title, ui.IconSouls, r.Cost, ui.Key.Render(r.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 50, "Cost in Souls")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newRewardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the reward catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := eng.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconReward, "Rewards"))
			if len(st.Rewards) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none)"))
				return nil
			}
			for _, r := range st.Rewards {
				line := fmt.Sprintf("  %s  %s %-4d %s", ui.Key.Render(r.ID), ui.IconSouls, r.Cost, r.Title)
				if r.Notes != "" {
					line += "  " + ui.Muted.Render(r.Notes)
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "\n%s Souls: %s\n", ui.IconSouls, ui.Gold.Render(fmt.Sprintf("%d", st.Souls)))
			return nil
		},
	}
}

func newRewardBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Spend Souls on a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := eng.BuyReward(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, ui.Warn.Render("Cannot buy: unknown reward or not enough Souls."))
				return nil
			}
			fmt.Fprintf(out, "%s Treat yourself. Enjoy it!\n", ui.IconReward)
			return nil
		},
	}
}

func newRewardRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reward from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := eng.DeleteReward(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, ui.Muted.Render("No such reward."))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render("Removed."))
			return nil
		},
	}
}
