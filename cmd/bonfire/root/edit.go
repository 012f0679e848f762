package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var notes string
	var category string
	var tier string
	var souls int
	var xp int
	var stake int

	cmd := &cobra.Command{
		Use:   "edit <type> <id>",
		Short: "Edit task fields",
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

			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &notes
			}
			if cmd.Flags().Changed("category") {
				c := engine.ParseCategory(category)
				in.Category = &c
			}
			if cmd.Flags().Changed("tier") {
				tr := engine.Tier(tier)
				in.Tier = &tr
			}
			if cmd.Flags().Changed("souls") {
				in.BaseSouls = &souls
			}
			if cmd.Flags().Changed("xp") {
				in.BaseXP = &xp
			}
			if cmd.Flags().Changed("stake") {
				in.HPStake = &stake
			}

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := eng.UpdateTask(ctx, t, args[1], in)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&tier, "tier", "", "New tier (S|A|B|C)")
	cmd.Flags().IntVar(&souls, "souls", 0, "Base Souls reward")
	cmd.Flags().IntVar(&xp, "xp", 0, "Base XP reward")
	cmd.Flags().IntVar(&stake, "stake", 0, "HP at stake on failure")

	return cmd
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <type> <id>",
		Short: "Delete a task",
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

			ok, err := eng.DeleteTask(ctx, t, args[1])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Deleted."))
			return nil
		},
	}

	return cmd
}
