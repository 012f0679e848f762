package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <item>",
		Short: "Use a consumable from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, ok := engine.ParseShopItemID(args[0])
			if !ok {
				return errors.New("unknown item; run `bonfire shop` for the catalog")
			}

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			used, err := eng.UseItem(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !used {
				fmt.Fprintln(out, ui.Warn.Render("Nothing happened: item unavailable or its effect is already active."))
				return nil
			}
			fmt.Fprintf(out, "%s Used %s. %s\n",
				ui.IconDone, engine.ShopItems[id].Name, ui.Muted.Render(engine.ShopItems[id].Effect))
			return nil
		},
	}

	return cmd
}

func newFlaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flask",
		Short: "Drink an Estus Flask",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			used, err := eng.UseFlask(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !used {
				fmt.Fprintln(out, ui.Warn.Render("No flask to drink, or you are downed."))
				return nil
			}
			st := eng.Snapshot()
			fmt.Fprintf(out, "%s You drink from the flask. HP %d/%d, flasks left %d.\n",
				ui.IconFlask, st.HP, engine.EffectiveMaxHP(st.BaseMaxHP, st.HollowLevel), st.Flasks)
			return nil
		},
	}

	return cmd
}

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <item>",
		Short: "Toggle a piece of owned equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, ok := engine.ParseEquipmentID(args[0])
			if !ok {
				return errors.New("unknown equipment; run `bonfire shop` for the catalog")
			}

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err = eng.EquipItem(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, ui.Warn.Render("You do not own that yet."))
				return nil
			}
			st := eng.Snapshot()
			name := engine.EquipmentItems[id].Name
			if st.Equipment[id].Equipped {
				fmt.Fprintf(out, "%s Equipped %s.\n", ui.IconShield, name)
			} else {
				fmt.Fprintf(out, "%s Unequipped %s.\n", ui.IconShield, name)
			}
			return nil
		},
	}

	return cmd
}
