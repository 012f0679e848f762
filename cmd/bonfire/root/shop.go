package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the shop catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := eng.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Consumables"))
			for _, id := range engine.ShopItemOrder {
				item := engine.ShopItems[id]
				owned := st.Inventory[id]
				if id == engine.ItemEstusFlask {
					owned = st.Flasks
				}
				fmt.Fprintf(out, "  %-22s %s %-4d %s  (%d/%d owned)\n",
					ui.Key.Render(string(item.ID)), ui.IconSouls, item.Cost,
					item.Effect, owned, item.MaxQuantity)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Equipment"))
			for _, id := range engine.EquipmentOrder {
				item := engine.EquipmentItems[id]
				status := ""
				if eq := st.Equipment[id]; eq != nil && eq.Owned {
					status = ui.Good.Render("  owned")
				}
				fmt.Fprintf(out, "  %-22s %s %-4d %s%s\n",
					ui.Key.Render(string(item.ID)), ui.IconSouls, item.Cost, item.Effect, status)
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s Souls: %s\n", ui.IconSouls, ui.Gold.Render(fmt.Sprintf("%d", st.Souls)))
			return nil
		},
	}

	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy a shop item or equipment piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if id, ok := engine.ParseShopItemID(args[0]); ok {
				bought, err := eng.BuyItem(ctx, id)
				if err != nil {
					return err
				}
				if !bought {
					fmt.Fprintln(out, ui.Warn.Render("Cannot buy: not enough Souls or already at the cap."))
					return nil
				}
				fmt.Fprintf(out, "%s Bought %s.\n", ui.IconDone, engine.ShopItems[id].Name)
				return nil
			}

			if id, ok := engine.ParseEquipmentID(args[0]); ok {
				bought, err := eng.BuyEquipment(ctx, id)
				if err != nil {
					return err
				}
				if !bought {
					fmt.Fprintln(out, ui.Warn.Render("Cannot buy: not enough Souls or already owned."))
					return nil
				}
				fmt.Fprintf(out, "%s Bought %s. Equip it with `bonfire equip`.\n",
					ui.IconDone, engine.EquipmentItems[id].Name)
				return nil
			}

			return errors.New("unknown item; run `bonfire shop` for the catalog")
		},
	}

	return cmd
}
