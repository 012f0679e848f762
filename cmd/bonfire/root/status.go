package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show vitals, attributes and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := eng.Snapshot()
			out := cmd.OutOrStdout()
			effMax := engine.EffectiveMaxHP(st.BaseMaxHP, st.HollowLevel)

			fmt.Fprintln(out, ui.Heading(ui.IconBonfire, fmt.Sprintf("Level %d", st.Level)))
			fmt.Fprintf(out, "%s HP    %s %d/%d\n", ui.IconHP, ui.Bar(st.HP, effMax, 20), st.HP, effMax)
			fmt.Fprintf(out, "%s XP    %s %d/%d\n", ui.IconXP, ui.Bar(st.XP, st.XPToLevel, 20), st.XP, st.XPToLevel)
			fmt.Fprintf(out, "%s Souls %s\n", ui.IconSouls, ui.Gold.Render(fmt.Sprintf("%d", st.Souls)))
			fmt.Fprintf(out, "%s Flasks %d/%d\n", ui.IconFlask, st.Flasks, st.MaxFlasks)

			if st.IsDowned {
				fmt.Fprintln(out, ui.BadgeDowned)
				fmt.Fprintln(out, ui.Muted.Render("Run `bonfire revive` to rest at the bonfire."))
			}
			if st.HollowLevel > 0 {
				fmt.Fprintf(out, "%s Hollow level %d (max HP reduced to %d)\n", ui.IconHollow, st.HollowLevel, effMax)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Heading(ui.IconXP, "Attributes"))
			for _, c := range engine.Categories {
				lvl := engine.AttributeLevel(st.CategoryXP[c])
				line := fmt.Sprintf("  %-13s %-13s lv %d  (%d xp)",
					engine.CategoryAttribute[c], "["+string(c)+"]", lvl, st.CategoryXP[c])
				if streak := st.CategoryStreak[c]; streak > 0 {
					line += ui.Warn.Render(fmt.Sprintf("  streak %d", streak))
				}
				fmt.Fprintln(out, line)
			}

			fmt.Fprintln(out)
			if st.ActiveBuffs.DamageReduction {
				fmt.Fprintln(out, ui.Good.Render(ui.IconShield+" Ring of Protection active (next HP loss halved)"))
			}
			if st.ActiveBuffs.RewardMultiplier {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconSouls+" Golden Pine Resin active (next Souls doubled)"))
			}
			for _, id := range engine.EquipmentOrder {
				eq := st.Equipment[id]
				if eq == nil || !eq.Owned {
					continue
				}
				label := engine.EquipmentItems[id].Name
				if eq.Equipped {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconShield, label, ui.Good.Render("(equipped)"))
				} else {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconShield, label, ui.Muted.Render("(owned)"))
				}
			}

			if st.DeathCount > 0 {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%s Deaths %d, Souls lost %d\n", ui.IconSkull, st.DeathCount, st.SoulsLostTotal)
			}
			return nil
		},
	}

	return cmd
}
