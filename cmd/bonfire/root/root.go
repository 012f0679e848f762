package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bonfire/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "bonfire",
	Short:         "Souls-like task tracker",
	Long:          "Bonfire is a local-first task tracker with a Souls-like reward economy: HP, Souls, hollowing, flasks and death.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newFailCmd(),
		newCheckCmd(),
		newEditCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newUseCmd(),
		newFlaskCmd(),
		newEquipCmd(),
		newReviveCmd(),
		newResetDayCmd(),
		newRewardCmd(),
		newHistoryCmd(),
		newSoundCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
