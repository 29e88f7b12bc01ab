package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// upgradeNotes maps each security release to its headline fixes.
var upgradeNotes = []struct {
	version string
	summary string
}{
	{"2026.2.14", "SSRF vulnerability fixes, strict gatewayUrl validation"},
	{"2026.2.15", "RCE via cliPath fix, command validation"},
	{"2026.2.20", "Sandbox Docker improvements, PATH sanitization"},
	{"2026.2.23", "Security hardening batch, safe bins updates"},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade-guide",
	Short: "Show recommended upgrades based on security fixes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("[ Upgrade Guide ]")
		fmt.Println()
		fmt.Println("Recommended upgrades based on security fixes:")

		for _, u := range upgradeNotes {
			fmt.Printf("  [upgrade] v%s - %s\n", u.version, u.summary)
		}

		fmt.Println("\nTo upgrade: npm update -g openclaw")
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
