package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/user/aiscan/pkg/knowledge"
)

var checkVersionCmd = &cobra.Command{
	Use:   "check-version <version>",
	Short: "Check an assistant version against known CVE patches",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version := args[0]

		fmt.Println("[ Version Check ]")
		fmt.Printf("Checking version: %s\n\n", version)

		kb := knowledge.Get()
		patched := kb.PatchedVersions()

		ids := make([]string, 0, len(patched))
		for id := range patched {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			fmt.Printf("%s: requires >= %s\n", id, patched[id])
			if kb.IsAffected(id, version) {
				fmt.Println("  [FAIL] UPGRADE NEEDED!")
			} else {
				fmt.Println("  [OK]")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checkVersionCmd)
}
