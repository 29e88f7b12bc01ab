package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
	"github.com/user/aiscan/pkg/fixer"
	"github.com/user/aiscan/pkg/scanners"
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Apply automatic fixes to a configuration file",
	Long: `Scans the configuration, shows the available automatic fixes and
applies them after confirmation. The original file is saved alongside
with a .bak extension before any change is written.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result := engine.Run(cfg, scanners.All(), engine.FilterAll)
		fixes := fixer.GenerateFixes(result.Findings)

		if len(fixes) == 0 {
			fmt.Println("No automatic fixes available.")
			return
		}

		fmt.Print(fixer.PreviewFixes(result.Findings))

		if !dryRun && !force {
			fmt.Print("Apply these fixes? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		msg, err := fixer.ApplyFixes(configPath, fixes, dryRun)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(msg)
	},
}

func init() {
	fixCmd.Flags().StringP("config", "c", "", "Path to assistant configuration file")
	fixCmd.Flags().Bool("force", false, "Apply fixes without confirmation")
	fixCmd.Flags().Bool("dry-run", false, "Show the fixed config without writing anything")
	fixCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(fixCmd)
}
