package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/aiscan/pkg/logx"
)

var rootCmd = &cobra.Command{
	Use:   "aiscan",
	Short: "AI Assistant Security Scanner",
	Long: `aiscan audits AI assistant gateway configurations for real exploit
chains: exposed gateways, disabled sandboxes, open messaging channels,
leaked credentials and dangerous tool combinations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.DebugEnabled = DebugMode
	},
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
