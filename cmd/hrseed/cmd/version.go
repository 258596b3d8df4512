package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the hrseed release version.
const Version = "0.1.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hrseed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hrseed version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
