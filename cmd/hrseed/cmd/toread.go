package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// toreadCmd represents the toread command
var toreadCmd = &cobra.Command{
	Use:   "toread <seed>",
	Short: "Encode an ASCII seed into human-readable words",
	Long: `Encode an ASCII seed into a space-joined sequence of words.

The first output word encodes the padding bit count; the rest carry the
seed itself.

Example:
  hrseed toread "my-secret-token"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCodec(cmd)
		if err != nil {
			return err
		}

		words, err := c.SeedToHuman(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toreadCmd)
}
