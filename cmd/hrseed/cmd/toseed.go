package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// toseedCmd represents the toseed command
var toseedCmd = &cobra.Command{
	Use:   "toseed <word1> <word2> ...",
	Short: "Decode a word sequence back to its seed",
	Long: `Decode a word sequence produced by "hrseed toread" back to the
original ASCII seed. Words may be passed quoted as one argument or as
separate arguments; either way the input is split on whitespace.

Example:
  hrseed toseed "babab dahin fatod"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCodec(cmd)
		if err != nil {
			return err
		}

		words := strings.Fields(strings.Join(args, " "))
		seed, err := c.HumanToSeed(words)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), seed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toseedCmd)
}
