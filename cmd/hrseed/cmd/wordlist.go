package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hrseed/hrseed/pkg/registry"
	"github.com/hrseed/hrseed/pkg/wordlist"
)

// wordlistCmd groups the named wordlist management commands
var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Manage named wordlists",
	Long: `Manage the named wordlists stored in the data directory. Named
wordlists are served by "hrseed serve" for per-request wordlist selection.`,
}

var wordlistAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a wordlist from a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		ix, err := wordlist.LoadFile(path)
		if err != nil {
			return err
		}

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		defer reg.Close()

		if err := reg.Put(name, ix.Words()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered %q: %d words, chunk size %d\n", name, ix.Size(), ix.ChunkSize())
		return nil
	},
}

var wordlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered wordlists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		defer reg.Close()

		names, err := reg.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var wordlistShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a registered wordlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		defer reg.Close()

		ix, err := reg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ix.Words(), "\n"))
		return nil
	},
}

var wordlistRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a registered wordlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		defer reg.Close()

		return reg.Delete(args[0])
	},
}

// openRegistry opens the registry under the configured data directory.
func openRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	return registry.Open(filepath.Join(dataDir, "wordlists"))
}

func init() {
	rootCmd.AddCommand(wordlistCmd)
	wordlistCmd.AddCommand(wordlistAddCmd)
	wordlistCmd.AddCommand(wordlistListCmd)
	wordlistCmd.AddCommand(wordlistShowCmd)
	wordlistCmd.AddCommand(wordlistRmCmd)
}
