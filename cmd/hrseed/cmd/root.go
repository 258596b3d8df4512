package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrseed/hrseed/pkg/codec"
	"github.com/hrseed/hrseed/pkg/wordlist"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hrseed",
	Short: "hrseed - seeds as human-readable words",
	Long: `hrseed converts opaque ASCII tokens into sequences of dictionary
words and back, for tokens that have to be read aloud or typed by hand.

By default it uses a built-in list of 65536 pronounceable words, so every
data word carries two bytes of the seed. Supply --wordlist to use your own.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("wordlist", "w", "", "Path to a wordlist file (one word per line)")
	rootCmd.PersistentFlags().IntP("chunk-size", "n", 0, "Manual bits-per-word override (0 = derive from wordlist)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print bit string and chunk diagnostics to stderr")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for named wordlists")
}

// newCodec builds a codec from the persistent flags.
func newCodec(cmd *cobra.Command) (*codec.Codec, error) {
	var opts []codec.Option

	if path, _ := cmd.Flags().GetString("wordlist"); path != "" {
		ix, err := wordlist.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, codec.WithIndex(ix))
	}
	if n, _ := cmd.Flags().GetInt("chunk-size"); n != 0 {
		opts = append(opts, codec.WithChunkSize(n))
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		errStream := cmd.ErrOrStderr()
		opts = append(opts, codec.WithTrace(func(format string, args ...any) {
			fmt.Fprintf(errStream, format+"\n", args...)
		}))
	}

	return codec.New(opts...)
}
