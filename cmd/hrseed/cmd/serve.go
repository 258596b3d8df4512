package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hrseed/hrseed/pkg/api"
	"github.com/hrseed/hrseed/pkg/codec"
	"github.com/hrseed/hrseed/pkg/config"
	"github.com/hrseed/hrseed/pkg/registry"
	"github.com/hrseed/hrseed/pkg/wordlist"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hrseed HTTP API",
	Long: `Run the hrseed HTTP API: encode and decode endpoints, named
wordlist management, health and prometheus metrics.

On first run a config file with a generated API key is written to the
config path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
		} else {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			fmt.Fprintf(cmd.ErrOrStderr(), "Bootstrapping config at %s\n", configPath)
			cfg, err = config.BootstrapConfig(configPath, dataDir)
		}
		if err != nil {
			return err
		}

		var opts []codec.Option
		if cfg.Codec.WordlistFile != "" {
			ix, err := wordlist.LoadFile(cfg.Codec.WordlistFile)
			if err != nil {
				return err
			}
			opts = append(opts, codec.WithIndex(ix))
		}
		if cfg.Codec.ChunkSize != 0 {
			opts = append(opts, codec.WithChunkSize(cfg.Codec.ChunkSize))
		}
		c, err := codec.New(opts...)
		if err != nil {
			return err
		}

		reg, err := registry.Open(filepath.Join(cfg.DataDir, "wordlists"))
		if err != nil {
			return err
		}
		defer reg.Close()

		server := api.NewServer(c, reg, api.ServerConfig{
			Bind:   cfg.Bind,
			Port:   cfg.Port,
			APIKey: cfg.Security.APIKey,
		}, api.NewMetrics())

		return api.StartServer(server)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Config file path (default ~/.config/hrseed/config.yaml)")
}
