package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/config"
	"github.com/hexonal/Tmux-Orchestrator/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			fmt.Println(output.Dim("# " + path))
			return toml.NewEncoder(os.Stdout).Encode(cfg)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			output.PrintSuccessf("Wrote default config to %s", path)
			return nil
		},
	})

	return cmd
}
