// Package cli wires the tmo commands: scheduling deferred check-ins,
// inspecting tmux sessions, and driving agent windows.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hexonal/Tmux-Orchestrator/internal/config"
	"github.com/hexonal/Tmux-Orchestrator/internal/output"
	"github.com/hexonal/Tmux-Orchestrator/internal/tmux"
)

var (
	cfgFile string
	cfg     *config.Config
	sshHost string

	// Build information - set via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tmo",
	Short: "Tmux Orchestrator - schedule check-ins for AI agent sessions",
	Long: `tmo keeps AI agents running in tmux sessions on schedule: it persists
a check-in note, spawns a detached timer, and injects a check-in message
into the orchestrator window when the timer fires.

Quick Start:
  tmo schedule 15 "Review agent progress"   # Check in after 15 minutes
  tmo status                                # Snapshot all sessions
  tmo monitor                               # Live session monitor (TUI)
  tmo send dev:0 "continue with the plan"   # Send a message to a window`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if sshHost != "" {
			tmux.DefaultClient = tmux.NewClient(sshHost)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			output.PrintWarningf("config load failed, using defaults: %v", err)
			cfg = config.Default()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/tmux-orchestrator/config.toml)")
	rootCmd.PersistentFlags().StringVar(&sshHost, "ssh", "", "run tmux commands on a remote host (user@host)")

	rootCmd.AddCommand(
		newScheduleCmd(),
		newFireCmd(),
		newSessionsCmd(),
		newStatusCmd(),
		newCaptureCmd(),
		newSendCmd(),
		newFindCmd(),
		newNoteCmd(),
		newMonitorCmd(),
		newWatchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
