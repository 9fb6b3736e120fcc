package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geofinder",
		Short: "Multiplayer street-view location guessing game server",
		Long: `geofinder hosts real-time multiplayer guessing games: players watch a
street-view scene together, then race to pin its location on a map.

Configuration is read from the environment; a .env file in the working
directory is loaded if present.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is the normal case outside local dev
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
