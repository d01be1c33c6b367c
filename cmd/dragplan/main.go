package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dragplan",
		Short:        "Replay and check drag-and-drop scheduling gestures",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(replayCmd())
	root.AddCommand(configCmd())
	root.AddCommand(versionCmd())
	return root
}
