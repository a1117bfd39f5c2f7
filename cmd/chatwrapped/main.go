// Package main is the entry point for the chatwrapped CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/internal/config"
	"github.com/flemzord/chatwrapped/pkg/app"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "chatwrapped",
		Short:        "Year-in-review statistics for Messenger chat exports",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	root.AddCommand(versionCmd(), chatsCmd(), analyzeCmd(), serveCmd(), mcpCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("chatwrapped %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func chatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chats <archive>",
		Short: "List the conversations in an export archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			chats := archive.Chats(files)
			if len(chats) == 0 {
				fmt.Println("No conversations found.")
				return nil
			}
			for _, chat := range chats {
				fmt.Println(chat)
			}
			return nil
		},
	}
}

// setup loads configuration and builds the shared stderr logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(level), nil
}
