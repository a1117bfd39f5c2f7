package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/pkg/app"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <archive>",
		Short: "Compute wrapped statistics for one conversation",
		Long: "Analyze parses a Messenger export (zip or unpacked folder) and writes " +
			"the wrapped statistics as JSON. With several conversations in the " +
			"archive and no --chat flag an interactive picker is shown.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			files, err := archive.Open(args[0])
			if err != nil {
				return err
			}

			chat, _ := cmd.Flags().GetString("chat")
			if chat == "" {
				chat, err = pickChat(archive.Chats(files))
				if err != nil {
					return err
				}
			}

			result, err := app.AnalyzeChat(files, chat, cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("analysis complete",
				"chat", result.Wrapped.ChatName,
				"messages", result.Wrapped.Stats.TotalMessages,
				"files", result.FilesParsed,
				"failures", result.ParseFailures,
			)

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating %s: %w", path, err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Wrapped)
		},
	}
	cmd.Flags().String("chat", "", "Conversation to analyze (default: prompt when ambiguous)")
	cmd.Flags().StringP("output", "o", "", "Write JSON to a file instead of stdout")
	return cmd
}

// pickChat resolves which conversation to analyze. A single-chat archive
// needs no prompt.
func pickChat(chats []string) (string, error) {
	switch len(chats) {
	case 0:
		return "", errors.New("no conversations found in archive")
	case 1:
		return chats[0], nil
	}

	var chat string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a conversation").
			Options(huh.NewOptions(chats...)...).
			Value(&chat),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picking conversation: %w", err)
	}
	return chat, nil
}
