package main

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/pkg/app"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp <archive>",
		Short: "Expose the archive to MCP clients over stdio",
		Long: "Mcp loads the export once and serves list_chats and analyze_chat " +
			"tools over stdio, so an MCP-capable assistant can explore the " +
			"conversation statistics.",
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

			srv := mcpserver.NewMCPServer(
				"chatwrapped",
				version,
				mcpserver.WithToolCapabilities(true),
			)

			srv.AddTool(mcp.NewTool(
				"list_chats",
				mcp.WithDescription("List the conversations available in the loaded Messenger export archive."),
			), func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				chats := archive.Chats(files)
				if chats == nil {
					chats = []string{}
				}
				return mcp.NewToolResultJSON(map[string]any{
					"chats": chats,
					"total": len(chats),
				})
			})

			srv.AddTool(mcp.NewTool(
				"analyze_chat",
				mcp.WithDescription("Compute year-in-review statistics for one conversation: totals, per-contributor rollups, linguistic metrics, reaction leaderboards, and a monthly activity timeline."),
				mcp.WithString("chat",
					mcp.Description("Conversation name as returned by list_chats. Optional when the archive holds a single conversation."),
				),
			), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				chat := mcp.ParseString(req, "chat", "")
				if chat == "" {
					if chats := archive.Chats(files); len(chats) > 1 {
						return mcp.NewToolResultStructuredOnly(map[string]any{
							"success": false,
							"error":   "archive holds several conversations",
							"chats":   chats,
							"hint":    "Pass one of these names as 'chat'.",
						}), nil
					}
				}
				result, err := app.AnalyzeChat(files, chat, cfg, logger)
				if err != nil {
					return mcp.NewToolResultStructuredOnly(map[string]any{
						"success": false,
						"error":   err.Error(),
						"hint":    "Call list_chats first and pass one of its names as 'chat'.",
					}), nil
				}
				return mcp.NewToolResultJSON(map[string]any{
					"success":             true,
					"wrapped":             result.Wrapped,
					"files_parsed":        result.FilesParsed,
					"parse_failures":      result.ParseFailures,
					"timestamp_fallbacks": result.TimestampFallbacks,
				})
			})

			logger.Info("mcp server listening on stdio", "archive", args[0])
			return mcpserver.ServeStdio(srv)
		},
	}
}
