package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/flemzord/chatwrapped/internal/analyzer"
	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/internal/config"
	"github.com/flemzord/chatwrapped/internal/messenger"
)

// ErrChatNotFound reports that no message files exist for the requested chat.
var ErrChatNotFound = errors.New("app: no message files for chat")

// AnalysisResult bundles the wrapped statistics with pipeline diagnostics.
type AnalysisResult struct {
	Wrapped *analyzer.WrappedData

	// FilesParsed and ParseFailures count export files; a failed file is
	// logged and skipped, it never aborts the batch.
	FilesParsed   int
	ParseFailures int

	// TimestampFallbacks counts HTML messages whose footer timestamp could
	// not be parsed and received a wall-clock stand-in.
	TimestampFallbacks int64
}

// AnalyzeChat runs the full pipeline against an already-loaded export:
// select the chat's message files, parse each page (JSON or HTML), merge
// into one chronological stream, and compute the wrapped statistics.
// chatName may be empty when the archive holds a single conversation.
func AnalyzeChat(files archive.FileSet, chatName string, cfg *config.Config, logger *slog.Logger) (*AnalysisResult, error) {
	selected := files
	if chatName != "" {
		selected = archive.FilterChat(files, chatName)
	}
	msgFiles := archive.MessageFiles(selected)
	if len(msgFiles) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrChatNotFound, chatName)
	}

	htmlParser := messenger.NewHTMLParser(cfg.Analysis.ExtraSystemSenders...)

	var (
		pages        [][]messenger.ParsedMessage
		participants []string
		seenNames    = make(map[string]struct{})
		title        string
		groupPhoto   string
		failures     int
	)
	for _, file := range msgFiles {
		var conv *messenger.Conversation
		var err error
		if file.IsHTML() {
			conv, err = htmlParser.Parse(file.Data)
		} else {
			conv, err = messenger.ParseJSON(file.Data)
		}
		if err != nil {
			failures++
			logger.Warn("skipping unparsable export file", "path", file.Path, "error", err)
			continue
		}

		pages = append(pages, messenger.Parse(conv))
		for _, name := range conv.ParticipantNames() {
			if _, ok := seenNames[name]; ok {
				continue
			}
			seenNames[name] = struct{}{}
			participants = append(participants, name)
		}
		if title == "" {
			title = conv.Title
		}
		if groupPhoto == "" {
			groupPhoto = conv.GroupPhotoURI
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("app: analyzing %q: every message file failed to parse", chatName)
	}

	merged := messenger.Merge(pages)

	wrapped := analyzer.Analyze(merged, displayName(msgFiles[0].Path, title, chatName), participants, analyzer.Options{
		LeaderboardLimit:   cfg.Analysis.LeaderboardLimit,
		ExtraSystemSenders: cfg.Analysis.ExtraSystemSenders,
		ExtraStopWords:     cfg.Analysis.ExtraStopWords,
		GroupPhotoURI:      groupPhoto,
	})

	fallbacks := htmlParser.TimestampFallbacks()
	if fallbacks > 0 {
		logger.Warn("messages received wall-clock timestamps", "count", fallbacks)
	}

	return &AnalysisResult{
		Wrapped:            wrapped,
		FilesParsed:        len(msgFiles) - failures,
		ParseFailures:      failures,
		TimestampFallbacks: fallbacks,
	}, nil
}

// displayName picks the conversation's display name: an export-declared
// title wins, then the name the caller asked for, then the inbox folder.
func displayName(path, title, requested string) string {
	if title != "" {
		return title
	}
	if requested != "" {
		return requested
	}
	return archive.ChatName(path, "")
}
