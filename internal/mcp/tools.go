// ABOUTME: MCP tool implementations for wellness journal operations.
// ABOUTME: Registers record_mood, write_journal, get_mood_trend, list_journal_entries, chat.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/haven/internal/models"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "record_mood",
		Description: "Record how the user is feeling today. Mood must be one of: very-sad, sad, neutral, happy, very-happy. An optional note can add context.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"mood": {"type": "string", "enum": ["very-sad", "sad", "neutral", "happy", "very-happy"], "description": "Mood level for today"},
				"note": {"type": "string", "description": "Optional free-text note about the mood"}
			},
			"required": ["mood"]
		}`),
	}, s.handleRecordMood)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "write_journal",
		Description: "Write a free-text journal entry. Empty or whitespace-only content is rejected.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"content": {"type": "string", "description": "Journal entry text"}
			},
			"required": ["content"]
		}`),
	}, s.handleWriteJournal)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "get_mood_trend",
		Description: "Get the 7-day mood trend, one slot per day ending today. Days without a recorded mood are marked as gaps.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleGetMoodTrend)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_journal_entries",
		Description: "List journal entries, newest first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "number", "description": "Maximum number of entries to return (default 10)"}
			}
		}`),
	}, s.handleListJournalEntries)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "chat",
		Description: "Send a message to the support companion and get a reply.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"message": {"type": "string", "description": "Message text"}
			},
			"required": ["message"]
		}`),
	}, s.handleChat)
}

func (s *Server) handleRecordMood(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	record, err := s.app.SaveMood(args.Mood, args.Note)
	if err != nil {
		return toolError("failed to record mood: %v", err), nil
	}

	return textResult("Mood recorded: %s (%s)", models.MoodLabel(record.Mood), record.Date), nil
}

func (s *Server) handleWriteJournal(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	record, err := s.app.SaveJournal(args.Content)
	if err != nil {
		return toolError("failed to write journal entry: %v", err), nil
	}

	return textResult("Journal entry saved for %s.", record.Date), nil
}

func (s *Server) handleGetMoodTrend(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	window := s.app.MoodTrend()

	var sb strings.Builder
	sb.WriteString("7-day mood trend (oldest first):\n")
	for _, slot := range window {
		if slot.HasData {
			sb.WriteString(fmt.Sprintf("%s: %s (%d/5)\n", slot.Date, models.MoodLabel(slot.Mood), slot.Level))
		} else {
			sb.WriteString(fmt.Sprintf("%s: no entry\n", slot.Date))
		}
	}

	return textResult("%s", sb.String()), nil
}

func (s *Server) handleListJournalEntries(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}

	entries := s.app.Journal().All()
	if len(entries) == 0 {
		return textResult("No journal entries found."), nil
	}

	var sb strings.Builder
	count := 0
	for i := len(entries) - 1; i >= 0 && count < args.Limit; i-- {
		entry := entries[i]
		if count > 0 {
			sb.WriteString("\n---\n")
		}
		sb.WriteString(fmt.Sprintf("%s\n%s\n", entry.Date, entry.Content))
		count++
	}

	return textResult("%s", sb.String()), nil
}

func (s *Server) handleChat(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	reply, err := s.app.ChatReply(args.Message)
	if err != nil {
		return toolError("failed to reply: %v", err), nil
	}

	return textResult("%s", reply), nil
}

func textResult(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
