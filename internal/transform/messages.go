package transform

import (
	"github.com/n0madic/go-playground/internal/ids"
	"github.com/n0madic/go-playground/internal/schema"
	"github.com/n0madic/go-playground/internal/types"
)

// ToChatMessages converts validated span messages into playground chat
// messages. Every call assigns fresh message ids.
func ToChatMessages(messages []schema.Message) []types.ChatMessage {
	out := make([]types.ChatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, types.ChatMessage{
			ID:        ids.NewMessageID(),
			Role:      NormalizeRole(m.Role),
			Content:   m.Content,
			ToolCalls: ToToolCalls(m.ToolCalls),
		})
	}
	return out
}

// ToToolCalls converts span tool calls. A nil input yields nil; entries
// without a tool_call payload are dropped and missing fields default to
// empty values.
func ToToolCalls(wrappers []schema.ToolCallWrapper) []types.ToolCall {
	if wrappers == nil {
		return nil
	}
	out := make([]types.ToolCall, 0, len(wrappers))
	for _, w := range wrappers {
		tc := w.ToolCall
		if tc == nil {
			continue
		}
		call := types.ToolCall{
			Function: types.ToolCallFunction{Arguments: map[string]any{}},
		}
		if tc.ID != nil {
			call.ID = *tc.ID
		}
		if fn := tc.Function; fn != nil {
			if fn.Name != nil {
				call.Function.Name = *fn.Name
			}
			if fn.Arguments != nil {
				call.Function.Arguments = fn.Arguments
			}
		}
		out = append(out, call)
	}
	return out
}
