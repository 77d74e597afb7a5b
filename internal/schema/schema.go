// Package schema validates the shapes found in span attribute bags and tool
// definitions. Validators take a gjson.Result, never mutate it, and report
// failure through their bool result instead of an error.
package schema

import (
	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/types"
)

// Message is a validated entry of llm.input_messages or llm.output_messages.
// ToolCalls is nil when tool_calls is absent or null.
type Message struct {
	Role      string
	Content   *string
	ToolCalls []ToolCallWrapper
}

// ToolCallWrapper is a tool_calls entry. ToolCall is nil when the entry
// carries no tool_call payload.
type ToolCallWrapper struct {
	ToolCall *ToolCallPayload
}

// ToolCallPayload is the tool_call object of a message.
type ToolCallPayload struct {
	ID       *string
	Function *FunctionPayload
}

// FunctionPayload is the function block of a tool call. Arguments is nil when
// absent.
type FunctionPayload struct {
	Name      *string
	Arguments map[string]any
}

// ModelConfigWithParameters is the combined llm.model_name and
// llm.invocation_parameters shape.
type ModelConfigWithParameters struct {
	ModelName            string
	InvocationParameters []types.RawInvocationParameter
}

// ToolEntry is an llm.tools entry. JSONSchema is nil when the entry has no
// tool payload.
type ToolEntry struct {
	JSONSchema map[string]any
}

// InputMessages validates {llm: {input_messages: [...]}}.
func InputMessages(attrs gjson.Result) ([]Message, bool) {
	return messagesAt(attrs, "input_messages")
}

// OutputMessages validates {llm: {output_messages: [...]}}.
func OutputMessages(attrs gjson.Result) ([]Message, bool) {
	return messagesAt(attrs, "output_messages")
}

// OutputValue validates {output: {value: string}}.
func OutputValue(attrs gjson.Result) (string, bool) {
	output, ok := object(attrs, "output")
	if !ok {
		return "", false
	}
	v := field(output, "value")
	if v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// ModelConfig validates {llm: {model_name: string}}.
func ModelConfig(attrs gjson.Result) (string, bool) {
	llm, ok := object(attrs, "llm")
	if !ok {
		return "", false
	}
	name := field(llm, "model_name")
	if name.Type != gjson.String {
		return "", false
	}
	return name.Str, true
}

// ModelConfigWithInvocationParameters validates
// {llm: {model_name: string, invocation_parameters: object | json string}}.
// Parameter values must be strings, numbers, booleans or string lists.
func ModelConfigWithInvocationParameters(attrs gjson.Result) (ModelConfigWithParameters, bool) {
	name, ok := ModelConfig(attrs)
	if !ok {
		return ModelConfigWithParameters{}, false
	}
	params, ok := jsonObject(field(field(attrs, "llm"), "invocation_parameters"))
	if !ok {
		return ModelConfigWithParameters{}, false
	}
	out := ModelConfigWithParameters{ModelName: name, InvocationParameters: []types.RawInvocationParameter{}}
	valid := true
	params.ForEach(func(key, value gjson.Result) bool {
		v, ok := parameterValue(value)
		if !ok {
			valid = false
			return false
		}
		out.InvocationParameters = append(out.InvocationParameters, types.RawInvocationParameter{Key: key.String(), Value: v})
		return true
	})
	if !valid {
		return ModelConfigWithParameters{}, false
	}
	return out, true
}

// Tools validates the optional {llm?: {tools?: [{tool?: {json_schema}}]}}
// shape. A nil slice with ok=true means the span has no tools. Optional keys
// may be missing but not null.
func Tools(attrs gjson.Result) ([]ToolEntry, bool) {
	if !attrs.IsObject() {
		return nil, false
	}
	llm := field(attrs, "llm")
	if !llm.Exists() {
		return nil, true
	}
	if !llm.IsObject() {
		return nil, false
	}
	tools := field(llm, "tools")
	if !tools.Exists() {
		return nil, true
	}
	if !tools.IsArray() {
		return nil, false
	}
	out := []ToolEntry{}
	for _, entry := range tools.Array() {
		if !entry.IsObject() {
			return nil, false
		}
		tool := field(entry, "tool")
		if !tool.Exists() {
			out = append(out, ToolEntry{})
			continue
		}
		if !tool.IsObject() {
			return nil, false
		}
		def, ok := jsonObject(field(tool, "json_schema"))
		if !ok {
			return nil, false
		}
		m, _ := def.Value().(map[string]any)
		out = append(out, ToolEntry{JSONSchema: m})
	}
	return out, true
}

// ChatMessages reports whether v is a list of playground chat messages.
func ChatMessages(v gjson.Result) bool {
	if !v.IsArray() {
		return false
	}
	for _, m := range v.Array() {
		if !m.IsObject() {
			return false
		}
		id := field(m, "id")
		if id.Type != gjson.String && id.Type != gjson.Number {
			return false
		}
		role := field(m, "role")
		if role.Type != gjson.String || !types.IsChatRole(role.Str) {
			return false
		}
		if !optionalString(field(m, "content")) {
			return false
		}
		if tc := field(m, "toolCalls"); !isAbsent(tc) && !tc.IsArray() {
			return false
		}
	}
	return true
}

func messagesAt(attrs gjson.Result, key string) ([]Message, bool) {
	llm, ok := object(attrs, "llm")
	if !ok {
		return nil, false
	}
	list := field(llm, key)
	if !list.IsArray() {
		return nil, false
	}
	out := []Message{}
	for _, entry := range list.Array() {
		msg, ok := message(entry)
		if !ok {
			return nil, false
		}
		out = append(out, msg)
	}
	return out, true
}

func message(entry gjson.Result) (Message, bool) {
	m, ok := object(entry, "message")
	if !ok {
		return Message{}, false
	}
	role := field(m, "role")
	if role.Type != gjson.String {
		return Message{}, false
	}
	msg := Message{Role: role.Str}

	content := field(m, "content")
	if !optionalString(content) {
		return Message{}, false
	}
	if content.Type == gjson.String {
		s := content.Str
		msg.Content = &s
	}

	calls := field(m, "tool_calls")
	if isAbsent(calls) {
		return msg, true
	}
	if !calls.IsArray() {
		return Message{}, false
	}
	msg.ToolCalls = []ToolCallWrapper{}
	for _, c := range calls.Array() {
		w, ok := toolCallWrapper(c)
		if !ok {
			return Message{}, false
		}
		msg.ToolCalls = append(msg.ToolCalls, w)
	}
	return msg, true
}

func toolCallWrapper(c gjson.Result) (ToolCallWrapper, bool) {
	if !c.IsObject() {
		return ToolCallWrapper{}, false
	}
	tc := field(c, "tool_call")
	if isAbsent(tc) {
		return ToolCallWrapper{}, true
	}
	if !tc.IsObject() {
		return ToolCallWrapper{}, false
	}
	payload := &ToolCallPayload{}
	id := field(tc, "id")
	if !optionalString(id) {
		return ToolCallWrapper{}, false
	}
	if id.Type == gjson.String {
		s := id.Str
		payload.ID = &s
	}

	fn := field(tc, "function")
	if isAbsent(fn) {
		return ToolCallWrapper{ToolCall: payload}, true
	}
	if !fn.IsObject() {
		return ToolCallWrapper{}, false
	}
	payload.Function = &FunctionPayload{}
	name := field(fn, "name")
	if !optionalString(name) {
		return ToolCallWrapper{}, false
	}
	if name.Type == gjson.String {
		s := name.Str
		payload.Function.Name = &s
	}
	// Arguments that do not decode to an object are treated as absent.
	if args, ok := jsonObject(field(fn, "arguments")); ok {
		payload.Function.Arguments, _ = args.Value().(map[string]any)
	}
	return ToolCallWrapper{ToolCall: payload}, true
}

func parameterValue(v gjson.Result) (any, bool) {
	switch v.Type {
	case gjson.String:
		return v.Str, true
	case gjson.Number:
		return v.Num, true
	case gjson.True, gjson.False:
		return v.Bool(), true
	case gjson.JSON:
		if list, ok := stringList(v); ok {
			return list, true
		}
	}
	return nil, false
}
