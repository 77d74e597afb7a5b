package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/types"
)

func TestInputMessages(t *testing.T) {
	tests := []struct {
		name   string
		attrs  string
		wantOK bool
		want   []Message
	}{
		{
			name:   "simple",
			attrs:  `{"llm":{"input_messages":[{"message":{"role":"user","content":"hi"}}]}}`,
			wantOK: true,
			want:   []Message{{Role: "user", Content: strPtr("hi")}},
		},
		{
			name:   "null content kept",
			attrs:  `{"llm":{"input_messages":[{"message":{"role":"assistant","content":null}}]}}`,
			wantOK: true,
			want:   []Message{{Role: "assistant"}},
		},
		{
			name:   "empty list",
			attrs:  `{"llm":{"input_messages":[]}}`,
			wantOK: true,
			want:   []Message{},
		},
		{
			name: "tool calls with missing payload",
			attrs: `{"llm":{"input_messages":[{"message":{"role":"ai","tool_calls":[
				{"tool_call":{"id":"call_1","function":{"name":"search","arguments":"{\"q\":\"go\"}"}}},
				{}
			]}}]}}`,
			wantOK: true,
			want: []Message{{
				Role: "ai",
				ToolCalls: []ToolCallWrapper{
					{ToolCall: &ToolCallPayload{
						ID:       strPtr("call_1"),
						Function: &FunctionPayload{Name: strPtr("search"), Arguments: map[string]any{"q": "go"}},
					}},
					{},
				},
			}},
		},
		{
			name:   "missing role",
			attrs:  `{"llm":{"input_messages":[{"message":{"content":"hi"}}]}}`,
			wantOK: false,
		},
		{
			name:   "content not a string",
			attrs:  `{"llm":{"input_messages":[{"message":{"role":"user","content":42}}]}}`,
			wantOK: false,
		},
		{
			name:   "input messages not a list",
			attrs:  `{"llm":{"input_messages":{"role":"user"}}}`,
			wantOK: false,
		},
		{
			name:   "no llm",
			attrs:  `{"output":{"value":"x"}}`,
			wantOK: false,
		},
		{
			name:   "top level array",
			attrs:  `[1,2]`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InputMessages(gjson.Parse(tt.attrs))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputMessagesDistinguishesAbsentAndEmptyToolCalls(t *testing.T) {
	got, ok := InputMessages(gjson.Parse(`{"llm":{"input_messages":[
		{"message":{"role":"user","content":"a"}},
		{"message":{"role":"user","content":"b","tool_calls":[]}}
	]}}`))
	if !ok {
		t.Fatal("expected valid messages")
	}
	if got[0].ToolCalls != nil {
		t.Fatalf("absent tool_calls should be nil, got %#v", got[0].ToolCalls)
	}
	if got[1].ToolCalls == nil || len(got[1].ToolCalls) != 0 {
		t.Fatalf("empty tool_calls should be an empty slice, got %#v", got[1].ToolCalls)
	}
}

func TestUnparsableArgumentsAreTreatedAsAbsent(t *testing.T) {
	got, ok := OutputMessages(gjson.Parse(`{"llm":{"output_messages":[{"message":{"role":"assistant","tool_calls":[
		{"tool_call":{"function":{"name":"f","arguments":"not json"}}}
	]}}]}}`))
	if !ok {
		t.Fatal("expected valid messages")
	}
	fn := got[0].ToolCalls[0].ToolCall.Function
	if fn.Arguments != nil {
		t.Fatalf("Arguments = %#v, want nil", fn.Arguments)
	}
}

func TestOutputValue(t *testing.T) {
	if v, ok := OutputValue(gjson.Parse(`{"output":{"value":"done"}}`)); !ok || v != "done" {
		t.Fatalf("OutputValue = %q, %v", v, ok)
	}
	for _, attrs := range []string{`{"output":{"value":1}}`, `{"output":"done"}`, `{}`} {
		if _, ok := OutputValue(gjson.Parse(attrs)); ok {
			t.Fatalf("OutputValue(%s) should fail", attrs)
		}
	}
}

func TestModelConfig(t *testing.T) {
	if name, ok := ModelConfig(gjson.Parse(`{"llm":{"model_name":"gpt-4-turbo"}}`)); !ok || name != "gpt-4-turbo" {
		t.Fatalf("ModelConfig = %q, %v", name, ok)
	}
	if _, ok := ModelConfig(gjson.Parse(`{"llm":{"model_name":7}}`)); ok {
		t.Fatal("numeric model name should fail")
	}
}

func TestModelConfigWithInvocationParameters(t *testing.T) {
	tests := []struct {
		name   string
		attrs  string
		wantOK bool
		want   []types.RawInvocationParameter
	}{
		{
			name:   "json string keeps document order",
			attrs:  `{"llm":{"model_name":"gpt-4o","invocation_parameters":"{\"top_p\":0.5,\"temperature\":1,\"stop\":[\"a\"],\"stream\":true}"}}`,
			wantOK: true,
			want: []types.RawInvocationParameter{
				{Key: "top_p", Value: 0.5},
				{Key: "temperature", Value: float64(1)},
				{Key: "stop", Value: []string{"a"}},
				{Key: "stream", Value: true},
			},
		},
		{
			name:   "object form",
			attrs:  `{"llm":{"model_name":"gpt-4o","invocation_parameters":{"seed":"x"}}}`,
			wantOK: true,
			want:   []types.RawInvocationParameter{{Key: "seed", Value: "x"}},
		},
		{
			name:   "missing parameters",
			attrs:  `{"llm":{"model_name":"gpt-4o"}}`,
			wantOK: false,
		},
		{
			name:   "nested object value",
			attrs:  `{"llm":{"model_name":"gpt-4o","invocation_parameters":{"response_format":{"type":"json"}}}}`,
			wantOK: false,
		},
		{
			name:   "mixed list",
			attrs:  `{"llm":{"model_name":"gpt-4o","invocation_parameters":{"stop":["a",1]}}}`,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ModelConfigWithInvocationParameters(gjson.Parse(tt.attrs))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got.InvocationParameters); diff != "" {
				t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTools(t *testing.T) {
	tests := []struct {
		name      string
		attrs     string
		wantOK    bool
		wantNil   bool
		wantCount int
	}{
		{"no llm", `{}`, true, true, 0},
		{"no tools", `{"llm":{"model_name":"x"}}`, true, true, 0},
		{"tools", `{"llm":{"tools":[{"tool":{"json_schema":"{\"type\":\"function\"}"}},{}]}}`, true, false, 2},
		{"tools not a list", `{"llm":{"tools":{}}}`, false, true, 0},
		{"json schema not an object", `{"llm":{"tools":[{"tool":{"json_schema":"[1]"}}]}}`, false, true, 0},
		{"llm not an object", `{"llm":3}`, false, true, 0},
		{"llm null", `{"llm":null}`, false, true, 0},
		{"tools null", `{"llm":{"tools":null}}`, false, true, 0},
		{"tool null", `{"llm":{"tools":[{"tool":null}]}}`, false, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Tools(gjson.Parse(tt.attrs))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("nil = %v, want %v", got == nil, tt.wantNil)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("len = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestChatMessages(t *testing.T) {
	if !ChatMessages(gjson.Parse(`[{"id":"1","role":"user","content":"hi"},{"id":2,"role":"ai","content":null}]`)) {
		t.Fatal("expected valid chat messages")
	}
	if ChatMessages(gjson.Parse(`[{"id":"1","role":"assistant","content":"hi"}]`)) {
		t.Fatal("assistant is not a canonical role")
	}
	if ChatMessages(gjson.Parse(`{"id":"1"}`)) {
		t.Fatal("object is not a message list")
	}
}

func strPtr(s string) *string { return &s }
