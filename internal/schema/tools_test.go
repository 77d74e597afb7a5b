package schema

import (
	"testing"

	"github.com/tidwall/gjson"
)

const openAIWeather = `{
	"type": "function",
	"x-origin": "span",
	"function": {
		"name": "get_weather",
		"description": "Get the weather",
		"parameters": {
			"type": "object",
			"properties": {
				"city": {"type": "string", "description": "City name", "format": "city"},
				"unit": {"type": "string", "enum": ["c", "f"]}
			},
			"required": ["city"],
			"additionalProperties": false,
			"strict": true,
			"$defs": {}
		}
	}
}`

func TestOpenAIToolKeepsUnknownKeys(t *testing.T) {
	def, ok := OpenAITool(gjson.Parse(openAIWeather))
	if !ok {
		t.Fatal("expected valid OpenAI tool")
	}
	if def.Function.Name != "get_weather" {
		t.Fatalf("name = %q", def.Function.Name)
	}
	if def.Function.Description == nil || *def.Function.Description != "Get the weather" {
		t.Fatalf("description = %v", def.Function.Description)
	}
	if def.Extra["x-origin"] != "span" {
		t.Fatalf("top-level extra lost: %#v", def.Extra)
	}
	params := def.Function.Parameters
	if params.Strict == nil || !*params.Strict {
		t.Fatal("strict flag lost")
	}
	if params.AdditionalProperties == nil || *params.AdditionalProperties {
		t.Fatal("additionalProperties lost")
	}
	if _, ok := params.Extra["$defs"]; !ok {
		t.Fatalf("parameters extra lost: %#v", params.Extra)
	}
	if params.Properties["city"].Extra["format"] != "city" {
		t.Fatalf("property extra lost: %#v", params.Properties["city"].Extra)
	}
	if got := params.Properties["unit"].Enum; len(got) != 2 {
		t.Fatalf("enum = %v", got)
	}
}

func TestOpenAIToolWithoutDescription(t *testing.T) {
	def, ok := OpenAITool(gjson.Parse(`{"type":"function","function":{"name":"f","parameters":{"type":"object","properties":{}}}}`))
	if !ok {
		t.Fatal("description is optional for OpenAI tools")
	}
	if def.Function.Description != nil {
		t.Fatalf("description = %q, want unset", *def.Function.Description)
	}
	if def.Function.Extra != nil {
		t.Fatalf("function extra = %#v, want none", def.Function.Extra)
	}
}

func TestOpenAIToolRejects(t *testing.T) {
	tests := map[string]string{
		"wrong type":          `{"type":"tool","function":{"name":"f","parameters":{"type":"object","properties":{}}}}`,
		"missing function":    `{"type":"function"}`,
		"missing name":        `{"type":"function","function":{"parameters":{"type":"object","properties":{}}}}`,
		"missing properties":  `{"type":"function","function":{"name":"f","parameters":{"type":"object"}}}`,
		"non-object params":   `{"type":"function","function":{"name":"f","parameters":{"type":"array","properties":{}}}}`,
		"bad property type":   `{"type":"function","function":{"name":"f","parameters":{"type":"object","properties":{"a":{"type":"date"}}}}}`,
		"strict not a bool":   `{"type":"function","function":{"name":"f","parameters":{"type":"object","properties":{},"strict":"yes"}}}`,
		"description is null": `{"type":"function","function":{"name":"f","description":null,"parameters":{"type":"object","properties":{}}}}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			if _, ok := OpenAITool(gjson.Parse(raw)); ok {
				t.Fatalf("expected %s to be rejected", raw)
			}
		})
	}
}

func TestAnthropicTool(t *testing.T) {
	def, ok := AnthropicTool(gjson.Parse(`{
		"name": "get_weather",
		"description": "Get the weather",
		"cache_control": {"type": "ephemeral"},
		"input_schema": {"type": "object", "properties": {"city": {"type": "string"}}, "required": ["city"]}
	}`))
	if !ok {
		t.Fatal("expected valid Anthropic tool")
	}
	if def.Name != "get_weather" || def.Description != "Get the weather" {
		t.Fatalf("unexpected def %+v", def)
	}
	if _, ok := def.Extra["cache_control"]; !ok {
		t.Fatalf("extra lost: %#v", def.Extra)
	}
	if len(def.InputSchema.Required) != 1 {
		t.Fatalf("required = %v", def.InputSchema.Required)
	}
}

func TestAnthropicToolRequiresDescription(t *testing.T) {
	_, ok := AnthropicTool(gjson.Parse(`{"name":"f","input_schema":{"type":"object","properties":{}}}`))
	if ok {
		t.Fatal("description is required for Anthropic tools")
	}
}

func TestAnthropicStrictIsExtra(t *testing.T) {
	def, ok := AnthropicTool(gjson.Parse(`{"name":"f","description":"d","input_schema":{"type":"object","properties":{},"strict":true}}`))
	if !ok {
		t.Fatal("expected valid Anthropic tool")
	}
	if def.InputSchema.Strict != nil {
		t.Fatal("strict should not be typed for Anthropic schemas")
	}
	if def.InputSchema.Extra["strict"] != true {
		t.Fatalf("strict should be kept as extra, got %#v", def.InputSchema.Extra)
	}
}
