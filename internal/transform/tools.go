package transform

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/schema"
	"github.com/n0madic/go-playground/internal/types"
)

// ErrUnknownToolFormat is returned when a tool definition matches neither the
// OpenAI nor the Anthropic shape.
var ErrUnknownToolFormat = errors.New("unknown tool call format")

// DetectProvider validates def against the OpenAI shape, then the Anthropic
// shape, and returns the first match. def may be raw JSON ([]byte,
// json.RawMessage, string), a gjson.Result, or any value that marshals to JSON.
func DetectProvider(def any) (types.Provider, types.ToolDefinition, error) {
	v, err := toolResult(def)
	if err != nil {
		return "", nil, err
	}
	if openai, ok := schema.OpenAITool(v); ok {
		return types.ProviderOpenAI, openai, nil
	}
	if anthropic, ok := schema.AnthropicTool(v); ok {
		return types.ProviderAnthropic, anthropic, nil
	}
	return "", nil, ErrUnknownToolFormat
}

// ToOpenAIFormat converts a tool definition in any supported format to the
// OpenAI format.
func ToOpenAIFormat(def any) (types.OpenAIToolDefinition, error) {
	provider, validated, err := DetectProvider(def)
	if err != nil {
		return types.OpenAIToolDefinition{}, err
	}
	switch provider {
	case types.ProviderOpenAI, types.ProviderAzureOpenAI:
		return validated.(types.OpenAIToolDefinition), nil
	case types.ProviderAnthropic:
		return anthropicToOpenAI(validated.(types.AnthropicToolDefinition)), nil
	default:
		panic(types.Unreachable(provider))
	}
}

// FromOpenAIFormat converts an OpenAI tool definition to the format of
// target.
func FromOpenAIFormat(def types.OpenAIToolDefinition, target types.Provider) types.ToolDefinition {
	switch target {
	case types.ProviderOpenAI, types.ProviderAzureOpenAI:
		return def
	case types.ProviderAnthropic:
		return openAIToAnthropic(def)
	default:
		panic(types.Unreachable(target))
	}
}

// ConvertTool converts def from whatever format it is in to target.
func ConvertTool(def any, target types.Provider) (types.ToolDefinition, error) {
	openai, err := ToOpenAIFormat(def)
	if err != nil {
		return nil, err
	}
	return FromOpenAIFormat(openai, target), nil
}

func anthropicToOpenAI(def types.AnthropicToolDefinition) types.OpenAIToolDefinition {
	return types.OpenAIToolDefinition{
		ID:   types.StringPtr(""),
		Type: "function",
		Function: types.OpenAIFunction{
			Name:        def.Name,
			Description: types.StringPtr(def.Description),
			Parameters:  def.InputSchema,
		},
	}
}

func openAIToAnthropic(def types.OpenAIToolDefinition) types.AnthropicToolDefinition {
	description := def.Function.Name
	if def.Function.Description != nil {
		description = *def.Function.Description
	}
	return types.AnthropicToolDefinition{
		Name:        def.Function.Name,
		Description: description,
		InputSchema: def.Function.Parameters,
	}
}

func toolResult(def any) (gjson.Result, error) {
	switch v := def.(type) {
	case gjson.Result:
		return v, nil
	case json.RawMessage:
		return parseToolJSON(string(v))
	case []byte:
		return parseToolJSON(string(v))
	case string:
		return parseToolJSON(v)
	}
	b, err := json.Marshal(def)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %v", ErrUnknownToolFormat, err)
	}
	return gjson.ParseBytes(b), nil
}

func parseToolJSON(s string) (gjson.Result, error) {
	if !gjson.Valid(s) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON", ErrUnknownToolFormat)
	}
	return gjson.Parse(s), nil
}
