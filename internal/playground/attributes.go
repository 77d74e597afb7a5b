package playground

import (
	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/ids"
	"github.com/n0madic/go-playground/internal/models"
	"github.com/n0madic/go-playground/internal/schema"
	"github.com/n0madic/go-playground/internal/transform"
	"github.com/n0madic/go-playground/internal/types"
)

// TemplateMessagesFromAttributes reads llm.input_messages. Messages are nil
// when the list does not validate.
func TemplateMessagesFromAttributes(attrs gjson.Result) ([]types.ChatMessage, []string) {
	messages, ok := schema.InputMessages(attrs)
	if !ok {
		return nil, []string{InputMessagesParsingError}
	}
	return transform.ToChatMessages(messages), nil
}

// OutputFromAttributes reads llm.output_messages, falling back to
// output.value. Errors accumulate across both attempts, so a value found by
// the fallback still carries the output messages error.
func OutputFromAttributes(attrs gjson.Result) (*types.Output, []string) {
	if messages, ok := schema.OutputMessages(attrs); ok {
		return &types.Output{Messages: transform.ToChatMessages(messages)}, nil
	}
	errs := []string{OutputMessagesParsingError}
	if value, ok := schema.OutputValue(attrs); ok {
		return &types.Output{Value: &value}, errs
	}
	return nil, append(errs, OutputValueParsingError)
}

// BaseModelConfigFromAttributes reads llm.model_name. Invocation parameters
// are left empty; FromSpan merges them in separately.
func BaseModelConfigFromAttributes(attrs gjson.Result) (*types.ModelConfig, []string) {
	name, ok := schema.ModelConfig(attrs)
	if !ok {
		return nil, []string{ModelConfigParsingError}
	}
	return &types.ModelConfig{
		ModelName:            name,
		Provider:             models.ProviderFromModelName(name),
		InvocationParameters: []types.InvocationParameterInput{},
	}, nil
}

// InvocationParametersFromAttributes reads llm.invocation_parameters and binds
// them to definitions. A validation failure is reported but the transform
// still runs over an empty mapping, so the result is never nil.
func InvocationParametersFromAttributes(attrs gjson.Result, definitions []types.InvocationParameter) ([]types.InvocationParameterInput, []string) {
	var errs []string
	config, ok := schema.ModelConfigWithInvocationParameters(attrs)
	if !ok {
		errs = append(errs, ModelConfigWithInvocationParametersParsingError)
	}
	return models.TransformInvocationParameters(config.InvocationParameters, definitions), errs
}

// ToolsFromAttributes reads llm.tools. Each tool gets a fresh id; entries
// without a tool payload are dropped. A span without tools yields nil and no
// error.
func ToolsFromAttributes(attrs gjson.Result) ([]types.Tool, []string) {
	entries, ok := schema.Tools(attrs)
	if !ok {
		return nil, []string{ToolsParsingError}
	}
	if entries == nil {
		return nil, nil
	}
	tools := make([]types.Tool, 0, len(entries))
	for _, e := range entries {
		if e.JSONSchema == nil {
			continue
		}
		tools = append(tools, types.Tool{ID: ids.NewToolID(), Definition: e.JSONSchema})
	}
	return tools, nil
}

// IsChatMessages reports whether v is a list of playground chat messages.
func IsChatMessages(v gjson.Result) bool {
	return schema.ChatMessages(v)
}
