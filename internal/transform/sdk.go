package transform

import (
	"github.com/anthropics/anthropic-sdk-go"
	anthropicconstant "github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/n0madic/go-playground/internal/types"
)

// ToOpenAIChatTool renders def as a Chat Completions SDK tool param.
func ToOpenAIChatTool(def types.OpenAIToolDefinition) openai.ChatCompletionToolUnionParam {
	params := def.Function.Parameters.Map()
	delete(params, "strict")
	fn := shared.FunctionDefinitionParam{
		Name:       def.Function.Name,
		Parameters: shared.FunctionParameters(params),
	}
	if def.Function.Description != nil {
		fn.Description = openai.String(*def.Function.Description)
	}
	if def.Function.Parameters.Strict != nil {
		fn.Strict = openai.Bool(*def.Function.Parameters.Strict)
	}
	return openai.ChatCompletionFunctionTool(fn)
}

// ToOpenAIResponsesTool renders def as a Responses API SDK tool param.
func ToOpenAIResponsesTool(def types.OpenAIToolDefinition) responses.ToolUnionParam {
	params := def.Function.Parameters.Map()
	delete(params, "strict")
	strict := false
	if def.Function.Parameters.Strict != nil {
		strict = *def.Function.Parameters.Strict
	}
	ft := responses.FunctionToolParam{
		Name:       def.Function.Name,
		Parameters: params,
		Strict:     openai.Bool(strict),
	}
	if def.Function.Description != nil {
		ft.Description = openai.String(*def.Function.Description)
	}
	return responses.ToolUnionParam{OfFunction: &ft}
}

// ToAnthropicSDKTool renders def as an Anthropic Messages SDK tool param.
// Only type, properties and required survive; the SDK schema struct has no
// slot for other keywords.
func ToAnthropicSDKTool(def types.AnthropicToolDefinition) anthropic.ToolUnionParam {
	schemaMap := def.InputSchema.Map()
	schema := anthropic.ToolInputSchemaParam{
		Type:       anthropicconstant.Object("object"),
		Properties: schemaMap["properties"],
		Required:   def.InputSchema.Required,
	}
	tool := anthropic.ToolUnionParamOfTool(schema, def.Name)
	if def.Description != "" {
		tool.OfTool.Description = anthropic.String(def.Description)
	}
	return tool
}
