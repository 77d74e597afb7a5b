package types

// AnthropicToolDefinition is a Messages API tool definition.
type AnthropicToolDefinition struct {
	Name        string
	Description string
	InputSchema ToolParameters
	Extra       map[string]any
}

func (AnthropicToolDefinition) toolProvider() Provider { return ProviderAnthropic }

// MarshalJSON implements json.Marshaler.
func (d AnthropicToolDefinition) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(map[string]any{
		"name":         d.Name,
		"description":  d.Description,
		"input_schema": d.InputSchema,
	}, d.Extra)
}

// ToolDefinition is implemented by every provider-specific tool definition.
type ToolDefinition interface {
	toolProvider() Provider
}

// ToolDefinitionProvider reports the format a tool definition is written in.
func ToolDefinitionProvider(d ToolDefinition) Provider {
	return d.toolProvider()
}
