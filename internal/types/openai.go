package types

// OpenAIToolDefinition is a Chat Completions function tool. Extra keeps
// keys not covered by the typed fields.
type OpenAIToolDefinition struct {
	ID       *string
	Type     string
	Function OpenAIFunction
	Extra    map[string]any
}

// OpenAIFunction is the function block of an OpenAI tool.
type OpenAIFunction struct {
	Name        string
	Description *string
	Parameters  ToolParameters
	Extra       map[string]any
}

// ToolParameters is the JSON schema object accepted as tool parameters.
// Strict is only meaningful for OpenAI.
type ToolParameters struct {
	Type                 string
	Properties           map[string]PropertySchema
	Required             []string
	AdditionalProperties *bool
	Strict               *bool
	Extra                map[string]any
}

// PropertySchema describes one parameter property.
type PropertySchema struct {
	Type        string
	Description *string
	Enum        []string
	Extra       map[string]any
}

func (OpenAIToolDefinition) toolProvider() Provider { return ProviderOpenAI }

// MarshalJSON implements json.Marshaler.
func (d OpenAIToolDefinition) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"type":     d.Type,
		"function": d.Function,
	}
	if d.ID != nil {
		known["id"] = *d.ID
	}
	return marshalWithExtra(known, d.Extra)
}

// MarshalJSON implements json.Marshaler.
func (f OpenAIFunction) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"name":       f.Name,
		"parameters": f.Parameters,
	}
	if f.Description != nil {
		known["description"] = *f.Description
	}
	return marshalWithExtra(known, f.Extra)
}

// MarshalJSON implements json.Marshaler.
func (p ToolParameters) MarshalJSON() ([]byte, error) {
	props := p.Properties
	if props == nil {
		props = map[string]PropertySchema{}
	}
	known := map[string]any{
		"type":       p.Type,
		"properties": props,
	}
	if p.Required != nil {
		known["required"] = p.Required
	}
	if p.AdditionalProperties != nil {
		known["additionalProperties"] = *p.AdditionalProperties
	}
	if p.Strict != nil {
		known["strict"] = *p.Strict
	}
	return marshalWithExtra(known, p.Extra)
}

// MarshalJSON implements json.Marshaler.
func (s PropertySchema) MarshalJSON() ([]byte, error) {
	known := map[string]any{"type": s.Type}
	if s.Description != nil {
		known["description"] = *s.Description
	}
	if s.Enum != nil {
		known["enum"] = s.Enum
	}
	return marshalWithExtra(known, s.Extra)
}

// Map renders the schema as a plain JSON object.
func (p ToolParameters) Map() map[string]any {
	out := map[string]any{}
	if err := remarshal(p, &out); err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	return out
}
