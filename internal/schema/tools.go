package schema

import (
	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/types"
)

var propertyTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"object":  true,
	"array":   true,
	"null":    true,
	"integer": true,
}

// OpenAITool validates an OpenAI function tool definition. Unknown keys are
// kept in the Extra maps.
func OpenAITool(v gjson.Result) (types.OpenAIToolDefinition, bool) {
	if !v.IsObject() {
		return types.OpenAIToolDefinition{}, false
	}
	typ := field(v, "type")
	if typ.Type != gjson.String || typ.Str != "function" {
		return types.OpenAIToolDefinition{}, false
	}
	fn := field(v, "function")
	if !fn.IsObject() {
		return types.OpenAIToolDefinition{}, false
	}
	name := field(fn, "name")
	if name.Type != gjson.String {
		return types.OpenAIToolDefinition{}, false
	}
	desc := field(fn, "description")
	// description may be omitted but not null.
	if desc.Exists() && desc.Type != gjson.String {
		return types.OpenAIToolDefinition{}, false
	}
	params, ok := ToolParameters(field(fn, "parameters"), true)
	if !ok {
		return types.OpenAIToolDefinition{}, false
	}

	def := types.OpenAIToolDefinition{
		Type: typ.Str,
		Function: types.OpenAIFunction{
			Name:       name.Str,
			Parameters: params,
			Extra:      extra(fn, "name", "description", "parameters"),
		},
		Extra: extra(v, "id", "type", "function"),
	}
	if desc.Type == gjson.String {
		def.Function.Description = types.StringPtr(desc.Str)
	}
	// id is not part of the schema; keep it typed when it is a string.
	if id := field(v, "id"); id.Type == gjson.String {
		def.ID = types.StringPtr(id.Str)
	} else if id.Exists() {
		if def.Extra == nil {
			def.Extra = map[string]any{}
		}
		def.Extra["id"] = id.Value()
	}
	return def, true
}

// AnthropicTool validates an Anthropic tool definition.
func AnthropicTool(v gjson.Result) (types.AnthropicToolDefinition, bool) {
	if !v.IsObject() {
		return types.AnthropicToolDefinition{}, false
	}
	name := field(v, "name")
	desc := field(v, "description")
	if name.Type != gjson.String || desc.Type != gjson.String {
		return types.AnthropicToolDefinition{}, false
	}
	schema, ok := ToolParameters(field(v, "input_schema"), false)
	if !ok {
		return types.AnthropicToolDefinition{}, false
	}
	return types.AnthropicToolDefinition{
		Name:        name.Str,
		Description: desc.Str,
		InputSchema: schema,
		Extra:       extra(v, "name", "description", "input_schema"),
	}, true
}

// ToolParameters validates a JSON schema object of type "object". allowStrict
// accepts the OpenAI-only strict flag as a typed field.
func ToolParameters(v gjson.Result, allowStrict bool) (types.ToolParameters, bool) {
	if !v.IsObject() {
		return types.ToolParameters{}, false
	}
	typ := field(v, "type")
	if typ.Type != gjson.String || typ.Str != "object" {
		return types.ToolParameters{}, false
	}
	props := field(v, "properties")
	if !props.IsObject() {
		return types.ToolParameters{}, false
	}
	out := types.ToolParameters{
		Type:       typ.Str,
		Properties: map[string]types.PropertySchema{},
	}
	valid := true
	props.ForEach(func(key, value gjson.Result) bool {
		p, ok := propertySchema(value)
		if !ok {
			valid = false
			return false
		}
		out.Properties[key.String()] = p
		return true
	})
	if !valid {
		return types.ToolParameters{}, false
	}

	if req := field(v, "required"); req.Exists() {
		list, ok := stringList(req)
		if !ok {
			return types.ToolParameters{}, false
		}
		out.Required = list
	}
	if ap := field(v, "additionalProperties"); ap.Exists() {
		if !ap.IsBool() {
			return types.ToolParameters{}, false
		}
		out.AdditionalProperties = types.BoolPtr(ap.Bool())
	}
	known := []string{"type", "properties", "required", "additionalProperties"}
	if allowStrict {
		if strict := field(v, "strict"); strict.Exists() {
			if !strict.IsBool() {
				return types.ToolParameters{}, false
			}
			out.Strict = types.BoolPtr(strict.Bool())
		}
		known = append(known, "strict")
	}
	out.Extra = extra(v, known...)
	return out, true
}

func propertySchema(v gjson.Result) (types.PropertySchema, bool) {
	if !v.IsObject() {
		return types.PropertySchema{}, false
	}
	typ := field(v, "type")
	if typ.Type != gjson.String || !propertyTypes[typ.Str] {
		return types.PropertySchema{}, false
	}
	out := types.PropertySchema{
		Type:  typ.Str,
		Extra: extra(v, "type", "description", "enum"),
	}
	if desc := field(v, "description"); desc.Exists() {
		if desc.Type != gjson.String {
			return types.PropertySchema{}, false
		}
		out.Description = types.StringPtr(desc.Str)
	}
	if enum := field(v, "enum"); enum.Exists() {
		list, ok := stringList(enum)
		if !ok {
			return types.PropertySchema{}, false
		}
		out.Enum = list
	}
	return out, true
}
