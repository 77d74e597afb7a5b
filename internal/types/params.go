package types

import "encoding/json"

// InputField names the value slot an invocation parameter is sent in.
type InputField string

const (
	InputFieldInt        InputField = "valueInt"
	InputFieldFloat      InputField = "valueFloat"
	InputFieldBool       InputField = "valueBool"
	InputFieldBoolean    InputField = "valueBoolean"
	InputFieldString     InputField = "valueString"
	InputFieldStringList InputField = "valueStringList"
	InputFieldJSON       InputField = "valueJson"
)

// InvocationParameter is a model's declaration of a supported parameter.
// Empty strings stand for unset fields.
type InvocationParameter struct {
	InvocationName       string     `json:"invocationName" yaml:"invocation_name"`
	CanonicalName        string     `json:"canonicalName,omitempty" yaml:"canonical_name"`
	InvocationInputField InputField `json:"invocationInputField,omitempty" yaml:"invocation_input_field"`
	Label                string     `json:"label,omitempty" yaml:"label"`
	Required             bool       `json:"required,omitempty" yaml:"required"`
}

// RawInvocationParameter is a key/value pair from llm.invocation_parameters,
// kept in document order.
type RawInvocationParameter struct {
	Key   string
	Value any
}

// InvocationParameterInput is a parameter value bound to a definition. Field
// selects the JSON key Value is emitted under.
type InvocationParameterInput struct {
	CanonicalName  string
	InvocationName string
	Field          InputField
	Value          any
}

// MarshalJSON emits {"canonicalName", "invocationName", "<Field>": Value}.
func (p InvocationParameterInput) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"invocationName": p.InvocationName,
		"canonicalName":  nil,
	}
	if p.CanonicalName != "" {
		out["canonicalName"] = p.CanonicalName
	}
	if p.Field != "" {
		out[string(p.Field)] = p.Value
	}
	return json.Marshal(out)
}

// InputFields returns every supported input field.
func InputFields() []InputField {
	return []InputField{
		InputFieldInt,
		InputFieldFloat,
		InputFieldBool,
		InputFieldBoolean,
		InputFieldString,
		InputFieldStringList,
		InputFieldJSON,
	}
}
