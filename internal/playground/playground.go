// Package playground builds playground instances from recorded LLM spans.
package playground

import (
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/types"
)

// Span is a recorded LLM call. Attributes holds the JSON-encoded attribute
// bag.
type Span struct {
	ID         string `json:"id"`
	Attributes string `json:"attributes"`
}

// Result is a built instance together with the parsing errors collected
// while building it. The instance is always usable.
type Result struct {
	Instance      types.PlaygroundInstance `json:"instance"`
	ParsingErrors []string                 `json:"parsingErrors"`
}

// FromSpan builds a playground instance from span. Fields that fail to parse
// keep the defaults of NewInstance and add an error code to the result.
// Unparsable attributes short-circuit with SpanAttributesParsingError.
func FromSpan(span Span) Result {
	instance := NewInstance()
	spanID := span.ID
	instance.SpanID = &spanID

	if !gjson.Valid(span.Attributes) {
		slog.Debug("span attributes are not valid JSON", "span_id", span.ID)
		return Result{Instance: instance, ParsingErrors: []string{SpanAttributesParsingError}}
	}
	attrs := gjson.Parse(span.Attributes)

	messages, messageErrs := TemplateMessagesFromAttributes(attrs)
	output, outputErrs := OutputFromAttributes(attrs)
	model, modelErrs := BaseModelConfigFromAttributes(attrs)
	tools, toolErrs := ToolsFromAttributes(attrs)
	// No definitions are supplied here, so every parameter is dropped until
	// the caller constrains them against a model catalog.
	params, paramErrs := InvocationParametersFromAttributes(attrs, []types.InvocationParameter{})

	if model != nil {
		model.InvocationParameters = params
		instance.Model = *model
	}
	if messages != nil {
		instance.Template = types.ChatTemplate(messages)
	}
	if tools != nil {
		instance.Tools = tools
	}
	instance.Output = output

	errs := make([]string, 0, len(messageErrs)+len(outputErrs)+len(modelErrs)+len(toolErrs)+len(paramErrs))
	errs = append(errs, messageErrs...)
	errs = append(errs, outputErrs...)
	errs = append(errs, modelErrs...)
	errs = append(errs, toolErrs...)
	errs = append(errs, paramErrs...)
	if len(errs) > 0 {
		slog.Debug("span parsed with errors", "span_id", span.ID, "errors", len(errs))
	}
	return Result{Instance: instance, ParsingErrors: errs}
}
