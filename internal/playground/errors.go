package playground

// Parsing error codes reported alongside a built instance. The strings are
// shown to users verbatim and must stay stable.
const (
	SpanAttributesParsingError                      = "Unable to parse span attributes, attributes must be valid JSON."
	InputMessagesParsingError                       = "Unable to parse span input messages, expected messages which include a role and content."
	OutputMessagesParsingError                      = "Unable to parse span output messages, expected messages which include a role and content."
	OutputValueParsingError                         = "Unable to parse span output expected output.value to be present."
	ModelConfigParsingError                         = "Unable to parse model config, expected llm.model_name to be present."
	ModelConfigWithInvocationParametersParsingError = "Unable to parse model config, expected llm.invocation_parameters json string to be present."
	ToolsParsingError                               = "Unable to parse tools, expected tools to be an array of valid tools."
)
