package types

import "encoding/json"

// ChatRole is the closed set of roles a playground chat message can carry.
type ChatRole string

const (
	ChatRoleUser   ChatRole = "user"
	ChatRoleAI     ChatRole = "ai"
	ChatRoleSystem ChatRole = "system"
	ChatRoleTool   ChatRole = "tool"
)

// DefaultChatRole is used when a span role cannot be mapped.
const DefaultChatRole = ChatRoleUser

// ChatRoles returns every canonical role in alias lookup order.
func ChatRoles() []ChatRole {
	return []ChatRole{ChatRoleUser, ChatRoleAI, ChatRoleSystem, ChatRoleTool}
}

// IsChatRole reports whether s is one of ChatRoles.
func IsChatRole(s string) bool {
	for _, r := range ChatRoles() {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Provider tags the model vendor a playground instance talks to.
type Provider string

const (
	ProviderOpenAI      Provider = "OPENAI"
	ProviderAzureOpenAI Provider = "AZURE_OPENAI"
	ProviderAnthropic   Provider = "ANTHROPIC"
)

// DefaultProvider is used when a model name matches no known prefix.
const DefaultProvider = ProviderOpenAI

// Providers returns every provider in inference order. When a model name
// matches prefixes of several providers, the earliest one here wins.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderAzureOpenAI, ProviderAnthropic}
}

// ParseProvider maps a provider tag to a Provider.
func ParseProvider(s string) (Provider, bool) {
	for _, p := range Providers() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ChatMessage is a single message of a chat template or output.
// ToolCalls is nil when the source message carried no tool calls.
type ChatMessage struct {
	ID        string     `json:"id"`
	Role      ChatRole   `json:"role"`
	Content   *string    `json:"content"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}

// ToolCall is a function call requested by a message.
type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the called function and its decoded arguments.
type ToolCallFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ModelConfig describes the model a playground instance invokes.
type ModelConfig struct {
	ModelName            string                     `json:"modelName"`
	Provider             Provider                   `json:"provider"`
	InvocationParameters []InvocationParameterInput `json:"invocationParameters"`
}

// TemplateKind discriminates Template.
type TemplateKind string

const (
	TemplateChat           TemplateKind = "chat"
	TemplateTextCompletion TemplateKind = "text_completion"
)

// Template is either a list of chat messages or a plain text prompt.
type Template struct {
	Kind     TemplateKind
	Messages []ChatMessage
	Prompt   string
}

// ChatTemplate wraps messages into a chat template.
func ChatTemplate(messages []ChatMessage) Template {
	return Template{Kind: TemplateChat, Messages: messages}
}

// MarshalJSON emits the discriminated form {"__type": ..., ...}.
func (t Template) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TemplateTextCompletion:
		return json.Marshal(struct {
			Type   TemplateKind `json:"__type"`
			Prompt string       `json:"prompt"`
		}{t.Kind, t.Prompt})
	default:
		msgs := t.Messages
		if msgs == nil {
			msgs = []ChatMessage{}
		}
		return json.Marshal(struct {
			Type     TemplateKind  `json:"__type"`
			Messages []ChatMessage `json:"messages"`
		}{TemplateChat, msgs})
	}
}

// Output is the recorded result of a span: either output messages or a
// single output value.
type Output struct {
	Messages []ChatMessage
	Value    *string
}

// MarshalJSON emits the messages array, the value string, or null.
func (o Output) MarshalJSON() ([]byte, error) {
	if o.Messages != nil {
		return json.Marshal(o.Messages)
	}
	if o.Value != nil {
		return json.Marshal(*o.Value)
	}
	return []byte("null"), nil
}

// Tool is a tool slot of a playground instance.
type Tool struct {
	ID         string         `json:"id"`
	Definition map[string]any `json:"definition"`
}

// InstanceInput holds per-instance template variable values.
type InstanceInput struct {
	VariablesValueCache map[string]string `json:"variablesValueCache"`
}

// PlaygroundInstance is one configured LLM call in the playground.
type PlaygroundInstance struct {
	ID          string        `json:"id"`
	Model       ModelConfig   `json:"model"`
	Template    Template      `json:"template"`
	Tools       []Tool        `json:"tools"`
	ToolChoice  any           `json:"toolChoice"`
	Input       InstanceInput `json:"input"`
	Output      *Output       `json:"output"`
	SpanID      *string       `json:"spanId"`
	ActiveRunID *string       `json:"activeRunId"`
}
